package cli

import (
	"strings"
	"testing"

	e "tempo/pkg/errors"
)

func TestErrorHandlerDisplaysRichError(t *testing.T) {
	h := NewErrorHandler(true, false) // verbose
	err := e.New(e.ErrCalibrationFailed, "calibration did not converge").
		WithDetails("the clock did not advance far enough to size a sample").
		WithContext("elapsed", "0s")

	out := captureStdout(t, func() {
		h.displayTempoError(err)
	})
	if !strings.Contains(out, "calibration did not converge") {
		t.Fatalf("output missing message:\n%s", out)
	}
	if !strings.Contains(out, "did not advance far enough") {
		t.Errorf("verbose output missing details:\n%s", out)
	}
	if !strings.Contains(out, "elapsed") {
		t.Errorf("verbose output missing context:\n%s", out)
	}
	if !strings.Contains(out, "--min-time") {
		t.Errorf("output missing default suggestion:\n%s", out)
	}
}

func TestErrorHandlerHintsAtVerbose(t *testing.T) {
	h := NewErrorHandler(false, false)
	out := captureStdout(t, func() {
		h.displayTempoError(e.New(e.ErrFileNotFound, "no saved run at baseline.json"))
	})
	if !strings.Contains(out, "--verbose") {
		t.Errorf("non-verbose output should point at --verbose:\n%s", out)
	}
	if strings.Contains(out, "Context:") {
		t.Errorf("context must be hidden without --verbose:\n%s", out)
	}
}

func TestGetErrorIconCoversAllCodes(t *testing.T) {
	h := NewErrorHandler(false, false)
	codes := []e.ErrorCode{
		e.ErrCalibrationFailed,
		e.ErrOperationFailed,
		e.ErrDuplicateBenchmark,
		e.ErrStoreCorrupted,
		e.ErrFileNotFound,
		e.ErrUnknownFormat,
		e.ErrInvalidConfig,
		e.ErrUnknown,
		e.ErrorCode("NEVER_SEEN"),
	}
	for _, code := range codes {
		if icon := h.getErrorIcon(code); icon == "" {
			t.Errorf("getErrorIcon(%s) returned empty icon", code)
		}
	}
}
