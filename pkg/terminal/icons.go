package terminal

// Icons for terminal output
const (
	IconSuccess = "✅"
	IconError   = "❌"
	IconWarning = "⚠️"
	IconTimer   = "⏱"
	IconChart   = "📊"
	IconSave    = "💾"
	IconSpeed   = "⚡"
	IconCheck   = "✓"
	IconCross   = "✗"
	IconArrow   = "→"
	IconDot     = "•"
)
