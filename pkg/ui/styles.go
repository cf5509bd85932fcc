package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Terminal ANSI indexes, so the user's own scheme decides the exact shade
var (
	colorGreen   = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}
	colorRed     = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	colorYellow  = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	colorBlue    = lipgloss.AdaptiveColor{Light: "4", Dark: "4"}
	colorMagenta = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	colorCyan    = lipgloss.AdaptiveColor{Light: "6", Dark: "6"}
	colorGray    = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
)

// notice is one kind of console line: copied, warned, removed and so on
type notice struct {
	icon  string
	color lipgloss.AdaptiveColor
	bold  bool
	style lipgloss.Style
}

var (
	noticeSuccess = &notice{icon: "✅", color: colorGreen, bold: true}
	noticeError   = &notice{icon: "✘", color: colorRed, bold: true}
	noticeInfo    = &notice{icon: "ℹ", color: colorCyan}
	noticeWarning = &notice{icon: "⚠️", color: colorYellow, bold: true}
	noticeWatch   = &notice{icon: "👀", color: colorMagenta, bold: true}
	noticePrune   = &notice{icon: "🧹", color: colorBlue}

	notices = []*notice{noticeSuccess, noticeError, noticeInfo, noticeWarning, noticeWatch, noticePrune}

	styleMuted lipgloss.Style
	styleKey   lipgloss.Style

	// Headings and the list table
	StyleTitle       lipgloss.Style
	StyleTableHeader lipgloss.Style
	StyleTableBorder lipgloss.Style
)

func init() {
	SetTheme("auto")
}

// SetTheme applies the specified color theme ("auto", "dark", "light")
func SetTheme(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	default:
		// Auto: lipgloss detects automatically
	}

	for _, n := range notices {
		n.style = lipgloss.NewStyle().Foreground(n.color).Bold(n.bold)
	}

	styleMuted = lipgloss.NewStyle().Foreground(colorGray)
	styleKey = lipgloss.NewStyle().Foreground(colorBlue)

	StyleTitle = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true).Underline(true)
	StyleTableHeader = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true)
	StyleTableBorder = styleMuted
}

func (n *notice) render(msg string) string {
	return n.style.Render(n.icon + " " + msg)
}

// FormatSuccess marks a copied asset or a finished run
func FormatSuccess(msg string) string {
	return noticeSuccess.render(msg)
}

// FormatError returns an error message with icon
func FormatError(msg string) string {
	return noticeError.render(msg)
}

// FormatInfo returns an info message with icon
func FormatInfo(msg string) string {
	return noticeInfo.render(msg)
}

// FormatWarning marks a missing or rejected asset
func FormatWarning(msg string) string {
	return noticeWarning.render(msg)
}

// FormatWatch marks watcher lifecycle messages
func FormatWatch(msg string) string {
	return noticeWatch.render(msg)
}

// FormatPrune marks removals from the destination tree
func FormatPrune(msg string) string {
	return noticePrune.render(msg)
}

// FormatMuted returns muted/subtle text
func FormatMuted(text string) string {
	return styleMuted.Render(text)
}

// FormatState colors an asset state label from the list table
func FormatState(state string) string {
	switch state {
	case "synced":
		return noticeSuccess.style.Render(state)
	case "pending":
		return noticeInfo.style.Render(state)
	case "missing", "outside-root":
		return noticeWarning.style.Render(state)
	case "orphaned":
		return noticeError.style.Render(state)
	default:
		return state
	}
}

// RenderKeyValue renders a key-value pair
func RenderKeyValue(key, value string) string {
	return styleKey.Render(key) + ": " + value
}
