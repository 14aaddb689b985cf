package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/willibrandon/smartedit/internal/editor"
	"github.com/willibrandon/smartedit/internal/logger"
	"github.com/willibrandon/smartedit/internal/ui/styles"
)

// StatusBar represents the status bar component
type StatusBar struct {
	width int

	status  editor.Status
	message string
	isError bool

	styles styles.Styles
}

// NewStatusBar creates a new status bar component
func NewStatusBar(st styles.Styles) *StatusBar {
	return &StatusBar{styles: st}
}

// SetSize sets the width of the status bar
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetStatus sets the editing counters
func (s *StatusBar) SetStatus(status editor.Status) {
	s.status = status
}

// SetMessage sets the transient message shown at the right
func (s *StatusBar) SetMessage(msg string, isError bool) {
	s.message = msg
	s.isError = isError
}

// Message returns the transient message
func (s *StatusBar) Message() string {
	return s.message
}

// View renders the status bar
func (s *StatusBar) View() string {
	left := s.status.String()

	// Warning and error counts from the log ring buffer
	var logSection string
	warnCount, errCount := logger.GetCounts()
	if warnCount > 0 || errCount > 0 {
		var parts []string
		if warnCount > 0 {
			parts = append(parts, s.styles.TitleDirty.Render(fmt.Sprintf("⚠ %d", warnCount)))
		}
		if errCount > 0 {
			parts = append(parts, s.styles.StatusError.Render(fmt.Sprintf("✕ %d", errCount)))
		}
		logSection = strings.Join(parts, " ")
	}

	var right string
	if s.message != "" {
		if s.isError {
			right = s.styles.StatusError.Render(s.message)
		} else {
			right = s.styles.StatusMessage.Render(s.message)
		}
	}
	if logSection != "" {
		if right != "" {
			right += " | "
		}
		right += logSection
	}

	inner := s.width - s.styles.StatusBar.GetHorizontalFrameSize()
	if inner <= 0 {
		return s.styles.StatusBar.Render(left)
	}

	rightWidth := lipgloss.Width(right)
	leftMax := inner - rightWidth - 1
	if leftMax < 0 {
		// Not enough room for both; the counters win.
		right = ""
		rightWidth = 0
		leftMax = inner
	}
	left = runewidth.Truncate(left, leftMax, "…")

	gap := inner - runewidth.StringWidth(left) - rightWidth
	if gap < 0 {
		gap = 0
	}
	return s.styles.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}
