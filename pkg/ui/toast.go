package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastTTL is how long a toast stays on screen.
const toastTTL = 3 * time.Second

// Toast levels.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastWarning = "warning"
	ToastInfo    = "info"
)

// Toast is one transient notification.
type Toast struct {
	Level   string
	Message string
	Expires time.Time
}

// toastExpireMsg asks the notifier to drop expired entries.
type toastExpireMsg struct{}

// ToastStack holds the live notifications. Expired entries are pruned on the
// tick that follows their deadline, so the slice never grows unbounded.
type ToastStack struct {
	toasts []Toast
	now    func() time.Time
}

// NewToastStack returns an empty stack.
func NewToastStack() ToastStack {
	return ToastStack{now: time.Now}
}

// Push appends a toast and returns the command that will trigger pruning.
func (s *ToastStack) Push(level, message string) tea.Cmd {
	s.toasts = append(s.toasts, Toast{
		Level:   level,
		Message: message,
		Expires: s.now().Add(toastTTL),
	})
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpireMsg{}
	})
}

// Prune drops every expired toast.
func (s *ToastStack) Prune() {
	now := s.now()
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if t.Expires.After(now) {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
}

// Len returns the number of live toasts.
func (s *ToastStack) Len() int {
	return len(s.toasts)
}

// View renders the stack, newest last.
func (s *ToastStack) View(theme Theme) string {
	if len(s.toasts) == 0 {
		return ""
	}
	r := theme.Renderer
	var b strings.Builder
	for i, t := range s.toasts {
		if i > 0 {
			b.WriteString("\n")
		}
		style := r.NewStyle().Foreground(theme.LevelColor(t.Level)).Bold(true)
		b.WriteString(style.Render("● " + t.Message))
	}
	return b.String()
}
