package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/recipebox/internal/logging/events"
)

const toastTTL = 5 * time.Second

// ToastKind distinguishes success and failure notifications.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

func (k ToastKind) String() string {
	switch k {
	case ToastSuccess:
		return "success"
	case ToastError:
		return "error"
	default:
		return "info"
	}
}

// Toast is a short-lived notification shown under the recipe list.
type Toast struct {
	Kind    ToastKind
	Message string
}

// Notifier receives every toast the model raises, in order.
type Notifier interface {
	Notify(Toast)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Toast)

func (f NotifierFunc) Notify(t Toast) { f(t) }

func (m *Model) notify(kind ToastKind, message string) {
	t := Toast{Kind: kind, Message: message}
	m.toast = t
	m.toastExpire = time.Now().Add(toastTTL)
	events.UI.Toast(kind.String(), message)
	if m.notifier != nil {
		m.notifier.Notify(t)
	}
}

func (m *Model) forceClearToast() {
	m.toast = Toast{}
	m.toastExpire = time.Time{}
}

// currentToast returns the toast still on screen, expiring it lazily.
func (m *Model) currentToast() (Toast, bool) {
	if m.toast.Message == "" {
		return Toast{}, false
	}
	if !m.toastExpire.IsZero() && time.Now().After(m.toastExpire) {
		m.forceClearToast()
		return Toast{}, false
	}
	return m.toast, true
}

func toastStyle(kind ToastKind) *lipgloss.Style {
	switch kind {
	case ToastSuccess:
		return styles.ToastSuccess
	case ToastError:
		return styles.ToastError
	default:
		return styles.Info
	}
}
