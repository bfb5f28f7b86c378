package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/brclaisa/panther-backoffice/internal/tui/format"
)

// AlertKind classifies a transient notification.
type AlertKind string

const (
	AlertInfo    AlertKind = "info"
	AlertSuccess AlertKind = "success"
	AlertWarning AlertKind = "warning"
	AlertDanger  AlertKind = "danger"
)

// alertTTL is how long an alert stays visible before auto-dismissal.
const alertTTL = 5 * time.Second

// Alert is one transient notification.
type Alert struct {
	ID        string
	Kind      AlertKind
	Message   string
	CreatedAt time.Time
}

// alertArea owns the visible alert list. Alerts accumulate in insertion
// order, oldest first, and each carries its own expiry timer.
type alertArea struct {
	alerts []Alert
}

// Show appends a new alert and returns the tea.Cmd that schedules its
// automatic removal after alertTTL.
func (a *alertArea) Show(message string, kind AlertKind) (Alert, tea.Cmd) {
	alert := Alert{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	}
	a.alerts = append(a.alerts, alert)

	id := alert.ID
	expire := tea.Tick(alertTTL, func(time.Time) tea.Msg {
		return alertExpiredMsg{id: id}
	})
	return alert, expire
}

// Dismiss removes the alert with the given id. Returns false when the
// alert is already gone, which makes late expiry ticks harmless.
func (a *alertArea) Dismiss(id string) bool {
	for i, alert := range a.alerts {
		if alert.ID == id {
			a.alerts = append(a.alerts[:i], a.alerts[i+1:]...)
			return true
		}
	}
	return false
}

// DismissOldest removes the first (oldest) alert, if any.
func (a *alertArea) DismissOldest() {
	if len(a.alerts) > 0 {
		a.alerts = a.alerts[1:]
	}
}

// Len returns the number of visible alerts.
func (a *alertArea) Len() int { return len(a.alerts) }

// Find returns the alert with the given id.
func (a *alertArea) Find(id string) (Alert, bool) {
	for _, alert := range a.alerts {
		if alert.ID == id {
			return alert, true
		}
	}
	return Alert{}, false
}

// View renders the alert strip, oldest on top.
func (a *alertArea) View() string {
	if len(a.alerts) == 0 {
		return ""
	}

	var b strings.Builder
	for _, alert := range a.alerts {
		b.WriteString("  " + alertSymbol(alert.Kind) + " " + alert.Message)
		b.WriteString(format.Dim("  (x fecha)"))
		b.WriteString("\n")
	}
	return b.String()
}

func alertSymbol(kind AlertKind) string {
	switch kind {
	case AlertSuccess:
		return format.StyleGreen.Render("✔")
	case AlertWarning:
		return format.StyleYellow.Render("▲")
	case AlertDanger:
		return format.StyleRed.Render("✖")
	}
	return format.StyleBlue.Render("●")
}
