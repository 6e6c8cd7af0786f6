package ledger

import (
	"fmt"
	"time"
)

// Nomes dos eventos emitidos pelo saldo de tempo.
const (
	EventCreditsAdded    = "creditsAdded"
	EventTimeUpdate      = "timeUpdate"
	EventExhausted       = "exhausted"
	EventStreakMilestone = "streakMilestone"
)

// Event é o payload enviado aos observadores a cada mudança de estado.
type Event struct {
	Event   string `json:"event"`
	Balance int    `json:"balance"`
	Delta   int    `json:"delta,omitempty"`
	Streak  int    `json:"streak,omitempty"`
}

// Snapshot é a forma persistida do saldo.
type Snapshot struct {
	BalanceSeconds  int       `json:"balanceSeconds"`
	LastPersistedAt time.Time `json:"lastPersistedAt"`
}

// FormatTime formata segundos como "H:MM:SS" quando há horas, senão "M:SS".
// Valores negativos são tratados como zero.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
