package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Knick011/BrainBites.v1/internal/application/usecases"
)

type LedgerHandler struct {
	ledgerUC   *usecases.LedgerUseCases
	settingsUC *usecases.SettingsUseCases
}

func NewLedgerHandler(ledgerUC *usecases.LedgerUseCases, settingsUC *usecases.SettingsUseCases) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC, settingsUC: settingsUC}
}

// GetTime devolve o saldo atual em segundos e formatado.
func (h *LedgerHandler) GetTime(w http.ResponseWriter, r *http.Request) {
	balance := h.ledgerUC.GetAvailableTime()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"balanceSeconds": balance,
		"formatted":      h.ledgerUC.FormatTime(balance),
	})
}

// AddCredits credita segundos diretamente no saldo. Operação administrativa:
// exige o PIN parental quando configurado.
func (h *LedgerHandler) AddCredits(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Seconds int    `json:"seconds"`
		Pin     string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if err := h.settingsUC.RequirePin(r.Context(), input.Pin); err != nil {
		if errors.Is(err, usecases.ErrPinInvalido) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, "Erro ao validar pin", http.StatusInternalServerError)
		return
	}

	if err := h.ledgerUC.AddCredits(input.Seconds); err != nil {
		if errors.Is(err, usecases.ErrRecompensaInvalida) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Erro ao creditar tempo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{
		"balanceSeconds": h.ledgerUC.GetAvailableTime(),
	})
}

// StartSpending liga a contagem regressiva do saldo.
func (h *LedgerHandler) StartSpending(w http.ResponseWriter, r *http.Request) {
	h.ledgerUC.StartSpending()
	w.WriteHeader(http.StatusNoContent)
}

// StopSpending desliga a contagem regressiva do saldo.
func (h *LedgerHandler) StopSpending(w http.ResponseWriter, r *http.Request) {
	h.ledgerUC.StopSpending()
	w.WriteHeader(http.StatusNoContent)
}
