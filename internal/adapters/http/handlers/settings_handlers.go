package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Knick011/BrainBites.v1/internal/application/usecases"
)

type SettingsHandler struct {
	settingsUC *usecases.SettingsUseCases
}

func NewSettingsHandler(settingsUC *usecases.SettingsUseCases) *SettingsHandler {
	return &SettingsHandler{settingsUC: settingsUC}
}

// GetSettings devolve as preferências da interface.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.settingsUC.GetSettings(r.Context()))
}

// UpdateSettings grava as preferências da interface.
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var input usecases.Settings
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if err := h.settingsUC.UpdateSettings(r.Context(), input); err != nil {
		http.Error(w, "Erro ao gravar preferências", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(input)
}

// SetPin define o PIN parental.
func (h *SettingsHandler) SetPin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Pin string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if err := h.settingsUC.SetPin(r.Context(), input.Pin); err != nil {
		if errors.Is(err, usecases.ErrPinCurto) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Erro ao gravar pin", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
