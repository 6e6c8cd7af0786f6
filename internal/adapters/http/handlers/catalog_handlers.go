package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Knick011/BrainBites.v1/internal/application/usecases"
)

type CatalogHandler struct {
	catalogUC  *usecases.CatalogUseCases
	settingsUC *usecases.SettingsUseCases
}

func NewCatalogHandler(catalogUC *usecases.CatalogUseCases, settingsUC *usecases.SettingsUseCases) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, settingsUC: settingsUC}
}

// GetRandomQuestion devolve uma pergunta sorteada da categoria (query
// "category"; ausente usa a categoria padrão). Nunca falha.
func (h *CatalogHandler) GetRandomQuestion(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	question := h.catalogUC.GetRandomQuestion(category)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(question)
}

// GetCategories lista as categorias disponíveis no baralho.
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{
		"categories": h.catalogUC.GetCategories(),
	})
}

// ResetUsedQuestions limpa todo o rastreio de perguntas usadas. Operação
// administrativa: exige o PIN parental quando configurado.
func (h *CatalogHandler) ResetUsedQuestions(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Pin string `json:"pin"`
	}
	// Corpo vazio é aceito (PIN pode não estar configurado)
	json.NewDecoder(r.Body).Decode(&input)

	if err := h.settingsUC.RequirePin(r.Context(), input.Pin); err != nil {
		if errors.Is(err, usecases.ErrPinInvalido) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, "Erro ao validar pin", http.StatusInternalServerError)
		return
	}

	h.catalogUC.ResetUsedQuestions()
	w.WriteHeader(http.StatusNoContent)
}
