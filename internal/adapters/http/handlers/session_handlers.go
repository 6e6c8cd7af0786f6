package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Knick011/BrainBites.v1/internal/application/usecases"
)

type SessionHandler struct {
	sessionUC *usecases.SessionUseCases
}

func NewSessionHandler(sessionUC *usecases.SessionUseCases) *SessionHandler {
	return &SessionHandler{sessionUC: sessionUC}
}

// GetSession devolve a sequência atual e o total de acertos.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	streak, correct := h.sessionUC.Stats()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{
		"streak":         streak,
		"correctAnswers": correct,
	})
}

// NextQuestion sorteia e devolve a próxima pergunta da sessão.
func (h *SessionHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Category string `json:"category"`
	}
	// Corpo vazio usa a categoria padrão
	json.NewDecoder(r.Body).Decode(&input)

	question := h.sessionUC.NextQuestion(input.Category)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(question)
}

// SubmitAnswer avalia a resposta da pergunta pendente. Um corpo com
// {"timeout": true} registra estouro de tempo (zera a sequência).
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Answer  string `json:"answer"`
		Timeout bool   `json:"timeout"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if input.Timeout {
		h.sessionUC.Timeout()
		w.WriteHeader(http.StatusNoContent)
		return
	}

	result, err := h.sessionUC.SubmitAnswer(input.Answer)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrSemPerguntaPendente):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, usecases.ErrRespostaInvalida):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Erro ao avaliar resposta", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
