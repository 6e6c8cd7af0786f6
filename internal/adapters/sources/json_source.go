package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Knick011/BrainBites.v1/internal/domain/trivia"
)

// JSONFileSource carrega perguntas de um arquivo JSON empacotado com a
// aplicação (lista de objetos no mesmo formato do CSV).
type JSONFileSource struct {
	path string
}

func NewJSONFileSource(path string) *JSONFileSource {
	return &JSONFileSource{path: path}
}

func (s *JSONFileSource) Name() string {
	return "json:" + s.path
}

func (s *JSONFileSource) Load(ctx context.Context) ([]trivia.Question, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("ler bundle de perguntas: %w", err)
	}

	var questions []trivia.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("decodificar bundle de perguntas: %w", err)
	}

	return filterUsable(questions), nil
}

// filterUsable normaliza a resposta e descarta linhas que não formam uma
// pergunta respondível (sem id, sem enunciado, sem alternativas ou com a
// resposta fora delas).
func filterUsable(questions []trivia.Question) []trivia.Question {
	usable := make([]trivia.Question, 0, len(questions))
	for _, q := range questions {
		q.CorrectKey = normalizeKey(q.CorrectKey)
		if err := q.Validate(); err != nil {
			continue
		}
		usable = append(usable, q)
	}
	return usable
}

func normalizeKey(key string) string {
	switch key {
	case "a":
		return "A"
	case "b":
		return "B"
	case "c":
		return "C"
	case "d":
		return "D"
	}
	return key
}
