package sources

import (
	"context"

	"github.com/Knick011/BrainBites.v1/internal/domain/trivia"
)

// SeedSource é a última estratégia da cadeia: devolve o conjunto embutido
// de perguntas para que o catálogo nunca fique vazio.
type SeedSource struct{}

func NewSeedSource() *SeedSource {
	return &SeedSource{}
}

func (s *SeedSource) Name() string {
	return "seed"
}

func (s *SeedSource) Load(ctx context.Context) ([]trivia.Question, error) {
	return trivia.SeedQuestions(), nil
}
