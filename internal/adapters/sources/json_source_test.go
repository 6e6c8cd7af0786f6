package sources

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Knick011/BrainBites.v1/internal/domain/trivia"
)

func TestJSONFileSourceLoad(t *testing.T) {
	jsonContent := `[
		{"id": "F1", "category": "funfacts", "question": "Q1?",
		 "optionA": "a", "optionB": "b", "optionC": "c", "optionD": "d",
		 "correctAnswer": "b", "explanation": "E1."},
		{"id": "", "category": "funfacts", "question": "No id",
		 "optionA": "a", "optionB": "b", "correctAnswer": "A", "explanation": ""}
	]`

	src := NewJSONFileSource(writeTempFile(t, "questions.json", jsonContent))
	questions, err := src.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(questions) != 1 {
		t.Fatalf("perguntas=%d, esperava 1", len(questions))
	}
	q := questions[0]
	if q.ID != "F1" || q.CorrectKey != "B" || q.Prompt != "Q1?" {
		t.Fatalf("pergunta inesperada: %+v", q)
	}
}

func TestJSONFileSourceInvalidPayload(t *testing.T) {
	src := NewJSONFileSource(writeTempFile(t, "questions.json", "{not json"))
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("esperava erro de decodificação")
	}
}

func TestJSONFileSourceMissingFile(t *testing.T) {
	src := NewJSONFileSource(filepath.Join(t.TempDir(), "nao-existe.json"))
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("esperava erro de arquivo ausente")
	}
}

func TestSeedSource(t *testing.T) {
	src := NewSeedSource()
	questions, err := src.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for _, q := range questions {
		seen[q.Category] = true
	}
	for _, category := range trivia.DefaultCategories {
		if !seen[category] {
			t.Errorf("conjunto embutido sem a categoria %q", category)
		}
	}
}
