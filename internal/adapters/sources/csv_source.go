package sources

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Knick011/BrainBites.v1/internal/domain/trivia"
)

var ErrCabecalhoInvalido = errors.New("o CSV de perguntas não tem as colunas obrigatórias")

// Colunas obrigatórias do CSV de perguntas.
var requiredColumns = []string{
	"id", "category", "question",
	"optionA", "optionB", "optionC", "optionD",
	"correctAnswer", "explanation",
}

// CSVFileSource carrega perguntas de um arquivo CSV com linha de cabeçalho.
type CSVFileSource struct {
	path string
}

func NewCSVFileSource(path string) *CSVFileSource {
	return &CSVFileSource{path: path}
}

func (s *CSVFileSource) Name() string {
	return "csv:" + s.path
}

func (s *CSVFileSource) Load(ctx context.Context) ([]trivia.Question, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("abrir CSV de perguntas: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // Linhas curtas são descartadas adiante

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("ler cabeçalho do CSV: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: falta %q", ErrCabecalhoInvalido, col)
		}
	}

	var questions []trivia.Question
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Linha malformada não derruba a fonte inteira
			continue
		}

		field := func(name string) string {
			i := index[name]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		questions = append(questions, trivia.Question{
			ID:          field("id"),
			Category:    field("category"),
			Prompt:      field("question"),
			OptionA:     field("optionA"),
			OptionB:     field("optionB"),
			OptionC:     field("optionC"),
			OptionD:     field("optionD"),
			CorrectKey:  field("correctAnswer"),
			Explanation: field("explanation"),
		})
	}

	return filterUsable(questions), nil
}
