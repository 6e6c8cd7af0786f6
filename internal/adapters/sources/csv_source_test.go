package sources

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSVFileSourceLoad(t *testing.T) {
	csvContent := "id,category,question,optionA,optionB,optionC,optionD,correctAnswer,explanation\n" +
		"M1,math,What is 2+2?,3,4,5,6,B,Basic addition.\n" +
		",math,Row without id,1,2,3,4,A,Discarded.\n" +
		"M2,math,,1,2,3,4,A,Discarded (no question).\n" +
		"H1,history,Who discovered Brazil?,Cabral,Colombo,Magalhães,Vespúcio,a,Pedro Álvares Cabral in 1500.\n"

	src := NewCSVFileSource(writeTempFile(t, "questions.csv", csvContent))
	questions, err := src.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// Linhas sem id ou sem enunciado são descartadas
	if len(questions) != 2 {
		t.Fatalf("perguntas=%d, esperava 2: %+v", len(questions), questions)
	}
	if questions[0].ID != "M1" || questions[0].CorrectKey != "B" {
		t.Fatalf("primeira pergunta inesperada: %+v", questions[0])
	}
	// Resposta em minúscula é normalizada
	if questions[1].ID != "H1" || questions[1].CorrectKey != "A" {
		t.Fatalf("segunda pergunta inesperada: %+v", questions[1])
	}
}

func TestCSVFileSourceMissingColumn(t *testing.T) {
	csvContent := "id,category,question\nM1,math,Incomplete header\n"
	src := NewCSVFileSource(writeTempFile(t, "questions.csv", csvContent))

	if _, err := src.Load(context.Background()); !errors.Is(err, ErrCabecalhoInvalido) {
		t.Fatalf("esperava ErrCabecalhoInvalido, veio %v", err)
	}
}

func TestCSVFileSourceMissingFile(t *testing.T) {
	src := NewCSVFileSource(filepath.Join(t.TempDir(), "nao-existe.csv"))
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("esperava erro de arquivo ausente")
	}
}

func TestCSVFileSourceShortRows(t *testing.T) {
	csvContent := "id,category,question,optionA,optionB,optionC,optionD,correctAnswer,explanation\n" +
		"M1,math,Short row\n" +
		"M2,math,Complete row,1,2,3,4,A,Fine.\n"

	src := NewCSVFileSource(writeTempFile(t, "questions.csv", csvContent))
	questions, err := src.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	// A linha curta tem id e enunciado mas nenhuma alternativa: uma pergunta
	// sem resposta possível nunca pode chegar ao sorteio
	if len(questions) != 1 {
		t.Fatalf("perguntas=%d, esperava 1: %+v", len(questions), questions)
	}
	if questions[0].ID != "M2" || questions[0].OptionD != "4" {
		t.Fatalf("linha completa inesperada: %+v", questions[0])
	}
}

func TestCSVFileSourceDiscardsUnanswerableRows(t *testing.T) {
	csvContent := "id,category,question,optionA,optionB,optionC,optionD,correctAnswer,explanation\n" +
		"M1,math,No answer key,1,2,3,4,,Discarded.\n" +
		"M2,math,Answer outside options,1,2,,,C,Discarded.\n" +
		"M3,math,Fine,1,2,,,B,Kept.\n"

	src := NewCSVFileSource(writeTempFile(t, "questions.csv", csvContent))
	questions, err := src.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 1 || questions[0].ID != "M3" {
		t.Fatalf("perguntas=%+v, esperava apenas M3", questions)
	}
}
