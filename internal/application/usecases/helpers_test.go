package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Knick011/BrainBites.v1/internal/domain/ledger"
	"github.com/Knick011/BrainBites.v1/internal/domain/trivia"
)

// memoryStateRepo implementa ports.StateRepository em memória, com a mesma
// codificação JSON do adapter SQLite.
type memoryStateRepo struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryStateRepo() *memoryStateRepo {
	return &memoryStateRepo{data: make(map[string][]byte)}
}

func (r *memoryStateRepo) Get(ctx context.Context, key string, dest any) (bool, error) {
	r.mu.Lock()
	raw, ok := r.data[key]
	r.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *memoryStateRepo) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.data[key] = raw
	r.mu.Unlock()
	return nil
}

// waitForUsedIDs espera a escrita assíncrona do rastreio alcançar n ids.
func waitForUsedIDs(t *testing.T, repo *memoryStateRepo, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		var rec usedQuestionsRecord
		found, err := repo.Get(context.Background(), StorageKeyUsedQuestions, &rec)
		if err != nil {
			t.Fatalf("ler rastreio: %v", err)
		}
		if found && len(rec.UsedQuestionIDs) == n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("rastreio não alcançou %d ids persistidos", n)
}

// waitForBalance espera a escrita assíncrona do saldo alcançar o valor.
func waitForBalance(t *testing.T, repo *memoryStateRepo, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		var snap ledger.Snapshot
		found, err := repo.Get(context.Background(), StorageKeyBalance, &snap)
		if err != nil {
			t.Fatalf("ler saldo: %v", err)
		}
		if found && snap.BalanceSeconds == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("saldo persistido não alcançou %d", want)
}

// staticSource devolve uma lista fixa de perguntas (ou um erro fixo).
type staticSource struct {
	name      string
	questions []trivia.Question
	err       error
	loads     int
}

func (s *staticSource) Name() string { return s.name }

func (s *staticSource) Load(ctx context.Context) ([]trivia.Question, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.questions, nil
}

var errFonteIndisponivel = errors.New("fonte indisponível")

// mathQuestions gera n perguntas da categoria math com ids M1..Mn.
func mathQuestions(n int) []trivia.Question {
	questions := make([]trivia.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, trivia.Question{
			ID:          fmt.Sprintf("M%d", i),
			Category:    trivia.CategoryMath,
			Prompt:      fmt.Sprintf("Question %d", i),
			OptionA:     "right",
			OptionB:     "wrong",
			OptionC:     "wrong",
			OptionD:     "wrong",
			CorrectKey:  "A",
			Explanation: "Because.",
		})
	}
	return questions
}

// recordingBroadcaster captura eventos transmitidos.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []ledger.Event
}

func (b *recordingBroadcaster) Broadcast(event ledger.Event) {
	b.mu.Lock()
	b.events = append(b.events, event)
	b.mu.Unlock()
}

func (b *recordingBroadcaster) all() []ledger.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]ledger.Event(nil), b.events...)
}
