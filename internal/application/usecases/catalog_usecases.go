package usecases

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Knick011/BrainBites.v1/internal/domain/trivia"
	"github.com/Knick011/BrainBites.v1/internal/infra/logger"
	"github.com/Knick011/BrainBites.v1/internal/ports"
)

// usedQuestionsRecord é a forma persistida do rastreio de perguntas usadas.
type usedQuestionsRecord struct {
	UsedQuestionIDs []string  `json:"usedQuestionIds"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// CatalogUseCases é o catálogo de perguntas: carrega o baralho uma única vez
// por processo através da cadeia de fontes e sorteia perguntas sem repetição
// de curto prazo por categoria.
type CatalogUseCases struct {
	sources         []ports.QuestionSource
	stateRepo       ports.StateRepository
	resetThreshold  float64
	defaultCategory string

	mu             sync.Mutex
	questions      []trivia.Question
	usedIDs        map[string]struct{}
	categoryCounts map[string]int

	loadOnce sync.Once

	// saveSeq numera os snapshots (sob mu); savedSeq (sob saveMu) garante
	// que uma escrita atrasada nunca sobrescreva uma mais nova.
	saveSeq  uint64
	saveMu   sync.Mutex
	savedSeq uint64
}

func NewCatalogUseCases(
	sources []ports.QuestionSource,
	stateRepo ports.StateRepository,
	resetThreshold float64,
	defaultCategory string,
) *CatalogUseCases {
	if resetThreshold <= 0 || resetThreshold >= 1 {
		resetThreshold = 0.2
	}
	if defaultCategory == "" {
		defaultCategory = trivia.CategoryFunFacts
	}
	return &CatalogUseCases{
		sources:         sources,
		stateRepo:       stateRepo,
		resetThreshold:  resetThreshold,
		defaultCategory: defaultCategory,
		usedIDs:         make(map[string]struct{}),
		categoryCounts:  make(map[string]int),
	}
}

// LoadQuestions executa a cadeia de fontes (no máximo uma vez por processo)
// e restaura o rastreio de perguntas usadas. A primeira fonte que devolver
// ao menos uma pergunta válida vence; se todas falharem ou vierem vazias, o
// conjunto embutido é usado.
func (uc *CatalogUseCases) LoadQuestions(ctx context.Context) {
	uc.loadOnce.Do(func() {
		var rec usedQuestionsRecord
		found, err := uc.stateRepo.Get(ctx, StorageKeyUsedQuestions, &rec)
		if err != nil {
			logger.Warn("Falha ao restaurar perguntas usadas", "erro", err)
		}

		var loaded []trivia.Question
		for _, src := range uc.sources {
			questions, err := src.Load(ctx)
			if err != nil {
				logger.Warn("Fonte de perguntas indisponível", "fonte", src.Name(), "erro", err)
				continue
			}
			if len(questions) == 0 {
				logger.Warn("Fonte de perguntas vazia", "fonte", src.Name())
				continue
			}
			logger.Info("Perguntas carregadas", "fonte", src.Name(), "total", len(questions))
			loaded = questions
			break
		}
		if len(loaded) == 0 {
			logger.Warn("Todas as fontes falharam; usando conjunto embutido")
			loaded = trivia.SeedQuestions()
		}

		uc.mu.Lock()
		defer uc.mu.Unlock()
		uc.questions = loaded
		if found {
			for _, id := range rec.UsedQuestionIDs {
				uc.usedIDs[id] = struct{}{}
			}
		}
		uc.recountCategories()
	})
}

// recountCategories recalcula os totais por categoria. Chamar com uc.mu preso.
func (uc *CatalogUseCases) recountCategories() {
	counts := make(map[string]int)
	for _, q := range uc.questions {
		if q.Category != "" {
			counts[q.Category]++
		}
	}
	uc.categoryCounts = counts
}

// GetRandomQuestion sorteia uma pergunta ainda não usada da categoria.
// Quando a fração de perguntas disponíveis cai abaixo do limiar, o rastreio
// da categoria é zerado (somente dela) e o sorteio recomeça. Nunca falha:
// qualquer situação degenerada devolve a pergunta de emergência da categoria.
func (uc *CatalogUseCases) GetRandomQuestion(category string) trivia.Presentation {
	if category == "" {
		category = uc.defaultCategory
	}

	uc.mu.Lock()

	var pool []trivia.Question
	for _, q := range uc.questions {
		if q.Category == category {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		uc.mu.Unlock()
		logger.Warn("Nenhuma pergunta para a categoria", "categoria", category)
		return trivia.FallbackFor(category)
	}

	// Duas passadas no máximo: a segunda roda após o reset do rastreio.
	for attempt := 0; attempt < 2; attempt++ {
		var available []trivia.Question
		for _, q := range pool {
			if _, used := uc.usedIDs[q.ID]; !used {
				available = append(available, q)
			}
		}

		if float64(len(available)) < uc.resetThreshold*float64(len(pool)) {
			// Zera o rastreio apenas desta categoria, pelo prefixo do ID
			prefix := trivia.CategoryPrefix(category)
			for id := range uc.usedIDs {
				if strings.HasPrefix(id, prefix) {
					delete(uc.usedIDs, id)
				}
			}
			snapshot, seq := uc.usedIDsSnapshot()
			uc.mu.Unlock()

			logger.Info("Rastreio de perguntas zerado", "categoria", category)
			go uc.persistUsedIDs(snapshot, seq)

			uc.mu.Lock()
			continue
		}

		if len(available) == 0 {
			uc.mu.Unlock()
			return trivia.FallbackFor(category)
		}

		question := available[rand.Intn(len(available))]
		uc.usedIDs[question.ID] = struct{}{}
		snapshot, seq := uc.usedIDsSnapshot()
		uc.mu.Unlock()

		go uc.persistUsedIDs(snapshot, seq)
		return question.Present()
	}

	uc.mu.Unlock()
	return trivia.FallbackFor(category)
}

// usedIDsSnapshot copia o conjunto de usados e numera o snapshot.
// Chamar com uc.mu preso.
func (uc *CatalogUseCases) usedIDsSnapshot() ([]string, uint64) {
	ids := make([]string, 0, len(uc.usedIDs))
	for id := range uc.usedIDs {
		ids = append(ids, id)
	}
	uc.saveSeq++
	return ids, uc.saveSeq
}

// persistUsedIDs grava o rastreio em segundo plano. Snapshots atrasados são
// descartados; falhas de persistência são registradas e ignoradas (o estado
// em memória segue valendo).
func (uc *CatalogUseCases) persistUsedIDs(ids []string, seq uint64) {
	uc.saveMu.Lock()
	defer uc.saveMu.Unlock()

	if seq <= uc.savedSeq {
		return
	}
	uc.savedSeq = seq

	rec := usedQuestionsRecord{
		UsedQuestionIDs: ids,
		LastUpdated:     time.Now().UTC(),
	}
	if err := uc.stateRepo.Set(context.Background(), StorageKeyUsedQuestions, rec); err != nil {
		logger.Error("Falha ao persistir perguntas usadas", "erro", err)
	}
}

// GetCategories devolve as categorias presentes no baralho (na ordem em que
// aparecem), ou a lista padrão se o baralho estiver vazio.
func (uc *CatalogUseCases) GetCategories() []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var categories []string
	seen := make(map[string]bool)
	for _, q := range uc.questions {
		if q.Category != "" && !seen[q.Category] {
			seen[q.Category] = true
			categories = append(categories, q.Category)
		}
	}
	if len(categories) == 0 {
		return append([]string(nil), trivia.DefaultCategories...)
	}
	return categories
}

// ResetUsedQuestions limpa todo o rastreio de perguntas usadas e persiste o
// estado limpo. Operação administrativa.
func (uc *CatalogUseCases) ResetUsedQuestions() {
	uc.mu.Lock()
	uc.usedIDs = make(map[string]struct{})
	_, seq := uc.usedIDsSnapshot()
	uc.mu.Unlock()

	uc.persistUsedIDs(nil, seq)
	logger.Info("Rastreio de perguntas usadas limpo")
}
