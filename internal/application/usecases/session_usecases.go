package usecases

import (
	"strings"
	"sync"

	"github.com/Knick011/BrainBites.v1/internal/domain/ledger"
	"github.com/Knick011/BrainBites.v1/internal/domain/trivia"
	"github.com/Knick011/BrainBites.v1/internal/infra/logger"
	"github.com/Knick011/BrainBites.v1/internal/ports"
)

// SessionUseCases coordena o fluxo de quiz: sorteia a próxima pergunta,
// avalia a resposta e aplica a política de recompensas sobre o saldo.
// A sequência de acertos (streak) vale apenas para a sessão do processo.
type SessionUseCases struct {
	catalog     *CatalogUseCases
	ledgerUC    *LedgerUseCases
	broadcaster ports.EventBroadcaster

	baseReward      int
	milestoneReward int
	milestoneEvery  int

	mu      sync.Mutex
	current *trivia.Presentation
	streak  int
	correct int
}

// RewardPolicy parametriza a política de recompensas. Os valores observados
// no produto (30s, 120s a cada 5 acertos) são os padrões da configuração.
type RewardPolicy struct {
	BaseSeconds      int
	MilestoneSeconds int
	MilestoneEvery   int
}

func NewSessionUseCases(
	catalog *CatalogUseCases,
	ledgerUC *LedgerUseCases,
	broadcaster ports.EventBroadcaster,
	rewards RewardPolicy,
) *SessionUseCases {
	if rewards.BaseSeconds <= 0 {
		rewards.BaseSeconds = 30
	}
	if rewards.MilestoneSeconds <= 0 {
		rewards.MilestoneSeconds = 120
	}
	if rewards.MilestoneEvery <= 0 {
		rewards.MilestoneEvery = 5
	}
	return &SessionUseCases{
		catalog:         catalog,
		ledgerUC:        ledgerUC,
		broadcaster:     broadcaster,
		baseReward:      rewards.BaseSeconds,
		milestoneReward: rewards.MilestoneSeconds,
		milestoneEvery:  rewards.MilestoneEvery,
	}
}

// NextQuestion sorteia a próxima pergunta da categoria e a guarda como
// pendente de resposta. Nunca falha (o catálogo degrada para a pergunta de
// emergência).
func (uc *SessionUseCases) NextQuestion(category string) trivia.Presentation {
	question := uc.catalog.GetRandomQuestion(category)

	uc.mu.Lock()
	uc.current = &question
	uc.mu.Unlock()

	return question
}

// AnswerResult resume o efeito de uma resposta sobre a sessão.
type AnswerResult struct {
	Correct         bool   `json:"correct"`
	Streak          int    `json:"streak"`
	Milestone       bool   `json:"milestone"`
	CreditedSeconds int    `json:"creditedSeconds"`
	CorrectAnswer   string `json:"correctAnswer"`
	Explanation     string `json:"explanation"`
}

// SubmitAnswer avalia a alternativa escolhida contra a pergunta pendente.
// Acerto soma 1 à sequência e credita a recompensa base; a cada fechamento
// de sequência (múltiplo configurável) a recompensa é a de bônus e um evento
// streakMilestone é transmitido. Erro zera a sequência sem crédito.
func (uc *SessionUseCases) SubmitAnswer(answer string) (*AnswerResult, error) {
	answer = strings.ToUpper(strings.TrimSpace(answer))
	if answer != "A" && answer != "B" && answer != "C" && answer != "D" {
		return nil, ErrRespostaInvalida
	}

	uc.mu.Lock()
	if uc.current == nil {
		uc.mu.Unlock()
		return nil, ErrSemPerguntaPendente
	}
	question := *uc.current
	uc.current = nil

	result := &AnswerResult{
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   question.Explanation,
	}

	if answer != question.CorrectAnswer {
		uc.streak = 0
		uc.mu.Unlock()
		return result, nil
	}

	uc.streak++
	uc.correct++
	result.Correct = true
	result.Streak = uc.streak
	result.Milestone = uc.streak%uc.milestoneEvery == 0
	streak := uc.streak
	uc.mu.Unlock()

	credit := uc.baseReward
	if result.Milestone {
		credit = uc.milestoneReward
	}
	if err := uc.ledgerUC.AddCredits(credit); err != nil {
		logger.Error("Falha ao creditar recompensa", "erro", err)
	} else {
		result.CreditedSeconds = credit
	}

	if result.Milestone && uc.broadcaster != nil {
		uc.broadcaster.Broadcast(ledger.Event{
			Event:   ledger.EventStreakMilestone,
			Balance: uc.ledgerUC.GetAvailableTime(),
			Streak:  streak,
		})
	}

	return result, nil
}

// Timeout registra o estouro do tempo de resposta: zera a sequência e
// descarta a pergunta pendente, sem crédito.
func (uc *SessionUseCases) Timeout() {
	uc.mu.Lock()
	uc.streak = 0
	uc.current = nil
	uc.mu.Unlock()
}

// Stats devolve a sequência atual e o total de acertos da sessão.
func (uc *SessionUseCases) Stats() (streak, correct int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.streak, uc.correct
}
