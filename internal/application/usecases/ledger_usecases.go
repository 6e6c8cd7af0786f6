package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Knick011/BrainBites.v1/internal/domain/ledger"
	"github.com/Knick011/BrainBites.v1/internal/infra/logger"
	"github.com/Knick011/BrainBites.v1/internal/ports"
)

// listenerEntry associa um identificador de inscrição ao callback.
type listenerEntry struct {
	id string
	fn func(ledger.Event)
}

// LedgerUseCases mantém o saldo de tempo de tela: créditos por acerto,
// contagem regressiva enquanto o gasto está ativo, persistência e
// notificação de observadores a cada mudança.
type LedgerUseCases struct {
	stateRepo    ports.StateRepository
	tickInterval time.Duration

	mu        sync.Mutex
	balance   int
	active    bool
	stop      chan struct{}
	listeners []listenerEntry

	// saveSeq numera os snapshots (sob mu); savedSeq (sob saveMu) garante
	// que uma escrita atrasada nunca sobrescreva uma mais nova.
	saveSeq  uint64
	saveMu   sync.Mutex
	savedSeq uint64
}

func NewLedgerUseCases(stateRepo ports.StateRepository, tickInterval time.Duration) *LedgerUseCases {
	if tickInterval <= 0 {
		tickInterval = time.Second
	}
	return &LedgerUseCases{
		stateRepo:    stateRepo,
		tickInterval: tickInterval,
	}
}

// LoadSavedTime restaura o saldo da última gravação; sem gravação anterior o
// saldo começa em zero. Não aplica decaimento offline: o saldo só diminui
// enquanto o gasto está explicitamente ativo.
func (uc *LedgerUseCases) LoadSavedTime(ctx context.Context) {
	var snap ledger.Snapshot
	found, err := uc.stateRepo.Get(ctx, StorageKeyBalance, &snap)
	if err != nil {
		logger.Warn("Falha ao restaurar saldo de tempo", "erro", err)
		return
	}
	if !found {
		return
	}

	uc.mu.Lock()
	uc.balance = max(snap.BalanceSeconds, 0)
	uc.mu.Unlock()
	logger.Info("Saldo de tempo restaurado", "saldo", snap.BalanceSeconds)
}

// AddCredits soma segundos ao saldo, persiste e emite creditsAdded.
func (uc *LedgerUseCases) AddCredits(seconds int) error {
	if seconds <= 0 {
		return ErrRecompensaInvalida
	}

	uc.mu.Lock()
	uc.balance += seconds
	balance := uc.balance
	uc.saveSeq++
	seq := uc.saveSeq
	listeners := uc.listenersSnapshot()
	uc.mu.Unlock()

	uc.dispatch(listeners, ledger.Event{
		Event:   ledger.EventCreditsAdded,
		Balance: balance,
		Delta:   seconds,
	})
	go uc.persistBalance(balance, seq)
	return nil
}

// GetAvailableTime devolve o saldo atual em segundos.
func (uc *LedgerUseCases) GetAvailableTime() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.balance
}

// FormatTime formata um total de segundos para exibição.
func (uc *LedgerUseCases) FormatTime(seconds int) string {
	return ledger.FormatTime(seconds)
}

// StartSpending liga a contagem regressiva. Chamadas com o gasto já ativo ou
// com saldo zerado são no-ops.
func (uc *LedgerUseCases) StartSpending() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.active || uc.balance <= 0 {
		return
	}
	uc.active = true
	uc.stop = make(chan struct{})
	go uc.run(uc.stop)
}

// StopSpending desliga a contagem regressiva. No-op se já estiver parada.
// Nenhum decremento ocorre depois do retorno, mesmo com um tick em voo: o
// tick confere a flag de atividade sob o mutex antes de debitar.
func (uc *LedgerUseCases) StopSpending() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.active {
		return
	}
	uc.active = false
	close(uc.stop)
	uc.stop = nil
}

// run é o laço da contagem regressiva; roda em goroutine própria.
func (uc *LedgerUseCases) run(stop <-chan struct{}) {
	ticker := time.NewTicker(uc.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !uc.tick() {
				return
			}
		}
	}
}

// tick debita um segundo do saldo e notifica os observadores. Devolve false
// quando a contagem deve parar (gasto desligado ou saldo esgotado).
func (uc *LedgerUseCases) tick() bool {
	uc.mu.Lock()
	if !uc.active {
		uc.mu.Unlock()
		return false
	}
	if uc.balance > 0 {
		uc.balance--
	}
	balance := uc.balance
	exhausted := balance == 0
	if exhausted {
		// A contagem se encerra sozinha no instante em que o saldo zera
		uc.active = false
		uc.stop = nil
	}
	uc.saveSeq++
	seq := uc.saveSeq
	listeners := uc.listenersSnapshot()
	uc.mu.Unlock()

	uc.dispatch(listeners, ledger.Event{
		Event:   ledger.EventTimeUpdate,
		Balance: balance,
	})
	if exhausted {
		uc.dispatch(listeners, ledger.Event{
			Event:   ledger.EventExhausted,
			Balance: 0,
		})
	}
	go uc.persistBalance(balance, seq)
	return !exhausted
}

// AddEventListener registra um observador para todos os eventos futuros e
// devolve a função que o remove. Observadores recebem os eventos na ordem
// de registro; remover um observador durante um dispatch não afeta a entrega
// aos demais (o dispatch itera uma cópia da lista).
func (uc *LedgerUseCases) AddEventListener(fn func(ledger.Event)) func() {
	id := uuid.NewString()

	uc.mu.Lock()
	uc.listeners = append(uc.listeners, listenerEntry{id: id, fn: fn})
	uc.mu.Unlock()

	return func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		for i, entry := range uc.listeners {
			if entry.id == id {
				uc.listeners = append(uc.listeners[:i], uc.listeners[i+1:]...)
				return
			}
		}
	}
}

// listenersSnapshot copia a lista de observadores. Chamar com uc.mu preso.
func (uc *LedgerUseCases) listenersSnapshot() []listenerEntry {
	return append([]listenerEntry(nil), uc.listeners...)
}

func (uc *LedgerUseCases) dispatch(listeners []listenerEntry, event ledger.Event) {
	for _, entry := range listeners {
		entry.fn(event)
	}
}

// persistBalance grava o saldo em segundo plano. Snapshots atrasados são
// descartados; falhas são registradas e ignoradas (o estado em memória
// segue valendo).
func (uc *LedgerUseCases) persistBalance(balance int, seq uint64) {
	uc.saveMu.Lock()
	defer uc.saveMu.Unlock()

	if seq <= uc.savedSeq {
		return
	}
	uc.savedSeq = seq

	snap := ledger.Snapshot{
		BalanceSeconds:  balance,
		LastPersistedAt: time.Now().UTC(),
	}
	if err := uc.stateRepo.Set(context.Background(), StorageKeyBalance, snap); err != nil {
		logger.Error("Falha ao persistir saldo de tempo", "erro", err)
	}
}

// Cleanup para a contagem regressiva e descarta todos os observadores.
// Usado no desligamento do processo.
func (uc *LedgerUseCases) Cleanup() {
	uc.StopSpending()

	uc.mu.Lock()
	uc.listeners = nil
	uc.mu.Unlock()
}
