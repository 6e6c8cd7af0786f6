package usecases

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Knick011/BrainBites.v1/internal/domain/ledger"
)

func TestAddCreditsIncreasesBalance(t *testing.T) {
	uc := NewLedgerUseCases(newMemoryStateRepo(), time.Second)

	if err := uc.AddCredits(30); err != nil {
		t.Fatal(err)
	}
	if bal := uc.GetAvailableTime(); bal != 30 {
		t.Fatalf("saldo=%d, esperava 30", bal)
	}
	if err := uc.AddCredits(120); err != nil {
		t.Fatal(err)
	}
	if bal := uc.GetAvailableTime(); bal != 150 {
		t.Fatalf("saldo=%d, esperava 150", bal)
	}
}

func TestAddCreditsRejectsNonPositive(t *testing.T) {
	uc := NewLedgerUseCases(newMemoryStateRepo(), time.Second)

	for _, seconds := range []int{0, -5} {
		if err := uc.AddCredits(seconds); !errors.Is(err, ErrRecompensaInvalida) {
			t.Fatalf("AddCredits(%d): esperava ErrRecompensaInvalida, veio %v", seconds, err)
		}
	}
	if bal := uc.GetAvailableTime(); bal != 0 {
		t.Fatalf("saldo=%d, esperava 0", bal)
	}
}

func TestAddCreditsEmitsEvent(t *testing.T) {
	uc := NewLedgerUseCases(newMemoryStateRepo(), time.Second)

	var got []ledger.Event
	uc.AddEventListener(func(ev ledger.Event) { got = append(got, ev) })

	uc.AddCredits(30)

	if len(got) != 1 {
		t.Fatalf("eventos=%d, esperava 1", len(got))
	}
	ev := got[0]
	if ev.Event != ledger.EventCreditsAdded || ev.Balance != 30 || ev.Delta != 30 {
		t.Fatalf("evento inesperado: %+v", ev)
	}
}

// Observadores recebem na ordem de registro; remover um observador durante
// um dispatch não afeta a entrega do evento corrente aos demais.
func TestListenersOrderAndUnregisterDuringDispatch(t *testing.T) {
	uc := NewLedgerUseCases(newMemoryStateRepo(), time.Second)

	var order []string
	var removeSecond func()
	uc.AddEventListener(func(ev ledger.Event) {
		order = append(order, "primeiro")
		removeSecond()
	})
	removeSecond = uc.AddEventListener(func(ev ledger.Event) {
		order = append(order, "segundo")
	})
	uc.AddEventListener(func(ev ledger.Event) {
		order = append(order, "terceiro")
	})

	uc.AddCredits(10)

	// O dispatch corrente usa a lista da hora do evento
	if len(order) != 3 || order[0] != "primeiro" || order[1] != "segundo" || order[2] != "terceiro" {
		t.Fatalf("ordem inesperada no primeiro evento: %v", order)
	}

	order = nil
	uc.AddCredits(10)
	if len(order) != 2 || order[0] != "primeiro" || order[1] != "terceiro" {
		t.Fatalf("segundo evento deveria pular o observador removido: %v", order)
	}
}

// Saldo 45, gasto nunca desligado, 50 ticks: o saldo lê 0 (nunca negativo)
// e exhausted dispara exatamente uma vez, no tick em que o saldo zera.
func TestTickClampsAtZeroAndExhaustsOnce(t *testing.T) {
	uc := NewLedgerUseCases(newMemoryStateRepo(), time.Second)
	uc.AddCredits(45)

	var updates, exhausted int
	uc.AddEventListener(func(ev ledger.Event) {
		switch ev.Event {
		case ledger.EventTimeUpdate:
			updates++
			if ev.Balance < 0 {
				t.Fatalf("saldo negativo em evento: %+v", ev)
			}
		case ledger.EventExhausted:
			exhausted++
		}
	})

	// Liga a contagem sem o ticker real: os ticks são disparados à mão
	uc.mu.Lock()
	uc.active = true
	uc.mu.Unlock()

	for i := 0; i < 50; i++ {
		uc.tick()
	}

	if bal := uc.GetAvailableTime(); bal != 0 {
		t.Fatalf("saldo=%d, esperava 0", bal)
	}
	if exhausted != 1 {
		t.Fatalf("exhausted disparou %d vezes, esperava 1", exhausted)
	}
	// 45 decrementos reais; os 5 ticks restantes não emitem nada
	if updates != 45 {
		t.Fatalf("timeUpdate disparou %d vezes, esperava 45", updates)
	}
}

func TestStartAndStopSpending(t *testing.T) {
	uc := NewLedgerUseCases(newMemoryStateRepo(), 10*time.Millisecond)
	uc.AddCredits(1000)

	ticks := make(chan int, 100)
	uc.AddEventListener(func(ev ledger.Event) {
		if ev.Event == ledger.EventTimeUpdate {
			select {
			case ticks <- ev.Balance:
			default:
			}
		}
	})

	uc.StartSpending()
	// Ligar de novo com o gasto ativo é no-op
	uc.StartSpending()

	// Espera ao menos dois decrementos
	for i := 0; i < 2; i++ {
		select {
		case <-ticks:
		case <-time.After(time.Second):
			t.Fatal("contagem regressiva não andou")
		}
	}

	uc.StopSpending()
	after := uc.GetAvailableTime()
	if after >= 1000 {
		t.Fatalf("saldo=%d, deveria ter diminuído", after)
	}

	// Nenhum decremento depois do StopSpending
	time.Sleep(50 * time.Millisecond)
	if bal := uc.GetAvailableTime(); bal != after {
		t.Fatalf("saldo mudou de %d para %d após parar", after, bal)
	}

	// Parar de novo é no-op
	uc.StopSpending()
}

func TestStartSpendingWithZeroBalanceIsNoOp(t *testing.T) {
	uc := NewLedgerUseCases(newMemoryStateRepo(), 5*time.Millisecond)

	uc.StartSpending()
	time.Sleep(20 * time.Millisecond)

	if bal := uc.GetAvailableTime(); bal != 0 {
		t.Fatalf("saldo=%d, esperava 0", bal)
	}
}

func TestCountdownStopsItselfWhenExhausted(t *testing.T) {
	uc := NewLedgerUseCases(newMemoryStateRepo(), 5*time.Millisecond)
	uc.AddCredits(3)

	done := make(chan struct{})
	uc.AddEventListener(func(ev ledger.Event) {
		if ev.Event == ledger.EventExhausted {
			close(done)
		}
	})

	uc.StartSpending()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("exhausted não disparou")
	}

	if bal := uc.GetAvailableTime(); bal != 0 {
		t.Fatalf("saldo=%d, esperava 0", bal)
	}

	// Depois de esgotar, ligar de novo com saldo zero é no-op
	uc.StartSpending()
	time.Sleep(20 * time.Millisecond)
	if bal := uc.GetAvailableTime(); bal != 0 {
		t.Fatalf("saldo=%d, esperava 0", bal)
	}
}

func TestBalanceSurvivesRestart(t *testing.T) {
	repo := newMemoryStateRepo()

	uc1 := NewLedgerUseCases(repo, time.Second)
	uc1.AddCredits(77)
	waitForBalance(t, repo, 77)

	// "Reinício": nova instância sobre o mesmo repositório
	uc2 := NewLedgerUseCases(repo, time.Second)
	uc2.LoadSavedTime(context.Background())
	if bal := uc2.GetAvailableTime(); bal != 77 {
		t.Fatalf("saldo restaurado=%d, esperava 77", bal)
	}
}

func TestLoadSavedTimeDefaultsToZero(t *testing.T) {
	uc := NewLedgerUseCases(newMemoryStateRepo(), time.Second)
	uc.LoadSavedTime(context.Background())
	if bal := uc.GetAvailableTime(); bal != 0 {
		t.Fatalf("saldo=%d, esperava 0", bal)
	}
}

func TestCleanupStopsCountdownAndDropsListeners(t *testing.T) {
	uc := NewLedgerUseCases(newMemoryStateRepo(), 10*time.Millisecond)
	uc.AddCredits(100)

	var called atomic.Int32
	uc.AddEventListener(func(ev ledger.Event) { called.Add(1) })

	uc.StartSpending()
	uc.Cleanup()

	before := uc.GetAvailableTime()
	time.Sleep(40 * time.Millisecond)
	if bal := uc.GetAvailableTime(); bal != before {
		t.Fatalf("saldo mudou de %d para %d após Cleanup", before, bal)
	}

	called.Store(0)
	uc.AddCredits(10)
	if n := called.Load(); n != 0 {
		t.Fatalf("observador chamado %d vezes após Cleanup", n)
	}
}
