package ports

import (
	"context"

	"github.com/Knick011/BrainBites.v1/internal/domain/ledger"
	"github.com/Knick011/BrainBites.v1/internal/domain/trivia"
)

// QuestionSource é uma estratégia de carregamento de perguntas. O catálogo
// percorre uma lista ordenada de fontes e fica com a primeira que devolver
// ao menos uma pergunta válida.
type QuestionSource interface {
	// Name identifica a fonte nos logs.
	Name() string

	// Load devolve as perguntas da fonte. Uma fonte indisponível devolve
	// erro; uma fonte vazia devolve lista vazia sem erro.
	Load(ctx context.Context) ([]trivia.Question, error)
}

// StateRepository define a persistência chave/valor do estado da aplicação.
// Os valores são codificados em JSON pelo adapter.
type StateRepository interface {
	// Get decodifica o valor da chave em dest. Devolve false se a chave
	// não existe (sem erro).
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set grava o valor da chave (última escrita vence).
	Set(ctx context.Context, key string, value any) error
}

// EventBroadcaster define o contrato de fan-out de eventos para a camada
// de interface (WebSocket).
type EventBroadcaster interface {
	Broadcast(event ledger.Event)
}

// PinHasher define o contrato para hash e verificação do PIN parental.
type PinHasher interface {
	// HashPin gera um hash seguro do PIN.
	HashPin(pin string) (string, error)

	// ComparePin compara um PIN em texto plano com um hash.
	// Devolve nil se forem iguais, ou erro se forem diferentes.
	ComparePin(hash, pin string) error
}
