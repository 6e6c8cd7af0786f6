package usecases

import "errors"

// Casos de erro comuns
var (
	ErrRecompensaInvalida  = errors.New("a quantidade de créditos deve ser positiva")
	ErrPinInvalido         = errors.New("pin parental inválido")
	ErrPinCurto            = errors.New("o pin deve ter ao menos 4 dígitos")
	ErrSemPerguntaPendente = errors.New("nenhuma pergunta pendente na sessão")
	ErrRespostaInvalida    = errors.New("a resposta deve ser uma das alternativas (A-D)")
)

// Chaves do estado persistido.
const (
	StorageKeyUsedQuestions = "quiz_used_question_ids"
	StorageKeyBalance       = "time_ledger_balance"
	StorageKeySounds        = "sounds_enabled"
	StorageKeyOnboarding    = "onboarding_complete"
	StorageKeyMascot        = "mascot_enabled"
	StorageKeyParentalPin   = "parental_pin_hash"
)
