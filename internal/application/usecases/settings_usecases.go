package usecases

import (
	"context"

	"github.com/Knick011/BrainBites.v1/internal/infra/logger"
	"github.com/Knick011/BrainBites.v1/internal/ports"
)

// Settings agrupa as preferências consumidas pela camada de interface.
type Settings struct {
	SoundsEnabled      bool `json:"soundsEnabled"`
	OnboardingComplete bool `json:"onboardingComplete"`
	MascotEnabled      bool `json:"mascotEnabled"`
}

// SettingsUseCases persiste as preferências da interface e o PIN parental
// que protege as operações administrativas (reset do rastreio e crédito
// manual de tempo).
type SettingsUseCases struct {
	stateRepo ports.StateRepository
	hasher    ports.PinHasher
}

func NewSettingsUseCases(stateRepo ports.StateRepository, hasher ports.PinHasher) *SettingsUseCases {
	return &SettingsUseCases{stateRepo: stateRepo, hasher: hasher}
}

// GetSettings devolve as preferências persistidas; ausências assumem o
// padrão (sons e mascote ligados, onboarding pendente).
func (uc *SettingsUseCases) GetSettings(ctx context.Context) Settings {
	s := Settings{SoundsEnabled: true, MascotEnabled: true}
	uc.readFlag(ctx, StorageKeySounds, &s.SoundsEnabled)
	uc.readFlag(ctx, StorageKeyOnboarding, &s.OnboardingComplete)
	uc.readFlag(ctx, StorageKeyMascot, &s.MascotEnabled)
	return s
}

func (uc *SettingsUseCases) readFlag(ctx context.Context, key string, dest *bool) {
	var v bool
	found, err := uc.stateRepo.Get(ctx, key, &v)
	if err != nil {
		logger.Warn("Falha ao ler preferência", "chave", key, "erro", err)
		return
	}
	if found {
		*dest = v
	}
}

// UpdateSettings grava as três preferências.
func (uc *SettingsUseCases) UpdateSettings(ctx context.Context, s Settings) error {
	if err := uc.stateRepo.Set(ctx, StorageKeySounds, s.SoundsEnabled); err != nil {
		return err
	}
	if err := uc.stateRepo.Set(ctx, StorageKeyOnboarding, s.OnboardingComplete); err != nil {
		return err
	}
	return uc.stateRepo.Set(ctx, StorageKeyMascot, s.MascotEnabled)
}

// SetPin define (ou troca) o PIN parental.
func (uc *SettingsUseCases) SetPin(ctx context.Context, pin string) error {
	if len(pin) < 4 {
		return ErrPinCurto
	}
	hash, err := uc.hasher.HashPin(pin)
	if err != nil {
		return err
	}
	return uc.stateRepo.Set(ctx, StorageKeyParentalPin, hash)
}

// RequirePin valida o PIN contra o hash persistido. Enquanto nenhum PIN
// estiver configurado, as operações administrativas ficam liberadas.
func (uc *SettingsUseCases) RequirePin(ctx context.Context, pin string) error {
	var hash string
	found, err := uc.stateRepo.Get(ctx, StorageKeyParentalPin, &hash)
	if err != nil {
		logger.Warn("Falha ao ler pin parental", "erro", err)
		return err
	}
	if !found || hash == "" {
		return nil
	}
	if err := uc.hasher.ComparePin(hash, pin); err != nil {
		return ErrPinInvalido
	}
	return nil
}
