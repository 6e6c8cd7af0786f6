package security

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implementa a interface PinHasher usando bcrypt.
type BcryptHasher struct{}

// NewBcryptHasher cria uma nova instância de BcryptHasher.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

// HashPin gera um hash seguro do PIN parental.
func (h *BcryptHasher) HashPin(pin string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// ComparePin compara um PIN em texto plano com um hash.
func (h *BcryptHasher) ComparePin(hash, pin string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
}
