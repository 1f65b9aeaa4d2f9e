package password

import (
	"sync"

	"fervo/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty         = errs.New("password is empty")
	ErrMismatch      = errs.New("password does not match")
	ErrHashingFailed = errs.New("password hashing failed")
)

// Cost matches the seeded fixture hashes.
const Cost = 12

var (
	decoyOnce sync.Once
	decoyHash []byte
)

func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.WrapAs(err, "bcrypt", ErrHashingFailed)
	}
	return string(b), nil
}

// Verify returns ErrMismatch when plain does not produce hash.
func Verify(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrEmpty
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "bcrypt compare")
	}
}

// Equalize spends one comparison so logins for unknown emails take as long as wrong passwords.
func Equalize(plain string) {
	decoyOnce.Do(func() {
		decoyHash, _ = bcrypt.GenerateFromPassword([]byte("fervo-decoy-password"), Cost)
	})
	_ = bcrypt.CompareHashAndPassword(decoyHash, []byte(plain))
}
