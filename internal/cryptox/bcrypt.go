package cryptox

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/coffeetime/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned by the bcrypt scheme for passwords over
// 72 bytes. It matches common.ErrorValidation.
var ErrPasswordTooLong = fmt.Errorf("password exceeds 72 bytes: %w", common.ErrorValidation)

type bcryptHasher struct{}

func (bcryptHasher) hash(password []byte) (string, error) {
	h, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}
	return string(h), nil
}

func (bcryptHasher) verify(encoded string, password []byte) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), password)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
