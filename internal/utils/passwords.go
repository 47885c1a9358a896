package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// NewNumericPassword генерирует случайный числовой пароль из n цифр.
func NewNumericPassword(n int) (string, error) {
	if n <= 0 {
		n = 6
	}
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	v, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", n, v), nil
}
