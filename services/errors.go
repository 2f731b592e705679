package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sentinel errors; controllers translate these to the HTTP taxonomy.
// Anything else bubbles up as a 500.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation")
)

func notFoundOr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}
