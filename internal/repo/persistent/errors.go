package persistent

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is the repository-level not-found error; callers match it with
// errors.Is instead of depending on gorm.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
