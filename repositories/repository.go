package repositories

import (
	"errors"

	"armust-news-cms/models"

	"gorm.io/gorm"
)

// conflict translates duplicate-key violations into the retryable
// ErrorConflict the services act on. Other errors pass through raw.
func conflict(err error, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.ErrorConflict{Message: message}
	}
	return err
}
