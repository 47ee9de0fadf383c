package usecase

import (
	"errors"

	domainErrors "github.com/tsogoo/minimart/internal/domain/errors"
)

func isNotFound(err error) bool {
	return errors.Is(err, domainErrors.ErrNotFound)
}
