package interfaces

import (
	"os_service/internal/domain/entities"
	"time"
)

// ICodeGenerator produces order code candidates. Uniqueness is checked by the caller.
type ICodeGenerator interface {
	Generate(now time.Time) (entities.OrderCode, error)
}
