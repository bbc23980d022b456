package interfaces

import (
	"context"
	"errors"
	"os_service/internal/domain/entities"
)

// ErrOrderCodeTaken is returned by Save when another order already owns the code.
var ErrOrderCodeTaken = errors.New("order code already taken")

// IOrderRepository abstracts persistence of the Order aggregate.
//
// The aggregate is always written whole:
//   - Save inserts a new order and reserves its code (unique constraint)
//   - Update replaces an existing order when its version still matches
//
// Lookups return a zero Order (empty ID) and nil error when nothing matches.
type IOrderRepository interface {
	Save(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByCode(ctx context.Context, code string) (entities.Order, error)
	GetDeliveredSince(ctx context.Context, days int) ([]entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
}
