package cart

import (
	"context"
	"errors"
)

var (
	// ErrStockExceeded is a validation failure raised before any write.
	ErrStockExceeded = errors.New("requested quantity exceeds available stock")
	// ErrLineNotFound means no line exists for that product in the cart.
	ErrLineNotFound = errors.New("cart line not found")
)

// Store persists cart lines for one owner class (guest session or signed-in
// user). Upsert writes the absolute quantity: callers decide whether they
// are merging or overwriting.
type Store interface {
	List(ctx context.Context, ownerID string) ([]Line, error)
	Get(ctx context.Context, ownerID string, productID uint) (Line, error)
	Upsert(ctx context.Context, ownerID string, line Line) (Line, error)
	Remove(ctx context.Context, ownerID string, productID uint) error
	Clear(ctx context.Context, ownerID string) error
}
