package cart

import (
	"context"
	"errors"

	"github.com/agusputra69/pawranger-api/models"
)

// Owner identifies whose cart a request mutates. A non-empty UserID means
// the session is authenticated and writes go to the remote store.
type Owner struct {
	UserID  string
	GuestID string
}

func (o Owner) Authenticated() bool {
	return o.UserID != ""
}

// Service is the single point of mutation for a cart. It is constructed
// with both stores and picks one per call; nothing else writes cart rows
// outside of checkout and the reconciler.
type Service struct {
	guest  Store
	remote Store
}

func NewService(guest, remote Store) *Service {
	return &Service{guest: guest, remote: remote}
}

func (s *Service) storeFor(o Owner) (Store, string) {
	if o.Authenticated() {
		return s.remote, o.UserID
	}
	return s.guest, o.GuestID
}

// AddToCart merges the quantity into an existing line for the same product
// or appends a new one. Authenticated carts validate the merged quantity
// against live stock; guest carts do not and rely on the checkout
// re-validation. Stock snapshot fields are refreshed from the product row.
func (s *Service) AddToCart(ctx context.Context, o Owner, p models.Product, qty int) (Line, error) {
	if qty < 1 {
		qty = 1
	}
	store, key := s.storeFor(o)

	line, err := store.Get(ctx, key, p.ID)
	switch {
	case err == nil:
		fresh := FromProduct(p, line.Quantity+qty)
		fresh.RemoteRowID = line.RemoteRowID
		line = fresh
	case errors.Is(err, ErrLineNotFound):
		line = FromProduct(p, qty)
	default:
		return Line{}, err
	}

	if o.Authenticated() && line.Quantity > p.Stock {
		return Line{}, ErrStockExceeded
	}
	return store.Upsert(ctx, key, line)
}

// UpdateQuantity sets the line to an absolute quantity. Zero or negative
// delegates to RemoveFromCart.
func (s *Service) UpdateQuantity(ctx context.Context, o Owner, productID uint, qty int) error {
	if qty <= 0 {
		return s.RemoveFromCart(ctx, o, productID)
	}
	store, key := s.storeFor(o)

	line, err := store.Get(ctx, key, productID)
	if err != nil {
		return err
	}
	line.Quantity = qty
	_, err = store.Upsert(ctx, key, line)
	return err
}

func (s *Service) RemoveFromCart(ctx context.Context, o Owner, productID uint) error {
	store, key := s.storeFor(o)
	return store.Remove(ctx, key, productID)
}

func (s *Service) ClearCart(ctx context.Context, o Owner) error {
	store, key := s.storeFor(o)
	return store.Clear(ctx, key)
}

// Cart returns the owner's lines with totals recomputed.
func (s *Service) Cart(ctx context.Context, o Owner) ([]Line, Totals, error) {
	store, key := s.storeFor(o)
	lines, err := store.List(ctx, key)
	if err != nil {
		return nil, Totals{}, err
	}
	return lines, ComputeTotals(lines), nil
}
