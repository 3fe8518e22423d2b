package cart

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agusputra69/pawranger-api/models"
)

// memStore is an in-memory Store used by the facade and reconciler tests.
type memStore struct {
	mu     sync.Mutex
	lines  map[string]map[uint]Line // ownerID -> productID -> line
	nextID uint

	err         error // returned by every op when set
	upsertErrOn uint  // Upsert fails for this productID only
}

func newMemStore() *memStore {
	return &memStore{lines: make(map[string]map[uint]Line)}
}

func (m *memStore) List(_ context.Context, ownerID string) ([]Line, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []Line
	for _, line := range m.lines[ownerID] {
		out = append(out, line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (m *memStore) Get(_ context.Context, ownerID string, productID uint) (Line, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Line{}, m.err
	}
	line, ok := m.lines[ownerID][productID]
	if !ok {
		return Line{}, ErrLineNotFound
	}
	return line, nil
}

func (m *memStore) Upsert(_ context.Context, ownerID string, line Line) (Line, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Line{}, m.err
	}
	if m.upsertErrOn != 0 && line.ProductID == m.upsertErrOn {
		return Line{}, assert.AnError
	}
	if m.lines[ownerID] == nil {
		m.lines[ownerID] = make(map[uint]Line)
	}
	if existing, ok := m.lines[ownerID][line.ProductID]; ok {
		line.RemoteRowID = existing.RemoteRowID
	} else {
		m.nextID++
		line.RemoteRowID = m.nextID
	}
	m.lines[ownerID][line.ProductID] = line
	return line, nil
}

func (m *memStore) Remove(_ context.Context, ownerID string, productID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.lines[ownerID][productID]; !ok {
		return ErrLineNotFound
	}
	delete(m.lines[ownerID], productID)
	return nil
}

func (m *memStore) Clear(_ context.Context, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.lines, ownerID)
	return nil
}

func catFood() models.Product {
	return models.Product{ID: 42, Name: "Premium Cat Food 5kg", Brand: "Whiskers", Price: 285000, Weight: 5, Stock: 10}
}

func dogShampoo() models.Product {
	return models.Product{ID: 7, Name: "Oatmeal Dog Shampoo", Brand: "PawSuds", Price: 65000, Weight: 0.4, Stock: 25}
}

func authed(userID string) Owner  { return Owner{UserID: userID} }
func asGuest(guestID string) Owner { return Owner{GuestID: guestID} }

func TestAddToCartMergesSameProduct(t *testing.T) {
	svc := NewService(newMemStore(), newMemStore())
	ctx := context.Background()
	owner := authed("user-1")

	_, err := svc.AddToCart(ctx, owner, catFood(), 1)
	require.NoError(t, err)
	line, err := svc.AddToCart(ctx, owner, catFood(), 2)
	require.NoError(t, err)

	assert.Equal(t, 3, line.Quantity, "same product must merge into one line")

	lines, totals, err := svc.Cart(ctx, owner)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, totals.ItemCount)
	assert.Equal(t, 855000.0, totals.Subtotal)
}

func TestAddToCartRefreshesSnapshotOnMerge(t *testing.T) {
	svc := NewService(newMemStore(), newMemStore())
	ctx := context.Background()
	owner := authed("user-1")

	_, err := svc.AddToCart(ctx, owner, catFood(), 1)
	require.NoError(t, err)

	// The catalog row changed since the first add; the merge must persist
	// the refreshed snapshot, not just the new quantity.
	repriced := catFood()
	repriced.Price = 299000
	repriced.Stock = 6

	line, err := svc.AddToCart(ctx, owner, repriced, 2)
	require.NoError(t, err)
	assert.Equal(t, 299000.0, line.UnitPrice)
	assert.Equal(t, 6, line.Stock)

	lines, _, err := svc.Cart(ctx, owner)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 299000.0, lines[0].UnitPrice, "stored line must carry the refreshed price")
	assert.Equal(t, 6, lines[0].Stock)
}

func TestTotalsHoldAfterEveryMutation(t *testing.T) {
	svc := NewService(newMemStore(), newMemStore())
	ctx := context.Background()
	owner := authed("user-1")

	checkInvariants := func() {
		lines, totals, err := svc.Cart(ctx, owner)
		require.NoError(t, err)
		wantCount := 0
		wantSubtotal := 0.0
		for _, l := range lines {
			wantCount += l.Quantity
			wantSubtotal += l.UnitPrice * float64(l.Quantity)
		}
		assert.Equal(t, wantCount, totals.ItemCount)
		assert.Equal(t, wantSubtotal, totals.Subtotal)
	}

	_, err := svc.AddToCart(ctx, owner, catFood(), 2)
	require.NoError(t, err)
	checkInvariants()

	_, err = svc.AddToCart(ctx, owner, dogShampoo(), 4)
	require.NoError(t, err)
	checkInvariants()

	require.NoError(t, svc.UpdateQuantity(ctx, owner, dogShampoo().ID, 1))
	checkInvariants()

	require.NoError(t, svc.RemoveFromCart(ctx, owner, catFood().ID))
	checkInvariants()

	require.NoError(t, svc.ClearCart(ctx, owner))
	checkInvariants()
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc := NewService(newMemStore(), newMemStore())
	ctx := context.Background()
	owner := authed("user-1")

	_, err := svc.AddToCart(ctx, owner, catFood(), 2)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQuantity(ctx, owner, catFood().ID, 0))

	lines, totals, err := svc.Cart(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Zero(t, totals.ItemCount)

	// removing an absent line and updating it to zero report the same error
	assert.ErrorIs(t, svc.UpdateQuantity(ctx, owner, catFood().ID, 0), ErrLineNotFound)
	assert.ErrorIs(t, svc.RemoveFromCart(ctx, owner, catFood().ID), ErrLineNotFound)
}

func TestUpdateQuantityMissingLine(t *testing.T) {
	svc := NewService(newMemStore(), newMemStore())

	err := svc.UpdateQuantity(context.Background(), authed("user-1"), 999, 3)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestStockValidationAuthenticatedOnly(t *testing.T) {
	guest := newMemStore()
	remote := newMemStore()
	svc := NewService(guest, remote)
	ctx := context.Background()

	p := catFood() // stock 10

	// Authenticated adds are capped by live stock.
	_, err := svc.AddToCart(ctx, authed("user-1"), p, 8)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, authed("user-1"), p, 3)
	assert.ErrorIs(t, err, ErrStockExceeded)

	lines, _, err := svc.Cart(ctx, authed("user-1"))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 8, lines[0].Quantity, "failed add must not change the stored line")

	// Guest carts skip the check; checkout re-validates stock.
	_, err = svc.AddToCart(ctx, asGuest("guest-1"), p, 99)
	assert.NoError(t, err)
}

func TestAddToCartDefaultsToOne(t *testing.T) {
	svc := NewService(newMemStore(), newMemStore())

	line, err := svc.AddToCart(context.Background(), asGuest("guest-1"), dogShampoo(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
}

func TestGuestAndUserCartsAreIsolated(t *testing.T) {
	svc := NewService(newMemStore(), newMemStore())
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, asGuest("guest-1"), catFood(), 1)
	require.NoError(t, err)

	lines, _, err := svc.Cart(ctx, authed("user-1"))
	require.NoError(t, err)
	assert.Empty(t, lines, "guest lines must not leak into the user cart")
}
