package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGuestCart(t *testing.T, store *memStore, guestID string) {
	t.Helper()
	svc := NewService(store, newMemStore())
	ctx := context.Background()
	_, err := svc.AddToCart(ctx, asGuest(guestID), catFood(), 3)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, asGuest(guestID), dogShampoo(), 1)
	require.NoError(t, err)
}

func TestSyncOnSignInCopiesEveryGuestLine(t *testing.T) {
	guest := newMemStore()
	remote := newMemStore()
	seedGuestCart(t, guest, "guest-1")

	// The remote cart already holds the same product with a different
	// quantity; the guest quantity wins, it is not added on top.
	_, err := remote.Upsert(context.Background(), "user-1", FromProduct(catFood(), 5))
	require.NoError(t, err)

	rec := NewReconciler(guest, remote)
	synced, err := rec.SyncOnSignIn(context.Background(), "guest-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, synced)

	remoteLines, err := remote.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, remoteLines, 2)
	byProduct := map[uint]Line{}
	for _, l := range remoteLines {
		byProduct[l.ProductID] = l
	}
	assert.Equal(t, 3, byProduct[42].Quantity)
	assert.Equal(t, 1, byProduct[7].Quantity)

	guestLines, err := guest.List(context.Background(), "guest-1")
	require.NoError(t, err)
	assert.Empty(t, guestLines, "guest storage must be discarded after a full sync")
}

func TestSyncOnSignInPartialFailureKeepsGuestCart(t *testing.T) {
	guest := newMemStore()
	remote := newMemStore()
	seedGuestCart(t, guest, "guest-1")

	// Lines sync in product-id order (7 then 42); fail the second one.
	remote.upsertErrOn = 42

	rec := NewReconciler(guest, remote)
	synced, err := rec.SyncOnSignIn(context.Background(), "guest-1", "user-1")
	require.Error(t, err)
	assert.Equal(t, 1, synced)

	guestLines, listErr := guest.List(context.Background(), "guest-1")
	require.NoError(t, listErr)
	assert.Len(t, guestLines, 2, "guest cart is retained so the next sign-in retries")
}

func TestSyncOnSignInEmptyGuestID(t *testing.T) {
	rec := NewReconciler(newMemStore(), newMemStore())

	synced, err := rec.SyncOnSignIn(context.Background(), "", "user-1")
	require.NoError(t, err)
	assert.Zero(t, synced)
}

func TestResetOnSignOutEmptiesGuestCart(t *testing.T) {
	guest := newMemStore()
	seedGuestCart(t, guest, "guest-1")

	rec := NewReconciler(guest, newMemStore())
	require.NoError(t, rec.ResetOnSignOut(context.Background(), "guest-1"))

	lines, err := guest.List(context.Background(), "guest-1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}
