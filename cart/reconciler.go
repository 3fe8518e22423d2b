package cart

import "context"

// Reconciler moves cart ownership from the guest store to the remote store
// exactly once per sign-in, and resets the guest session on sign-out.
type Reconciler struct {
	guest  Store
	remote Store
}

func NewReconciler(guest, remote Store) *Reconciler {
	return &Reconciler{guest: guest, remote: remote}
}

// SyncOnSignIn upserts every guest line into the user cart keyed by
// (user, product), overwriting the remote quantity with the guest quantity.
// Line syncs are sequential and independent, not one transaction: on failure
// the guest cart is kept so the next sign-in retries, and the count of lines
// already synced is returned. The guest copy is discarded only after every
// line made it across.
func (r *Reconciler) SyncOnSignIn(ctx context.Context, guestID, userID string) (int, error) {
	if guestID == "" {
		return 0, nil
	}

	lines, err := r.guest.List(ctx, guestID)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, line := range lines {
		line.RemoteRowID = 0
		if _, err := r.remote.Upsert(ctx, userID, line); err != nil {
			return synced, err
		}
		synced++
	}

	if err := r.guest.Clear(ctx, guestID); err != nil {
		return synced, err
	}
	return synced, nil
}

// ResetOnSignOut drops the guest-session cart unconditionally. The user's
// remote cart is left untouched; it is reloaded on the next sign-in.
func (r *Reconciler) ResetOnSignOut(ctx context.Context, guestID string) error {
	if guestID == "" {
		return nil
	}
	return r.guest.Clear(ctx, guestID)
}
