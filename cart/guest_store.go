package cart

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/models"
)

// GuestStore keeps carts for anonymous sessions, keyed by the guest id
// issued at /auth/guest. Rows live only until the session signs in or the
// guest user expires.
type GuestStore struct {
	db *gorm.DB
}

func NewGuestStore(db *gorm.DB) *GuestStore {
	return &GuestStore{db: db}
}

func (s *GuestStore) cartFor(ctx context.Context, guestID string) (models.GuestCart, error) {
	var cart models.GuestCart
	err := s.db.WithContext(ctx).Where("guest_id = ?", guestID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.GuestCart{GuestID: guestID}
		if err := s.db.WithContext(ctx).Create(&cart).Error; err != nil {
			return cart, err
		}
		return cart, nil
	}
	return cart, err
}

func (s *GuestStore) List(ctx context.Context, guestID string) ([]Line, error) {
	var cart models.GuestCart
	err := s.db.WithContext(ctx).Preload("Items").Where("guest_id = ?", guestID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, FromGuestCartItem(it))
	}
	return lines, nil
}

func (s *GuestStore) Get(ctx context.Context, guestID string, productID uint) (Line, error) {
	var cart models.GuestCart
	err := s.db.WithContext(ctx).Where("guest_id = ?", guestID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Line{}, ErrLineNotFound
	}
	if err != nil {
		return Line{}, err
	}

	var item models.GuestCartItem
	err = s.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Line{}, ErrLineNotFound
	}
	if err != nil {
		return Line{}, err
	}
	return FromGuestCartItem(item), nil
}

func (s *GuestStore) Upsert(ctx context.Context, guestID string, line Line) (Line, error) {
	cart, err := s.cartFor(ctx, guestID)
	if err != nil {
		return Line{}, err
	}

	var item models.GuestCartItem
	err = s.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cart.CartID, line.ProductID).
		First(&item).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = line.toGuestCartItem(cart.CartID, time.Now())
		if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
			return Line{}, err
		}
	case err != nil:
		return Line{}, err
	default:
		// Persist the whole line so refreshed snapshot fields survive a
		// merge add, not just the quantity.
		updated := line.toGuestCartItem(cart.CartID, time.Now())
		updated.ID = item.ID
		if err := s.db.WithContext(ctx).Save(&updated).Error; err != nil {
			return Line{}, err
		}
		item = updated
	}
	return FromGuestCartItem(item), nil
}

func (s *GuestStore) Remove(ctx context.Context, guestID string, productID uint) error {
	var cart models.GuestCart
	err := s.db.WithContext(ctx).Where("guest_id = ?", guestID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrLineNotFound
	}
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
		Delete(&models.GuestCartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLineNotFound
	}
	return nil
}

func (s *GuestStore) Clear(ctx context.Context, guestID string) error {
	var cart models.GuestCart
	err := s.db.WithContext(ctx).Where("guest_id = ?", guestID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("cart_id = ?", cart.CartID).Delete(&models.GuestCartItem{}).Error
}
