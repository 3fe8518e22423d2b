package cart

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/models"
)

// RemoteStore keeps the authenticated cart: one carts header per user, one
// cart_items row per (cart, product).
type RemoteStore struct {
	db *gorm.DB
}

func NewRemoteStore(db *gorm.DB) *RemoteStore {
	return &RemoteStore{db: db}
}

// cartFor returns the user's cart header, creating it on first use.
func (s *RemoteStore) cartFor(ctx context.Context, userID string) (models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := s.db.WithContext(ctx).Create(&cart).Error; err != nil {
			return cart, err
		}
		return cart, nil
	}
	return cart, err
}

func (s *RemoteStore) List(ctx context.Context, userID string) ([]Line, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, FromCartItem(it))
	}
	return lines, nil
}

func (s *RemoteStore) Get(ctx context.Context, userID string, productID uint) (Line, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Line{}, ErrLineNotFound
	}
	if err != nil {
		return Line{}, err
	}

	var item models.CartItem
	err = s.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Line{}, ErrLineNotFound
	}
	if err != nil {
		return Line{}, err
	}
	return FromCartItem(item), nil
}

func (s *RemoteStore) Upsert(ctx context.Context, userID string, line Line) (Line, error) {
	cart, err := s.cartFor(ctx, userID)
	if err != nil {
		return Line{}, err
	}

	var item models.CartItem
	err = s.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cart.CartID, line.ProductID).
		First(&item).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		line.RemoteRowID = 0
		item = line.toCartItem(cart.CartID, time.Now())
		if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
			return Line{}, err
		}
	case err != nil:
		return Line{}, err
	default:
		// Persist the whole line so refreshed snapshot fields survive a
		// merge add, not just the quantity.
		updated := line.toCartItem(cart.CartID, time.Now())
		updated.ID = item.ID
		if err := s.db.WithContext(ctx).Save(&updated).Error; err != nil {
			return Line{}, err
		}
		item = updated
	}
	return FromCartItem(item), nil
}

// Remove resolves the row by (cart, product) and deletes it by primary key.
func (s *RemoteStore) Remove(ctx context.Context, userID string, productID uint) error {
	line, err := s.Get(ctx, userID, productID)
	if err != nil {
		return err
	}
	result := s.db.WithContext(ctx).Delete(&models.CartItem{}, line.RemoteRowID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLineNotFound
	}
	return nil
}

func (s *RemoteStore) Clear(ctx context.Context, userID string) error {
	var cart models.Cart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
}
