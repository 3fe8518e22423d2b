package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/agusputra69/pawranger-api/models"
)

// ErrSlotTaken is the authoritative "slot taken" signal, raised at write
// time; the availability endpoint is only advisory.
var ErrSlotTaken = errors.New("slot already booked")

var holdingStatuses = []models.BookingStatus{
	models.BookingStatusPending,
	models.BookingStatusConfirmed,
}

// Repo persists bookings.
type Repo interface {
	Create(ctx context.Context, b *models.Booking) error
	ByID(ctx context.Context, id uint) (*models.Booking, error)
	BookedSlots(ctx context.Context, date string) ([]string, error)
	List(ctx context.Context, date string, status string, limit, offset int) ([]models.Booking, int64, error)
	SetStatus(ctx context.Context, id uint, to models.BookingStatus) (*models.Booking, error)
}

type GormRepo struct {
	db *gorm.DB
}

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

func (r *GormRepo) Migrate() error {
	return r.db.AutoMigrate(&models.Booking{})
}

// Create runs in a txn and locks any pending/confirmed booking on the same
// (date, slot) so two concurrent requests cannot both see it free.
func (r *GormRepo) Create(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Booking
		err := tx.Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("date = ? AND time_slot = ? AND status IN ?", b.Date, b.TimeSlot, holdingStatuses).
			Take(&existing).Error

		if err == nil {
			return ErrSlotTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(b).Error
	})
}

func (r *GormRepo) ByID(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormRepo) BookedSlots(ctx context.Context, date string) ([]string, error) {
	var slots []string
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("date = ? AND status IN ?", date, holdingStatuses).
		Pluck("time_slot", &slots).Error
	return slots, err
}

func (r *GormRepo) List(ctx context.Context, date string, status string, limit, offset int) ([]models.Booking, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	qb := r.db.WithContext(ctx).Model(&models.Booking{})
	if date != "" {
		qb = qb.Where("date = ?", date)
	}
	if status != "" {
		qb = qb.Where("status = ?", status)
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []models.Booking
	if err := qb.Order("date ASC, time_slot ASC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *GormRepo) SetStatus(ctx context.Context, id uint, to models.BookingStatus) (*models.Booking, error) {
	var b models.Booking
	tx := r.db.WithContext(ctx).Begin()
	if err := tx.First(&b, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	b.Status = to
	if err := tx.Save(&b).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	return &b, tx.Commit().Error
}
