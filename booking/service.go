package booking

import (
	"context"
	"errors"
	"time"

	"github.com/agusputra69/pawranger-api/models"
)

var (
	ErrUnknownService = errors.New("unknown service")
	ErrInvalidSlot    = errors.New("invalid time slot")
	ErrInvalidDate    = errors.New("invalid date")
	ErrClosedDate     = errors.New("closed on the requested date")
	ErrBadTransition  = errors.New("invalid status transition")
)

// Request is a booking submission from the appointment form.
type Request struct {
	UserID      string `json:"-"`
	ServiceCode string `json:"service_code" binding:"required"`
	Date        string `json:"date" binding:"required"`
	TimeSlot    string `json:"time_slot" binding:"required"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`

	PetName    string  `json:"pet_name" binding:"required"`
	PetSpecies string  `json:"pet_species" binding:"required"`
	PetBreed   string  `json:"pet_breed"`
	PetAge     int     `json:"pet_age_months"`
	PetWeight  float64 `json:"pet_weight_kg"`
	PetNotes   string  `json:"pet_notes"`
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Availability returns the full slot grid for a date with taken flags.
// Sundays and past dates short-circuit to fully unavailable without
// querying.
func (s *Service) Availability(ctx context.Context, date string) ([]SlotStatus, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if ClosedOn(day, s.now()) {
		return allUnavailable(), nil
	}

	booked, err := s.repo.BookedSlots(ctx, date)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(booked))
	for _, slot := range booked {
		taken[slot] = true
	}

	out := make([]SlotStatus, 0, len(Slots))
	for _, slot := range Slots {
		out = append(out, SlotStatus{Time: slot, Available: !taken[slot]})
	}
	return out, nil
}

// BookedSlots returns the set of slots held by pending/confirmed bookings.
func (s *Service) BookedSlots(ctx context.Context, date string) (map[string]bool, error) {
	booked, err := s.repo.BookedSlots(ctx, date)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(booked))
	for _, slot := range booked {
		set[slot] = true
	}
	return set, nil
}

// Book validates the request and creates a pending booking. The price is
// copied from the catalog and never recomputed. A concurrent booking of the
// same slot surfaces as ErrSlotTaken from the repo.
func (s *Service) Book(ctx context.Context, req Request) (*models.Booking, error) {
	option, ok := ServiceByCode(req.ServiceCode)
	if !ok {
		return nil, ErrUnknownService
	}
	if !ValidSlot(req.TimeSlot) {
		return nil, ErrInvalidSlot
	}
	day, err := time.Parse(DateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if ClosedOn(day, s.now()) {
		return nil, ErrClosedDate
	}

	b := &models.Booking{
		UserID:        req.UserID,
		ServiceCode:   option.Code,
		ServiceName:   option.Name,
		TotalPrice:    option.Price,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		PetName:       req.PetName,
		PetSpecies:    req.PetSpecies,
		PetBreed:      req.PetBreed,
		PetAge:        req.PetAge,
		PetWeight:     req.PetWeight,
		PetNotes:      req.PetNotes,
		Status:        models.BookingStatusPending,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Confirm(ctx context.Context, id uint) (*models.Booking, error) {
	return s.transition(ctx, id, models.BookingStatusConfirmed)
}

func (s *Service) Cancel(ctx context.Context, id uint) (*models.Booking, error) {
	return s.transition(ctx, id, models.BookingStatusCancelled)
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Booking, error) {
	return s.repo.ByID(ctx, id)
}

func (s *Service) List(ctx context.Context, date, status string, limit, offset int) ([]models.Booking, int64, error) {
	return s.repo.List(ctx, date, status, limit, offset)
}

func (s *Service) transition(ctx context.Context, id uint, to models.BookingStatus) (*models.Booking, error) {
	b, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !allowedTransition(b.Status, to) {
		return nil, ErrBadTransition
	}
	return s.repo.SetStatus(ctx, id, to)
}

// pending -> confirmed, pending/confirmed -> cancelled. Cancelled is final.
func allowedTransition(from, to models.BookingStatus) bool {
	switch to {
	case models.BookingStatusConfirmed:
		return from == models.BookingStatusPending
	case models.BookingStatusCancelled:
		return from == models.BookingStatusPending || from == models.BookingStatusConfirmed
	default:
		return false
	}
}
