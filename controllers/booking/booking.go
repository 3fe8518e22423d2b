package bookingControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/booking"
	"github.com/agusputra69/pawranger-api/models"
	"github.com/agusputra69/pawranger-api/realtime"
)

// GET /services
func GetServiceCatalog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, booking.Catalog)
	}
}

// GET /bookings/availability?date=2026-03-03
func GetAvailability(svc *booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
			return
		}

		slots, err := svc.Availability(c.Request.Context(), date)
		if err != nil {
			if errors.Is(err, booking.ErrInvalidDate) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
	}
}

// POST /user/bookings
func CreateBooking(svc *booking.Service, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req booking.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		req.UserID = c.GetString("user_id")

		b, err := svc.Book(c.Request.Context(), req)
		if err != nil {
			renderBookingError(c, err)
			return
		}

		hub.Broadcast("booking.created", gin.H{
			"id":           b.ID,
			"service_name": b.ServiceName,
			"date":         b.Date,
			"time_slot":    b.TimeSlot,
		})
		c.JSON(http.StatusCreated, b)
	}
}

func renderBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrUnknownService):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown service code"})
	case errors.Is(err, booking.ErrInvalidSlot):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time slot"})
	case errors.Is(err, booking.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
	case errors.Is(err, booking.ErrClosedDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "We are closed on the requested date"})
	case errors.Is(err, booking.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Time slot is already booked"})
	case errors.Is(err, booking.ErrBadTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking cannot change to that status"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process booking"})
	}
}

// GET /admin/bookings?date=&status=&page=&limit=
func ListBookings(svc *booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		status := c.Query("status")

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if limit < 1 || limit > 200 {
			limit = 50
		}

		bookings, total, err := svc.List(c.Request.Context(), date, status, limit, (page-1)*limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"bookings": bookings,
			"total":    total,
			"page":     page,
			"limit":    limit,
		})
	}
}

// GET /user/bookings — the signed-in customer's own bookings
func GetUserBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var bookings []models.Booking
		if err := db.Where("user_id = ?", userID).
			Order("date DESC, time_slot DESC").
			Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

type updateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /admin/bookings/:id/status
func UpdateBookingStatus(db *gorm.DB, svc *booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
			return
		}

		var req updateBookingStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var b *models.Booking
		switch models.BookingStatus(req.Status) {
		case models.BookingStatusConfirmed:
			b, err = svc.Confirm(c.Request.Context(), uint(id64))
		case models.BookingStatusCancelled:
			b, err = svc.Cancel(c.Request.Context(), uint(id64))
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be confirmed or cancelled"})
			return
		}
		if err != nil {
			renderBookingError(c, err)
			return
		}

		models.LogActivity(db, c.GetString("email"), "booking."+req.Status, strconv.FormatUint(id64, 10))
		c.JSON(http.StatusOK, b)
	}
}

// GET /admin/bookings/export?date=2026-03-03
//
// Day sheet for the grooming staff: every booking for the date, one row
// per appointment.
func ExportDaySheet(svc *booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
			return
		}

		bookings, _, err := svc.List(c.Request.Context(), date, "", 200, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Day Sheet " + date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"TimeSlot", "Service", "Customer", "Phone",
			"Pet", "Species", "Breed", "Notes", "Status", "Price",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, b := range bookings {
			row := sheet.AddRow()
			row.AddCell().SetValue(b.TimeSlot)
			row.AddCell().SetValue(b.ServiceName)
			row.AddCell().SetValue(b.CustomerName)
			row.AddCell().SetValue(b.CustomerPhone)
			row.AddCell().SetValue(b.PetName)
			row.AddCell().SetValue(b.PetSpecies)
			row.AddCell().SetValue(b.PetBreed)
			row.AddCell().SetValue(b.PetNotes)
			row.AddCell().SetValue(string(b.Status))
			row.AddCell().SetValue(b.TotalPrice)
		}

		c.Header("Content-Disposition", "attachment; filename=day-sheet-"+date+".xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
