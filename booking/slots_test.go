package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotsAreHalfHourly(t *testing.T) {
	assert.Len(t, Slots, 16)
	assert.Equal(t, "09:00", Slots[0])
	assert.Equal(t, "16:30", Slots[len(Slots)-1])

	for _, slot := range Slots {
		_, err := time.Parse("15:04", slot)
		assert.NoError(t, err, slot)
	}
}

func TestValidSlot(t *testing.T) {
	assert.True(t, ValidSlot("09:30"))
	assert.False(t, ValidSlot("08:00"))
	assert.False(t, ValidSlot("09:15"))
}

func TestClosedOn(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) // Monday

	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	assert.True(t, ClosedOn(sunday, now))

	yesterday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, ClosedOn(yesterday, now))

	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	assert.False(t, ClosedOn(today, now), "same-day bookings stay open")

	tomorrow := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	assert.False(t, ClosedOn(tomorrow, now))
}

func TestServiceByCode(t *testing.T) {
	svc, ok := ServiceByCode("vaccination")
	assert.True(t, ok)
	assert.Equal(t, 250000.0, svc.Price)

	_, ok = ServiceByCode("unicorn_wash")
	assert.False(t, ok)
}
