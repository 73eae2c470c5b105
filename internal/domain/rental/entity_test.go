package rental

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-rental-service/internal/domain/customer"
	"fleet-rental-service/internal/domain/vehicle"
)

func newRental(start time.Time) *Rental {
	return New(NextID(), customer.NextID(), vehicle.NextID(), start)
}

func TestNewRentalIsActive(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	r := newRental(start)

	assert.Equal(t, StatusActive, r.Status())
	assert.True(t, r.IsActive())
	assert.Equal(t, start, r.StartDate())
	assert.Nil(t, r.EndDate())
	assert.Nil(t, r.UpdatedAt())
	assert.Nil(t, r.DurationInDays())
}

func TestComplete(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	r := newRental(start)

	end := start.AddDate(0, 0, 3)
	require.NoError(t, r.Complete(end))

	assert.Equal(t, StatusCompleted, r.Status())
	require.NotNil(t, r.EndDate())
	assert.Equal(t, end, *r.EndDate())
	require.NotNil(t, r.UpdatedAt())

	err := r.Complete(end)
	require.Error(t, err)
	assert.EqualError(t, err, "Rental "+r.ID().String()+" is not active. Current status: Completed")
}

func TestCompleteRejectsEndBeforeStart(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	r := newRental(start)

	err := r.Complete(start.AddDate(0, 0, -1))
	require.Error(t, err)
	assert.EqualError(t, err, "End date cannot be earlier than start date.")
	assert.True(t, r.IsActive())
}

func TestCancel(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	r := newRental(start)

	require.NoError(t, r.Cancel())
	assert.Equal(t, StatusCancelled, r.Status())
	assert.Nil(t, r.EndDate())
	require.NotNil(t, r.UpdatedAt())

	err := r.Cancel()
	require.Error(t, err)
	assert.EqualError(t, err, "Rental "+r.ID().String()+" is not active. Current status: Cancelled")
}

func TestDurationInDaysFloorsPartialDays(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{name: "same instant", end: start, want: 0},
		{name: "under a day", end: start.Add(23 * time.Hour), want: 0},
		{name: "exactly three days", end: start.AddDate(0, 0, 3), want: 3},
		{name: "three and a half days", end: start.AddDate(0, 0, 3).Add(12 * time.Hour), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRental(start)
			require.NoError(t, r.Complete(tt.end))
			d := r.DurationInDays()
			require.NotNil(t, d)
			assert.Equal(t, tt.want, *d)
		})
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	r := newRental(start)
	require.NoError(t, r.Complete(start.AddDate(0, 0, 2)))

	restored, err := Restore(r.ToRecord())
	require.NoError(t, err)
	assert.True(t, r.Equals(restored))
	assert.Equal(t, r.Status(), restored.Status())
	require.NotNil(t, restored.EndDate())
	assert.Equal(t, *r.EndDate(), *restored.EndDate())
}

func TestRestoreRejectsUnknownStatus(t *testing.T) {
	r := newRental(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	rec := r.ToRecord()
	rec.Status = "Paused"
	_, err := Restore(rec)
	require.Error(t, err)
	assert.EqualError(t, err, "Unknown rental status: Paused")

	rec = r.ToRecord()
	rec.ID = ID{}
	_, err = Restore(rec)
	require.Error(t, err)
}
