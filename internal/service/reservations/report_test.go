package reservations

import (
	"io"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalReservations/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalReservations/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RentalReservations/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-RentalReservations/pkg/dates"
	"github.com/m04kA/SMC-RentalReservations/pkg/logger"
)

func TestDailyReport_SampleGolden(t *testing.T) {
	f := newFixture(t)

	report, err := f.service.DailyReport("2026-02-12")
	require.NoError(t, err)

	assert.Equal(t, "2026-02-12", dates.Format(report.Date))
	assert.Equal(t, 6, report.TotalProperties)
	assert.Equal(t, 5, report.ActiveProperties)
	assert.Equal(t, 1, report.InactiveProperties)
	assert.Equal(t, 10, report.TotalBookings)
	assert.Equal(t, 6, report.ConfirmedBookings)
	assert.Equal(t, 2, report.PendingBookings)
	assert.Equal(t, 2, report.CancelledBookings)

	require.Len(t, report.OccupancyByCity, 2)

	harare := report.OccupancyByCity["Harare"]
	require.NotNil(t, harare)
	assert.Equal(t, 4, harare.TotalActiveProperties)
	assert.Equal(t, 1, harare.OccupiedProperties)
	assert.Equal(t, 25.0, harare.OccupancyRate())

	bulawayo := report.OccupancyByCity["Bulawayo"]
	require.NotNil(t, bulawayo)
	assert.Equal(t, 1, bulawayo.TotalActiveProperties)
	assert.Equal(t, 0, bulawayo.OccupiedProperties)
	assert.Equal(t, 0.0, bulawayo.OccupancyRate())

	// only B001 (P001, 120/night) covers the night of the 12th; B010 checks out that day
	assert.Equal(t, 120.0, report.EstimatedRevenueForDate)

	assert.Equal(t, 25.0, testutil.ToFloat64(f.metrics.CityOccupancyRate.WithLabelValues("Harare")))
	assert.Equal(t, 120.0, testutil.ToFloat64(f.metrics.EstimatedRevenue))
}

func TestDailyReport_Dates(t *testing.T) {
	tests := []struct {
		date             string
		harareOccupied   int
		bulawayoOccupied int
		revenue          float64
	}{
		// B001 + B006 on inactive P004: revenue counts it, occupancy does not
		{"2026-02-10", 1, 0, 170},
		// B001 + B010
		{"2026-02-11", 2, 0, 190},
		// B001 and B002 both cover P001: one occupied property, two nightly rates
		{"2026-02-13", 1, 0, 240},
		// B002 + B007
		{"2026-02-14", 2, 0, 190},
		// B002 + B004 + B007
		{"2026-02-15", 2, 1, 270},
		{"2026-03-01", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			f := newFixture(t)

			report, err := f.service.DailyReport(tt.date)
			require.NoError(t, err)

			assert.Equal(t, tt.harareOccupied, report.OccupancyByCity["Harare"].OccupiedProperties)
			assert.Equal(t, tt.bulawayoOccupied, report.OccupancyByCity["Bulawayo"].OccupiedProperties)
			assert.Equal(t, tt.revenue, report.EstimatedRevenueForDate)
		})
	}
}

// Recomputes the report by brute force for every day of February.
func TestDailyReport_MatchesManualRecomputation(t *testing.T) {
	f := newFixture(t)
	props := f.service.catalog.All()
	byID := make(map[string]domain.Property)
	for _, p := range props {
		byID[p.ID] = p
	}

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for day := start; day.Month() == time.February; day = day.AddDate(0, 0, 1) {
		report, err := f.service.DailyReport(dates.Format(day))
		require.NoError(t, err)

		revenue := 0.0
		occupied := make(map[string]map[string]bool)
		for _, b := range f.ledger.ConfirmedBookings() {
			if day.Before(b.CheckIn) || !day.Before(b.CheckOut) {
				continue
			}
			p := byID[b.PropertyID]
			revenue += p.NightlyRate
			if p.IsActive {
				if occupied[p.City] == nil {
					occupied[p.City] = make(map[string]bool)
				}
				occupied[p.City][p.ID] = true
			}
		}

		assert.Equal(t, revenue, report.EstimatedRevenueForDate, dates.Format(day))
		for city, occ := range report.OccupancyByCity {
			assert.Equal(t, len(occupied[city]), occ.OccupiedProperties, "%s %s", city, dates.Format(day))
			assert.LessOrEqual(t, occ.OccupancyRate(), 100.0)
		}
	}
}

func TestDailyReport_AfterLifecycle(t *testing.T) {
	f := newFixture(t)

	b, err := f.service.RequestBooking(domain.BookingRequest{PropertyID: "P006", GuestName: "Rudo", Guests: 2, CheckIn: "2026-02-12", CheckOut: "2026-02-13"})
	require.NoError(t, err)
	require.True(t, f.service.ConfirmBooking(b.ID))
	require.True(t, f.service.CancelBooking("B001"))

	report, err := f.service.DailyReport("2026-02-12")
	require.NoError(t, err)

	assert.Equal(t, 11, report.TotalBookings)
	assert.Equal(t, 6, report.ConfirmedBookings)
	assert.Equal(t, 3, report.CancelledBookings)
	assert.Equal(t, 1, report.OccupancyByCity["Harare"].OccupiedProperties)
	assert.Equal(t, 55.0, report.EstimatedRevenueForDate)
}

func TestDailyReport_InvalidDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.DailyReport("12/02/2026")
	assert.ErrorIs(t, err, domain.ErrInvalidDates)
}

func TestDailyReport_SkipsUnknownProperty(t *testing.T) {
	cat, err := catalog.NewRepository([]domain.Property{
		{ID: "P001", City: "Harare", NightlyRate: 100, MaxGuests: 2, IsActive: true},
	})
	require.NoError(t, err)

	day := time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC)
	ledger, err := bookingRepo.NewRepository([]domain.Booking{
		{ID: "B001", PropertyID: "P999", Guests: 1, CheckIn: day, CheckOut: day.AddDate(0, 0, 1), Status: domain.StatusConfirmed},
	})
	require.NoError(t, err)

	svc := NewService(cat, ledger, nil, logger.NewWithWriter(io.Discard, logger.LevelError))

	report, err := svc.DailyReport("2026-02-12")
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.EstimatedRevenueForDate)
	assert.Equal(t, 1, report.ConfirmedBookings)
	assert.Equal(t, 0, report.OccupancyByCity["Harare"].OccupiedProperties)
}

func TestDailyReport_NoActiveProperties(t *testing.T) {
	cat, err := catalog.NewRepository([]domain.Property{
		{ID: "P004", City: "Bulawayo", NightlyRate: 50, MaxGuests: 2, IsActive: false},
	})
	require.NoError(t, err)
	ledger, err := bookingRepo.NewRepository(nil)
	require.NoError(t, err)

	svc := NewService(cat, ledger, nil, logger.NewWithWriter(io.Discard, logger.LevelError))

	report, err := svc.DailyReport("2026-02-12")
	require.NoError(t, err)
	assert.Empty(t, report.OccupancyByCity)
	assert.Equal(t, 1, report.InactiveProperties)
}
