package domain

import "time"

// CityOccupancy occupancy of the active properties of one city on a date
type CityOccupancy struct {
	TotalActiveProperties int
	OccupiedProperties    int
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (c *CityOccupancy) OccupancyRate() float64 {
	if c.TotalActiveProperties == 0 {
		return 0
	}
	return float64(c.OccupiedProperties) / float64(c.TotalActiveProperties) * PercentScale
}

// IsFull returns true if every active property of the city is occupied
func (c *CityOccupancy) IsFull() bool {
	return c.TotalActiveProperties > 0 && c.OccupiedProperties >= c.TotalActiveProperties
}

// DailyReport occupancy and revenue snapshot for a single date
type DailyReport struct {
	Date time.Time

	TotalProperties    int
	ActiveProperties   int
	InactiveProperties int

	TotalBookings     int
	ConfirmedBookings int
	PendingBookings   int
	CancelledBookings int

	// Only cities with at least one active property are present
	OccupancyByCity map[string]*CityOccupancy

	// Sum of nightly rates of confirmed stays covering Date, cleaning fees excluded
	EstimatedRevenueForDate float64
}
