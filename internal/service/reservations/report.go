package reservations

import (
	"fmt"

	"github.com/m04kA/SMC-RentalReservations/internal/domain"
	"github.com/m04kA/SMC-RentalReservations/pkg/dates"
)

// DailyReport строит отчет о загрузке и выручке на дату.
//
// Загрузка считается по активным объектам, сгруппированным по городу:
// занятым считается объект, у которого есть подтвержденное бронирование с checkIn <= date < checkOut.
// Каждый объект учитывается один раз, даже если его покрывают несколько бронирований.
//
// Выручка - сумма nightlyRate по всем подтвержденным бронированиям, покрывающим дату
// (без платы за уборку).
func (s *Service) DailyReport(date string) (*domain.DailyReport, error) {
	day, ok := dates.Parse(date)
	if !ok {
		s.logger.Warn("DailyReport: invalid date %q", date)
		return nil, fmt.Errorf("%w: date=%q", domain.ErrInvalidDates, date)
	}

	properties := s.catalog.All()
	// Один снимок реестра, чтобы счетчики и загрузка были согласованы
	bookings := s.ledger.List()

	report := &domain.DailyReport{
		Date:            day,
		TotalProperties: len(properties),
		TotalBookings:   len(bookings),
		OccupancyByCity: make(map[string]*domain.CityOccupancy),
	}

	propertyByID := make(map[string]*domain.Property, len(properties))
	for i := range properties {
		p := &properties[i]
		propertyByID[p.ID] = p

		if !p.IsActive {
			continue
		}
		report.ActiveProperties++

		city, exists := report.OccupancyByCity[p.City]
		if !exists {
			city = &domain.CityOccupancy{}
			report.OccupancyByCity[p.City] = city
		}
		city.TotalActiveProperties++
	}
	report.InactiveProperties = report.TotalProperties - report.ActiveProperties

	occupied := make(map[string]struct{})
	for i := range bookings {
		b := &bookings[i]

		switch {
		case b.IsConfirmed():
			report.ConfirmedBookings++
		case b.IsPending():
			report.PendingBookings++
		case b.IsCancelled():
			report.CancelledBookings++
		}

		if !b.IsConfirmed() || !b.CoversDate(day) {
			continue
		}

		p, exists := propertyByID[b.PropertyID]
		if !exists {
			s.logger.Warn("DailyReport: booking id=%s references unknown property=%s", b.ID, b.PropertyID)
			continue
		}

		report.EstimatedRevenueForDate += p.NightlyRate

		if !p.IsActive {
			continue
		}
		if _, seen := occupied[p.ID]; seen {
			continue
		}
		occupied[p.ID] = struct{}{}
		report.OccupancyByCity[p.City].OccupiedProperties++
	}

	rates := make(map[string]float64, len(report.OccupancyByCity))
	for name, city := range report.OccupancyByCity {
		rates[name] = city.OccupancyRate()
	}
	s.metrics.ObserveOccupancy(rates, report.EstimatedRevenueForDate)

	s.logger.Info("DailyReport: date=%s, active=%d, confirmed=%d, occupied=%d, revenue=%.2f",
		dates.Format(day), report.ActiveProperties, report.ConfirmedBookings, len(occupied), report.EstimatedRevenueForDate)

	return report, nil
}
