package reservations

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalReservations/internal/domain"
	"github.com/m04kA/SMC-RentalReservations/internal/service/reservations/models"
	"github.com/m04kA/SMC-RentalReservations/pkg/dates"
	"github.com/m04kA/SMC-RentalReservations/pkg/ptr"
)

const (
	transitionConfirm = "confirm"
	transitionCancel  = "cancel"
)

// Service сервис бронирования объектов размещения.
// Каталог и реестр передаются в конструктор, глобального состояния нет.
type Service struct {
	catalog CatalogRepository
	ledger  BookingLedger
	metrics MetricsCollector
	logger  Logger
}

// NewService создает новый экземпляр сервиса.
// metrics может быть nil, тогда метрики не собираются.
func NewService(
	catalog CatalogRepository,
	ledger BookingLedger,
	metrics MetricsCollector,
	logger Logger,
) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Service{
		catalog: catalog,
		ledger:  ledger,
		metrics: metrics,
		logger:  logger,
	}
}

// FindProperty получает объект размещения по ID
func (s *Service) FindProperty(id string) (domain.Property, error) {
	return s.catalog.FindByID(id)
}

// ListActiveProperties возвращает активные объекты в порядке каталога
func (s *Service) ListActiveProperties() []domain.Property {
	return s.catalog.ListActive()
}

// SearchProperties ищет по всему каталогу, включая неактивные объекты
func (s *Service) SearchProperties(filter domain.SearchFilter) []domain.Property {
	return s.catalog.Search(filter)
}

// IsAvailable проверяет, свободен ли объект на интервал [checkIn, checkOut)
func (s *Service) IsAvailable(propertyID, checkIn, checkOut string) (bool, error) {
	in, out, err := parseStay(checkIn, checkOut)
	if err != nil {
		s.logger.Warn("IsAvailable: property=%s: %v", propertyID, err)
		return false, err
	}

	return s.ledger.IsAvailable(propertyID, in, out), nil
}

// Quote рассчитывает стоимость проживания: nights * nightlyRate + cleaningFee.
// Объект и даты проверяются явно, вместо неопределенного поведения возвращается ошибка.
func (s *Service) Quote(propertyID, checkIn, checkOut string) (*domain.Quote, error) {
	property, err := s.catalog.FindByID(propertyID)
	if err != nil {
		s.logger.Warn("Quote: property=%s not found", propertyID)
		return nil, err
	}

	in, out, err := parseStay(checkIn, checkOut)
	if err != nil {
		s.logger.Warn("Quote: property=%s: %v", propertyID, err)
		return nil, err
	}

	quote := domain.NewQuote(&property, dates.Nights(in, out))
	s.logger.Info("Quote: property=%s, nights=%.0f, total=%.2f", propertyID, quote.Nights, quote.Total)
	return quote, nil
}

// ListAvailableProperties возвращает активные объекты, свободные на указанный интервал.
// city - опциональный фильтр по городу (nil - все города).
func (s *Service) ListAvailableProperties(checkIn, checkOut string, city *string) ([]domain.Property, error) {
	in, out, err := parseStay(checkIn, checkOut)
	if err != nil {
		s.logger.Warn("ListAvailableProperties: %v", err)
		return nil, err
	}

	result := make([]domain.Property, 0)
	for _, p := range s.catalog.ListActive() {
		if city != nil && p.City != *city {
			continue
		}
		if s.ledger.IsAvailable(p.ID, in, out) {
			result = append(result, p)
		}
	}

	s.logger.Info("ListAvailableProperties: checkIn=%s, checkOut=%s, city=%q, found=%d",
		dates.Format(in), dates.Format(out), ptr.Value(city), len(result))
	return result, nil
}

// RequestBooking создает бронирование в статусе PENDING
func (s *Service) RequestBooking(req domain.BookingRequest) (domain.Booking, error) {
	s.logger.Info("RequestBooking: property=%s, guest=%q, guests=%d, checkIn=%s, checkOut=%s",
		req.PropertyID, req.GuestName, req.Guests, req.CheckIn, req.CheckOut)

	booking, err := s.ledger.Create(s.catalog, req)
	s.metrics.ObserveBookingRequest(models.ErrorCode(err))
	if err != nil {
		s.logger.Warn("RequestBooking: rejected: %v", err)
		return domain.Booking{}, err
	}

	s.logger.Info("RequestBooking: created booking id=%s", booking.ID)
	return booking, nil
}

// ConfirmBooking подтверждает бронирование.
// false - бронирование не найдено или объект занят, причины не различаются.
func (s *Service) ConfirmBooking(id string) bool {
	return s.ConfirmBookingWithReason(id) == nil
}

// ConfirmBookingWithReason подтверждает бронирование и возвращает причину отказа
func (s *Service) ConfirmBookingWithReason(id string) error {
	err := s.ledger.ConfirmWithReason(id)
	s.observeTransition(transitionConfirm, id, err)
	return err
}

// CancelBooking отменяет бронирование в любом статусе. false - бронирование не найдено.
func (s *Service) CancelBooking(id string) bool {
	return s.CancelBookingWithReason(id) == nil
}

// CancelBookingWithReason отменяет бронирование и возвращает причину отказа
func (s *Service) CancelBookingWithReason(id string) error {
	err := s.ledger.CancelWithReason(id)
	s.observeTransition(transitionCancel, id, err)
	return err
}

// GetBooking получает бронирование по ID
func (s *Service) GetBooking(id string) (domain.Booking, error) {
	return s.ledger.GetByID(id)
}

// ListBookings возвращает все бронирования
func (s *Service) ListBookings() []domain.Booking {
	return s.ledger.List()
}

func (s *Service) observeTransition(transition, id string, err error) {
	s.metrics.ObserveTransition(transition, err == nil)

	switch {
	case err == nil:
		s.logger.Info("%s: booking id=%s done", transition, id)
	case errors.Is(err, domain.ErrBookingNotFound), errors.Is(err, domain.ErrPropertyUnavailable):
		s.logger.Warn("%s: booking id=%s rejected: %v", transition, id, err)
	default:
		s.logger.Error("%s: booking id=%s failed: %v", transition, id, err)
	}
}

// parseStay разбирает даты проживания и проверяет, что заезд раньше выезда
func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, okIn := dates.Parse(checkIn)
	out, okOut := dates.Parse(checkOut)
	if !okIn || !okOut {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: checkIn=%q, checkOut=%q", domain.ErrInvalidDates, checkIn, checkOut)
	}
	if !in.Before(out) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: checkIn=%s, checkOut=%s", domain.ErrInvalidDateRange, checkIn, checkOut)
	}
	return in, out, nil
}
