package booking

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-RentalReservations/internal/domain"
	"github.com/m04kA/SMC-RentalReservations/pkg/dates"
)

// Repository реестр бронирований в памяти.
// Единственный владелец бронирований и единственный, кто меняет их статус.
// Все изменения выполняются под одной блокировкой на запись: проверка доступности
// и вставка/смена статуса происходят в одной критической секции.
type Repository struct {
	mu           sync.RWMutex
	bookings     []*domain.Booking
	byID         map[string]*domain.Booking
	idGenerator  IDGenerator
	timeProvider TimeProvider
}

// Option настройка репозитория
type Option func(*Repository)

// WithIDGenerator задает генератор ID новых бронирований
func WithIDGenerator(g IDGenerator) Option {
	return func(r *Repository) {
		r.idGenerator = g
	}
}

// WithTimeProvider задает источник текущего времени
func WithTimeProvider(p TimeProvider) Option {
	return func(r *Repository) {
		r.timeProvider = p
	}
}

// NewRepository создает реестр из начального списка бронирований.
// Начальные данные принимаются как есть, в том числе пересекающиеся подтвержденные брони.
func NewRepository(initial []domain.Booking, opts ...Option) (*Repository, error) {
	r := &Repository{
		bookings:     make([]*domain.Booking, 0, len(initial)),
		byID:         make(map[string]*domain.Booking, len(initial)),
		timeProvider: &RealTimeProvider{},
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.idGenerator == nil {
		r.idGenerator = NewSequentialIDGenerator(domain.DefaultBookingIDPrefix)
	}

	for _, b := range initial {
		if _, exists := r.byID[b.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, b.ID)
		}
		booking := b
		r.bookings = append(r.bookings, &booking)
		r.byID[booking.ID] = &booking

		if obs, ok := r.idGenerator.(observer); ok {
			obs.Observe(booking.ID)
		}
	}

	return r, nil
}

// Create проверяет запрос и добавляет бронирование в статусе PENDING.
// Проверки (первая нарушенная возвращается):
// 1. объект существует
// 2. объект активен
// 3. даты корректны
// 4. заезд раньше выезда
// 5. гостей больше нуля
// 6. гостей не больше вместимости
// 7. нет пересекающихся подтвержденных бронирований
func (r *Repository) Create(catalog PropertyFinder, req domain.BookingRequest) (domain.Booking, error) {
	// 1. Объект размещения
	property, err := catalog.FindByID(req.PropertyID)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return domain.Booking{}, err
		}
		return domain.Booking{}, fmt.Errorf("%w: id=%s: %v", domain.ErrPropertyNotFound, req.PropertyID, err)
	}

	// 2-6. Валидация запроса
	checkIn, checkOut, err := validateRequest(&property, req)
	if err != nil {
		return domain.Booking{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// 7. Доступность (под блокировкой, вместе со вставкой)
	if conflict := r.findConflictUnsafe(property.ID, checkIn, checkOut, ""); conflict != nil {
		return domain.Booking{}, fmt.Errorf("%w: property=%s overlaps booking=%s",
			domain.ErrPropertyUnavailable, property.ID, conflict.ID)
	}

	booking := &domain.Booking{
		ID:         r.nextIDUnsafe(),
		PropertyID: property.ID,
		GuestName:  req.GuestName,
		Guests:     req.Guests,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     domain.StatusPending,
		CreatedAt:  dates.Truncate(r.timeProvider.Now()),
	}

	r.bookings = append(r.bookings, booking)
	r.byID[booking.ID] = booking

	return *booking, nil
}

// Confirm подтверждает бронирование.
// false - бронирование не найдено или пересекается с другим подтвержденным.
func (r *Repository) Confirm(id string) bool {
	return r.ConfirmWithReason(id) == nil
}

// ConfirmWithReason то же, что Confirm, но различает причины отказа:
// domain.ErrBookingNotFound или domain.ErrPropertyUnavailable.
// Само бронирование при проверке не учитывается, повторное подтверждение идемпотентно.
func (r *Repository) ConfirmWithReason(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: id=%s", domain.ErrBookingNotFound, id)
	}

	if conflict := r.findConflictUnsafe(booking.PropertyID, booking.CheckIn, booking.CheckOut, booking.ID); conflict != nil {
		return fmt.Errorf("%w: booking=%s overlaps booking=%s",
			domain.ErrPropertyUnavailable, booking.ID, conflict.ID)
	}

	booking.Status = domain.StatusConfirmed
	return nil
}

// Cancel отменяет бронирование в любом статусе.
// false - бронирование не найдено.
func (r *Repository) Cancel(id string) bool {
	return r.CancelWithReason(id) == nil
}

// CancelWithReason то же, что Cancel, но возвращает domain.ErrBookingNotFound
func (r *Repository) CancelWithReason(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: id=%s", domain.ErrBookingNotFound, id)
	}

	booking.Status = domain.StatusCancelled
	return nil
}

// IsAvailable возвращает true, если у объекта нет подтвержденных бронирований,
// пересекающихся с [checkIn, checkOut)
func (r *Repository) IsAvailable(propertyID string, checkIn, checkOut time.Time) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.findConflictUnsafe(propertyID, checkIn, checkOut, "") == nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(id string) (domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return domain.Booking{}, fmt.Errorf("%w: id=%s", domain.ErrBookingNotFound, id)
	}
	return *booking, nil
}

// List возвращает все бронирования в порядке добавления
func (r *Repository) List() []domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Booking, len(r.bookings))
	for i, b := range r.bookings {
		result[i] = *b
	}
	return result
}

// ConfirmedBookings возвращает подтвержденные бронирования
func (r *Repository) ConfirmedBookings() []domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Booking, 0)
	for _, b := range r.bookings {
		if b.IsConfirmed() {
			result = append(result, *b)
		}
	}
	return result
}

// CountByStatus возвращает количество бронирований по статусам
func (r *Repository) CountByStatus() map[domain.BookingStatus]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[domain.BookingStatus]int, len(domain.AllStatuses))
	for _, b := range r.bookings {
		counts[b.Status]++
	}
	return counts
}

// Count возвращает общее количество бронирований
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bookings)
}

// findConflictUnsafe ищет подтвержденное бронирование объекта, пересекающееся с интервалом.
// excludeID исключает само проверяемое бронирование. Вызывать под блокировкой.
func (r *Repository) findConflictUnsafe(propertyID string, checkIn, checkOut time.Time, excludeID string) *domain.Booking {
	for _, b := range r.bookings {
		if b.ID == excludeID || b.PropertyID != propertyID || !b.IsConfirmed() {
			continue
		}
		if b.OverlapsWith(checkIn, checkOut) {
			return b
		}
	}
	return nil
}

// nextIDUnsafe выдает свободный ID. Вызывать под блокировкой.
func (r *Repository) nextIDUnsafe() string {
	for {
		id := r.idGenerator.Next()
		if _, taken := r.byID[id]; !taken {
			return id
		}
	}
}
