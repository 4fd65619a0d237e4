package booking

import (
	"time"

	"github.com/m04kA/SMC-RentalReservations/internal/domain"
)

// PropertyFinder источник объектов размещения для валидации бронирований
type PropertyFinder interface {
	FindByID(id string) (domain.Property, error)
}

// IDGenerator выдает идентификаторы новых бронирований.
// Вызывается под блокировкой репозитория.
type IDGenerator interface {
	Next() string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
