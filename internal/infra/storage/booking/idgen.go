package booking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalReservations/internal/domain"
)

// SequentialIDGenerator выдает ID вида B001, B002, ...
// Счетчик только растет, поэтому ID не переиспользуются даже если бронирования удаляются.
type SequentialIDGenerator struct {
	prefix string
	last   int
}

// NewSequentialIDGenerator создает генератор с указанным префиксом
func NewSequentialIDGenerator(prefix string) *SequentialIDGenerator {
	if prefix == "" {
		prefix = domain.DefaultBookingIDPrefix
	}
	return &SequentialIDGenerator{prefix: prefix}
}

// Observe учитывает уже существующий ID, чтобы следующий был больше
func (g *SequentialIDGenerator) Observe(id string) {
	if !strings.HasPrefix(id, g.prefix) {
		return
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, g.prefix))
	if err != nil || n <= g.last {
		return
	}
	g.last = n
}

// Next возвращает следующий ID
func (g *SequentialIDGenerator) Next() string {
	g.last++
	return fmt.Sprintf("%s%0*d", g.prefix, domain.BookingIDDigits, g.last)
}

// UUIDGenerator выдает ID вида B-<uuid>, не зависящие от содержимого реестра
type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator создает генератор с указанным префиксом
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	if prefix == "" {
		prefix = domain.DefaultBookingIDPrefix
	}
	return &UUIDGenerator{prefix: prefix}
}

// Next возвращает следующий ID
func (g *UUIDGenerator) Next() string {
	return g.prefix + "-" + uuid.NewString()
}

// observer генераторы, которым нужно знать существующие ID
type observer interface {
	Observe(id string)
}
