package catalog

import (
	"fmt"

	"github.com/m04kA/SMC-RentalReservations/internal/domain"
)

// Repository каталог объектов размещения.
// После создания не изменяется, поэтому не требует блокировок.
type Repository struct {
	properties []domain.Property
	byID       map[string]int
}

// NewRepository создает каталог, порядок объектов сохраняется
func NewRepository(properties []domain.Property) (*Repository, error) {
	r := &Repository{
		properties: make([]domain.Property, 0, len(properties)),
		byID:       make(map[string]int, len(properties)),
	}

	for _, p := range properties {
		if _, exists := r.byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		r.byID[p.ID] = len(r.properties)
		r.properties = append(r.properties, clone(p))
	}

	return r, nil
}

// FindByID возвращает объект по ID
func (r *Repository) FindByID(id string) (domain.Property, error) {
	idx, ok := r.byID[id]
	if !ok {
		return domain.Property{}, fmt.Errorf("%w: id=%s", domain.ErrPropertyNotFound, id)
	}
	return clone(r.properties[idx]), nil
}

// ListActive возвращает активные объекты в порядке каталога
func (r *Repository) ListActive() []domain.Property {
	result := make([]domain.Property, 0, len(r.properties))
	for _, p := range r.properties {
		if p.IsActive {
			result = append(result, clone(p))
		}
	}
	return result
}

// Search ищет по всему каталогу, включая неактивные объекты.
// Ограничение активными объектами - ответственность вызывающего.
func (r *Repository) Search(filter domain.SearchFilter) []domain.Property {
	result := make([]domain.Property, 0)
	for i := range r.properties {
		if filter.Matches(&r.properties[i]) {
			result = append(result, clone(r.properties[i]))
		}
	}
	return result
}

// All возвращает весь каталог
func (r *Repository) All() []domain.Property {
	result := make([]domain.Property, len(r.properties))
	for i, p := range r.properties {
		result[i] = clone(p)
	}
	return result
}

// Count возвращает количество объектов в каталоге
func (r *Repository) Count() int {
	return len(r.properties)
}

func clone(p domain.Property) domain.Property {
	if p.Amenities != nil {
		p.Amenities = append([]string(nil), p.Amenities...)
	}
	return p
}
