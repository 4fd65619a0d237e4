package domain

// Property represents a rental property in the catalog
type Property struct {
	ID          string
	Name        string
	City        string
	Type        string
	NightlyRate float64
	CleaningFee float64
	MaxGuests   int
	Amenities   []string
	IsActive    bool
}

// HasAmenity returns true if the property offers the amenity
func (p *Property) HasAmenity(tag string) bool {
	for _, a := range p.Amenities {
		if a == tag {
			return true
		}
	}
	return false
}

// HasAllAmenities returns true if the property offers every requested amenity
func (p *Property) HasAllAmenities(tags []string) bool {
	for _, tag := range tags {
		if !p.HasAmenity(tag) {
			return false
		}
	}
	return true
}

// CanHost returns true if the property accepts the given number of guests
func (p *Property) CanHost(guests int) bool {
	return guests <= p.MaxGuests
}

// SearchFilter фильтр поиска по каталогу.
// nil (или пустой слайс) означает, что фильтр не применяется.
type SearchFilter struct {
	City      *string  // Точное совпадение города
	MinRate   *float64 // Минимальная цена за ночь (включительно)
	MaxRate   *float64 // Максимальная цена за ночь (включительно)
	MinGuests *int     // Вместимость должна быть не меньше
	Amenities []string // Должны присутствовать все удобства
}

// Matches returns true if the property passes every applied filter
func (f SearchFilter) Matches(p *Property) bool {
	if f.City != nil && p.City != *f.City {
		return false
	}
	if f.MinRate != nil && p.NightlyRate < *f.MinRate {
		return false
	}
	if f.MaxRate != nil && p.NightlyRate > *f.MaxRate {
		return false
	}
	if f.MinGuests != nil && p.MaxGuests < *f.MinGuests {
		return false
	}
	if len(f.Amenities) > 0 && !p.HasAllAmenities(f.Amenities) {
		return false
	}
	return true
}
