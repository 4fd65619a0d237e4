package seed

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-RentalReservations/internal/domain"
	"github.com/m04kA/SMC-RentalReservations/pkg/dates"
)

// Load читает и валидирует файл начальных данных (TOML)
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadDataset, path, err)
	}
	return Parse(string(data))
}

// Parse разбирает и валидирует начальные данные
func Parse(data string) (*Dataset, error) {
	var ds Dataset

	meta, err := toml.Decode(data, &ds)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadDataset, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrInvalidDataset, strings.Join(keys, ", "))
	}

	if err := validate(&ds); err != nil {
		return nil, err
	}

	return &ds, nil
}

func validate(ds *Dataset) error {
	v := newValidator()

	if err := v.Struct(ds); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("%w: %s", ErrInvalidDataset, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	// Ссылки и интервалы, которые не выражаются тегами
	propertyIDs := make(map[string]struct{}, len(ds.Properties))
	for _, p := range ds.Properties {
		if _, dup := propertyIDs[p.ID]; dup {
			return fmt.Errorf("%w: duplicate property id %s", ErrInvalidDataset, p.ID)
		}
		propertyIDs[p.ID] = struct{}{}
	}

	bookingIDs := make(map[string]struct{}, len(ds.Bookings))
	for _, b := range ds.Bookings {
		if _, dup := bookingIDs[b.ID]; dup {
			return fmt.Errorf("%w: duplicate booking id %s", ErrInvalidDataset, b.ID)
		}
		bookingIDs[b.ID] = struct{}{}

		if _, ok := propertyIDs[b.PropertyID]; !ok {
			return fmt.Errorf("%w: booking %s references unknown property %s", ErrInvalidDataset, b.ID, b.PropertyID)
		}

		checkIn, _ := dates.Parse(b.CheckIn)
		checkOut, _ := dates.Parse(b.CheckOut)
		if !checkIn.Before(checkOut) {
			return fmt.Errorf("%w: booking %s: check_in must be before check_out", ErrInvalidDataset, b.ID)
		}
	}

	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, ok := dates.Parse(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("bookingstatus", func(fl validator.FieldLevel) bool {
		return domain.BookingStatus(fl.Field().String()).IsValid()
	})

	return v
}
