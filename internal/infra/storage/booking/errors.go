package booking

import "errors"

var (
	// ErrDuplicateID возвращается, когда в исходных данных два бронирования с одинаковым ID
	ErrDuplicateID = errors.New("booking.repository: duplicate booking id")
)
