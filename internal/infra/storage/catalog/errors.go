package catalog

import "errors"

var (
	// ErrDuplicateID возвращается, когда в каталоге два объекта с одинаковым ID
	ErrDuplicateID = errors.New("catalog.repository: duplicate property id")
)
