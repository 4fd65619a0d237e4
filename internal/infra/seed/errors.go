package seed

import "errors"

var (
	// ErrReadDataset возвращается, когда файл не удалось прочитать или разобрать
	ErrReadDataset = errors.New("seed: failed to read dataset")

	// ErrInvalidDataset возвращается, когда данные не прошли валидацию
	ErrInvalidDataset = errors.New("seed: invalid dataset")
)
