package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrStorageUnavailable возвращается, когда журнал броней недоступен
	// Недоступность кэша сюда не попадает: она деградирует к прямому вычислению
	ErrStorageUnavailable = errors.New("get_availability: storage unavailable")
)
