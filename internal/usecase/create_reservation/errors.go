package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (в том числе инвертированный интервал start >= end)
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("create_reservation: resource not found")

	// ErrCapacityExceeded возвращается, когда размер группы превышает вместимость ресурса
	ErrCapacityExceeded = errors.New("create_reservation: party size exceeds resource capacity")

	// ErrTimeConflict возвращается, когда интервал пересекается с существующей
	// подтверждённой бронью - как при предварительной проверке, так и при
	// отказе БД на вставке (exclusion constraint / serialization failure).
	// Вызывающий не может различить эти два случая
	ErrTimeConflict = errors.New("create_reservation: time slot already reserved")

	// ErrStorageUnavailable возвращается, когда журнал броней недоступен
	ErrStorageUnavailable = errors.New("create_reservation: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
