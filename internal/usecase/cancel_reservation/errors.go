package cancel_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("cancel_reservation: reservation not found")

	// ErrNotConfirmed возвращается при попытке отменить бронирование
	// не в статусе CONFIRMED (в том числе повторная отмена)
	ErrNotConfirmed = errors.New("cancel_reservation: reservation is not confirmed")

	// ErrStorageUnavailable возвращается, когда журнал броней недоступен
	ErrStorageUnavailable = errors.New("cancel_reservation: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
