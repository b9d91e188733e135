package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrOverlapConflict возвращается, когда вставка нарушает exclusion constraint
	// непересечения подтверждённых бронирований одного ресурса
	ErrOverlapConflict = errors.New("reservation.repository: overlapping reservation exists")

	// ErrSerializationFailure возвращается, когда сериализуемая транзакция
	// не смогла закоммититься из-за конкурентной записи
	ErrSerializationFailure = errors.New("reservation.repository: serialization failure")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
