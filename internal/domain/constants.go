package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinResourceCapacity         = 1
	MaxCustomerNameLength       = 255
	MaxCancellationReasonLength = 500

	// DefaultFreeBeforeMinutes применяется, когда у бизнеса нет политики отмены:
	// любая отмена до начала бронирования классифицируется как FREE
	DefaultFreeBeforeMinutes = 0
)

// CancelledStatuses терминальные статусы отмены
var CancelledStatuses = []ReservationStatus{
	StatusCancelled,
	StatusLateCancelled,
}
