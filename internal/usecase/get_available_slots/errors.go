package get_available_slots

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrSpecialistNotFound возвращается, когда специалист не найден в бизнесе
	ErrSpecialistNotFound = errors.New("specialist not found")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advance_booking_days
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidConfiguration возвращается при некорректных настройках бизнеса
	// (например, нулевая длительность слота или close_time <= open_time)
	ErrInvalidConfiguration = errors.New("invalid business configuration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
