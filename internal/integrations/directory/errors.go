package directory

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден в каталоге
	ErrBusinessNotFound = errors.New("business not found in directory")

	// ErrSpecialistNotFound возвращается, когда специалист не найден у бизнеса
	ErrSpecialistNotFound = errors.New("specialist not found in directory")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("directory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("directory client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что DirectoryService недоступен
	ErrServiceDegraded = errors.New("directory service unavailable: graceful degradation applied")
)
