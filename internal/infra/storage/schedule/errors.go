package schedule

import "errors"

var (
	// ErrDayHoursNotFound возвращается, когда расписание на день недели не задано
	ErrDayHoursNotFound = errors.New("schedule.repository: day hours not found")

	// ErrInvalidWeekday возвращается при номере дня недели вне диапазона 0-6
	ErrInvalidWeekday = errors.New("schedule.repository: weekday must be in range 0-6")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
