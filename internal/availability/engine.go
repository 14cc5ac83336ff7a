// Package availability содержит чистый движок расчета доступных слотов.
// Никакого I/O: рабочие часы, длительность слота, занятые интервалы, дата и
// текущее время передаются вызывающей стороной. Оба usecase (выдача слотов и
// создание записи) используют один и тот же тест пересечения, чтобы чтение и
// запись не могли разойтись в семантике.
package availability

import (
	"errors"
	"time"

	"github.com/reservalo/availability-service/internal/domain"
	"github.com/reservalo/availability-service/pkg/types"
)

var (
	// ErrInvalidSlotDuration возвращается при неположительной длительности слота
	// Молчаливый дефолт здесь маскировал бы сломанную конфигурацию бизнеса
	ErrInvalidSlotDuration = errors.New("availability: slot duration must be positive")

	// ErrInvalidDayHours возвращается, когда время закрытия не позже времени открытия
	ErrInvalidDayHours = errors.New("availability: close time must be strictly after open time")

	// ErrSlotOutsideHours возвращается, когда слот не помещается в рабочие часы
	ErrSlotOutsideHours = errors.New("availability: slot is outside working hours")

	// ErrSlotOffGrid возвращается, когда время начала не лежит на сетке слотов
	ErrSlotOffGrid = errors.New("availability: slot start is not aligned to the slot grid")
)

// Interval полуоткрытый интервал времени [Start, End), занятый существующей записью
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps возвращает true, если интервалы действительно пересекаются.
// Строгие неравенства: записи "встык" (одна заканчивается ровно там, где
// начинается другая) пересечением не считаются.
//
// Примеры:
// - Слот 11:30-12:00, запись 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - Слот 11:30-12:00, запись 11:00-11:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:00, запись 12:00-12:30 → НЕТ пересечения (граничат)
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// ComputeSlots вычисляет упорядоченный список свободных слотов на дату.
//
// Правила:
//   - nil dayHours, закрытый день или отсутствующие часы → пустой результат (не ошибка)
//   - слот предлагается, только если целиком помещается до закрытия;
//     слот, заканчивающийся ровно во время закрытия, допустим
//   - на сегодняшнюю дату слоты, начавшиеся раньше now, пропускаются
//     (пропускаются, а не обрывают цикл: более поздние слоты ещё доступны)
//   - слот исключается, если пересекается хотя бы с одним занятым интервалом;
//     интервалы могут быть неотсортированы и пересекаться между собой,
//     каждый блокирует независимо
//
// Результат строго возрастает по времени начала. Повторный вызов с теми же
// входными данными дает идентичный результат.
func ComputeSlots(
	dayHours *domain.DayHours,
	slotDurationMinutes int,
	booked []Interval,
	requestedDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	if slotDurationMinutes <= 0 {
		return nil, ErrInvalidSlotDuration
	}

	// Закрытый день и отсутствующие часы - нормальный пустой результат
	if dayHours == nil || dayHours.IsClosed || !dayHours.HasHours() {
		return []types.TimeString{}, nil
	}

	cursor, err := dayHours.OpenTime.At(requestedDate)
	if err != nil {
		return nil, err
	}
	closeBoundary, err := dayHours.CloseTime.At(requestedDate)
	if err != nil {
		return nil, err
	}

	if !closeBoundary.After(cursor) {
		return nil, ErrInvalidDayHours
	}

	duration := time.Duration(slotDurationMinutes) * time.Minute
	isToday := IsSameDay(requestedDate, now)

	slots := make([]types.TimeString, 0)

	for !cursor.Add(duration).After(closeBoundary) {
		slotEnd := cursor.Add(duration)

		// На сегодня прошедшие слоты пропускаем; слот, начавшийся до now,
		// не предлагается, даже если now попадает внутрь него
		if isToday && cursor.Before(now) {
			cursor = cursor.Add(duration)
			continue
		}

		if isOccupied(Interval{Start: cursor, End: slotEnd}, booked) {
			cursor = cursor.Add(duration)
			continue
		}

		slots = append(slots, types.NewTimeString(cursor))
		cursor = cursor.Add(duration)
	}

	return slots, nil
}

func isOccupied(slot Interval, booked []Interval) bool {
	for _, b := range booked {
		if slot.Overlaps(b) {
			return true
		}
	}
	return false
}

// CountOverlapping подсчитывает количество занятых интервалов, пересекающихся со слотом
func CountOverlapping(slot Interval, booked []Interval) int {
	count := 0
	for _, b := range booked {
		if slot.Overlaps(b) {
			count++
		}
	}
	return count
}

// ValidateSlotStart проверяет, что время начала лежит на сетке слотов дня:
// смещено от открытия на целое число слотов и слот целиком помещается до закрытия
func ValidateSlotStart(dayHours *domain.DayHours, slotDurationMinutes int, start types.TimeString) error {
	if slotDurationMinutes <= 0 {
		return ErrInvalidSlotDuration
	}
	if dayHours == nil || dayHours.IsClosed || !dayHours.HasHours() {
		return ErrSlotOutsideHours
	}

	openMin, err := dayHours.OpenTime.Minutes()
	if err != nil {
		return err
	}
	closeMin, err := dayHours.CloseTime.Minutes()
	if err != nil {
		return err
	}
	if closeMin <= openMin {
		return ErrInvalidDayHours
	}

	startMin, err := start.Minutes()
	if err != nil {
		return err
	}

	if startMin < openMin || startMin+slotDurationMinutes > closeMin {
		return ErrSlotOutsideHours
	}
	if (startMin-openMin)%slotDurationMinutes != 0 {
		return ErrSlotOffGrid
	}
	return nil
}

// IntervalsFromAppointments строит занятые интервалы из записей на дату.
// Учитываются только записи, удерживающие слот (pending, confirmed);
// записи с некорректным временем пропускаются.
func IntervalsFromAppointments(date time.Time, appointments []*domain.Appointment) []Interval {
	intervals := make([]Interval, 0, len(appointments))

	for _, appt := range appointments {
		if !appt.HoldsSlot() {
			continue
		}

		start, err := appt.StartTime.At(date)
		if err != nil {
			continue
		}

		intervals = append(intervals, Interval{
			Start: start,
			End:   start.Add(time.Duration(appt.DurationMinutes) * time.Minute),
		})
	}

	return intervals
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
