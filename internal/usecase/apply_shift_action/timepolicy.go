package apply_shift_action

import (
	"time"

	"github.com/m04kA/ORS-BookingService/pkg/types"
)

// hoursUntil возвращает количество часов от now до полуночи даты смены
// Для прошедших смен значение отрицательное
// now семплируется один раз на операцию: повторные вызовы внутри одного
// перехода обязаны использовать один и тот же момент времени
func hoursUntil(date types.DateString, now time.Time) (float64, error) {
	shiftStart, err := date.ToTime()
	if err != nil {
		return 0, err
	}
	return shiftStart.Sub(now).Hours(), nil
}

// isWithinCutoff проверяет, что до начала смены осталось не больше
// cutoffHours часов (граница включается: ровно cutoffHours - уже поздно)
func isWithinCutoff(date types.DateString, now time.Time, cutoffHours float64) (bool, error) {
	hours, err := hoursUntil(date, now)
	if err != nil {
		return false, err
	}
	return hours <= cutoffHours, nil
}
