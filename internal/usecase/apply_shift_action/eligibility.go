package apply_shift_action

import (
	"fmt"
	"time"

	"github.com/m04kA/ORS-BookingService/internal/domain"
)

// evaluate определяет допустимое действие пользователя над целевой сменой
// Правила проверяются строго в этом порядке:
//  1. профиль не заполнен - отказ
//  2. участник смены - отмена, если не нарушен cutoff
//  3. в листе ожидания смены - выход, если не нарушен cutoff
//  4. подтвержденное место на другой смене - отказ
//     (заявка в чужом листе ожидания новую запись НЕ блокирует)
//  5. есть свободное место - запись
//  6. есть место в листе ожидания - постановка в очередь
//  7. иначе - отказ: всё занято
func evaluate(
	profile *domain.UserProfile,
	targetShiftID int64,
	allShifts []*domain.Shift,
	now time.Time,
	limits Limits,
) (domain.Action, error) {
	if !profile.IsComplete() {
		return "", ErrProfileIncomplete
	}

	target := findShift(allShifts, targetShiftID)
	if target == nil {
		return "", ErrShiftNotFound
	}

	if target.IsParticipant(profile.UserID) {
		within, err := isWithinCutoff(target.Date, now, limits.CancelCutoffHours)
		if err != nil {
			return "", fmt.Errorf("%w: evaluate - invalid shift date: %v", ErrInternal, err)
		}
		if within {
			return "", ErrCancelCutoffViolation
		}
		return domain.ActionCancel, nil
	}

	if target.IsWaitlisted(profile.UserID) {
		within, err := isWithinCutoff(target.Date, now, limits.LeaveWaitlistCutoffHours)
		if err != nil {
			return "", fmt.Errorf("%w: evaluate - invalid shift date: %v", ErrInternal, err)
		}
		if within {
			return "", ErrLeaveWaitlistCutoffViolation
		}
		return domain.ActionLeaveWaitlist, nil
	}

	for _, s := range allShifts {
		if s.ID == targetShiftID {
			continue
		}
		if s.IsParticipant(profile.UserID) {
			return "", ErrAlreadyBookedElsewhere
		}
	}

	if target.HasFreeSeat(limits.MaxParticipants) {
		return domain.ActionBook, nil
	}

	if target.HasWaitlistRoom(limits.MaxWaitlist) {
		return domain.ActionJoinWaitlist, nil
	}

	return "", ErrShiftFullAndWaitlistFull
}

// findShift ищет смену по ID в снапшоте
func findShift(shifts []*domain.Shift, id int64) *domain.Shift {
	for _, s := range shifts {
		if s.ID == id {
			return s
		}
	}
	return nil
}
