package apply_shift_action

import (
	"fmt"

	"github.com/m04kA/ORS-BookingService/internal/domain"
)

// transitionResult результат применения действия к снапшоту смен
type transitionResult struct {
	// UpdatedShifts смены, которые нужно сохранить (включая затронутые
	// кросс-сменной чисткой листов ожидания)
	UpdatedShifts map[int64]*domain.Shift
	// Events события подтверждения, доставляются после коммита
	Events []domain.BookingConfirmed
	// AffectedUsers пользователи, чьи заявки изменил переход
	// (актор и, при продвижении, голова листа ожидания)
	AffectedUsers []string
}

// applyTransition применяет действие к целевой смене и вычисляет каскадные
// эффекты: продвижение головы листа ожидания и кросс-сменную чистку
// Чистая функция над снапшотом: все мутации выполняются на копиях,
// входные смены никогда не изменяются
func applyTransition(
	action domain.Action,
	actor domain.ShiftEntry,
	targetShiftID int64,
	allShifts []*domain.Shift,
) (*transitionResult, error) {
	source := findShift(allShifts, targetShiftID)
	if source == nil {
		return nil, ErrShiftNotFound
	}

	target := source.Clone()
	result := &transitionResult{
		UpdatedShifts: map[int64]*domain.Shift{target.ID: target},
		Events:        make([]domain.BookingConfirmed, 0, 1),
		AffectedUsers: []string{actor.UserID},
	}

	switch action {
	case domain.ActionCancel:
		target.Participants = removeEntry(target.Participants, actor.UserID)

		// Продвигаем голову листа ожидания на освободившееся место
		if len(target.Waitlist) > 0 {
			promoted := target.Waitlist[0]
			target.Waitlist = target.Waitlist[1:]
			target.Participants = append(target.Participants, promoted)

			result.Events = append(result.Events, domain.BookingConfirmed{
				NotifyEmail: promoted.NotifyEmail,
				DisplayName: promoted.DisplayName,
				ShiftDate:   target.Date,
			})

			// Продвинутый пользователь теряет остальные заявки в листах ожидания
			forfeitWaitlists(promoted.UserID, target.ID, allShifts, result)
			result.AffectedUsers = append(result.AffectedUsers, promoted.UserID)
		}

	case domain.ActionLeaveWaitlist:
		target.Waitlist = removeEntry(target.Waitlist, actor.UserID)

	case domain.ActionBook:
		target.Participants = append(target.Participants, actor)

		result.Events = append(result.Events, domain.BookingConfirmed{
			NotifyEmail: actor.NotifyEmail,
			DisplayName: actor.DisplayName,
			ShiftDate:   target.Date,
		})

		// Получив подтвержденное место, пользователь теряет остальные
		// заявки в листах ожидания
		forfeitWaitlists(actor.UserID, target.ID, allShifts, result)

	case domain.ActionJoinWaitlist:
		target.Waitlist = append(target.Waitlist, actor)

	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrInternal, action)
	}

	return result, nil
}

// forfeitWaitlists удаляет пользователя из листов ожидания всех смен,
// кроме целевой, добавляя затронутые смены в результат
func forfeitWaitlists(userID string, targetShiftID int64, allShifts []*domain.Shift, result *transitionResult) {
	for _, s := range allShifts {
		if s.ID == targetShiftID || !s.IsWaitlisted(userID) {
			continue
		}

		updated, ok := result.UpdatedShifts[s.ID]
		if !ok {
			updated = s.Clone()
			result.UpdatedShifts[s.ID] = updated
		}
		updated.Waitlist = removeEntry(updated.Waitlist, userID)
	}
}

// removeEntry удаляет заявку пользователя, сохраняя порядок остальных
func removeEntry(entries []domain.ShiftEntry, userID string) []domain.ShiftEntry {
	filtered := make([]domain.ShiftEntry, 0, len(entries))
	for _, e := range entries {
		if e.UserID != userID {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
