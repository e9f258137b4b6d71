package apply_shift_action

import "github.com/m04kA/ORS-BookingService/internal/domain"

// validateSingleClaim проверяет инвариант единственного активного бронирования
// для затронутых переходом пользователей (актор и продвинутый из очереди):
//   - максимум одно подтвержденное место по всем сменам
//   - у подтвержденного участника не остается заявок в листах ожидания
//     (кросс-сменная чистка обязана была их убрать)
//
// Несколько заявок в листах ожидания без подтвержденного места допустимы:
// очередь на другой смене не блокирует новые заявки и форфейтится
// только при получении места
// Нарушение означает конкурентную модификацию между чтением и записью;
// переход целиком отменяется, вызывающий повторяет попытку
func validateSingleClaim(result *transitionResult, allShifts []*domain.Shift, userIDs []string) error {
	for _, userID := range userIDs {
		seats := 0
		waitlisted := 0

		for _, s := range allShifts {
			effective := s
			if updated, ok := result.UpdatedShifts[s.ID]; ok {
				effective = updated
			}
			if effective.IsParticipant(userID) {
				seats++
			}
			if effective.IsWaitlisted(userID) {
				waitlisted++
			}
		}

		if seats > 1 {
			return ErrConcurrentModification
		}
		if seats == 1 && waitlisted > 0 {
			return ErrConcurrentModification
		}
	}
	return nil
}
