package apply_shift_action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ORS-BookingService/internal/domain"
)

func participantIDs(s *domain.Shift) []string {
	ids := make([]string, len(s.Participants))
	for i, p := range s.Participants {
		ids[i] = p.UserID
	}
	return ids
}

func waitlistIDs(s *domain.Shift) []string {
	ids := make([]string, len(s.Waitlist))
	for i, w := range s.Waitlist {
		ids[i] = w.UserID
	}
	return ids
}

func TestApplyTransition_CancelPromotesWaitlistHead(t *testing.T) {
	shifts := []*domain.Shift{
		testShift(1, "2025-10-15", []string{"p1", "p2", "p3"}, []string{"w1", "w2"}),
	}

	result, err := applyTransition(domain.ActionCancel, entry("p1"), 1, shifts)
	require.NoError(t, err)

	updated := result.UpdatedShifts[1]
	require.NotNil(t, updated)
	assert.Equal(t, []string{"p2", "p3", "w1"}, participantIDs(updated))
	assert.Equal(t, []string{"w2"}, waitlistIDs(updated))

	// Продвинутый получает письмо-подтверждение
	require.Len(t, result.Events, 1)
	assert.Equal(t, "w1@studenti.uniroma1.it", result.Events[0].NotifyEmail)
	assert.Equal(t, shifts[0].Date, result.Events[0].ShiftDate)

	assert.ElementsMatch(t, []string{"p1", "w1"}, result.AffectedUsers)
}

func TestApplyTransition_CancelWithEmptyWaitlist(t *testing.T) {
	shifts := []*domain.Shift{
		testShift(1, "2025-10-15", []string{"p1", "p2"}, nil),
	}

	result, err := applyTransition(domain.ActionCancel, entry("p1"), 1, shifts)
	require.NoError(t, err)

	updated := result.UpdatedShifts[1]
	assert.Equal(t, []string{"p2"}, participantIDs(updated))
	assert.Empty(t, updated.Waitlist)
	assert.Empty(t, result.Events)
	assert.Len(t, result.UpdatedShifts, 1)
}

func TestApplyTransition_PromotionForfeitsOtherWaitlists(t *testing.T) {
	// w1 стоит в очередях на смены 1 и 2; продвижение на смене 1
	// убирает его из очереди смены 2
	shifts := []*domain.Shift{
		testShift(1, "2025-10-15", []string{"p1", "p2", "p3"}, []string{"w1"}),
		testShift(2, "2025-10-16", []string{"p4", "p5", "p6"}, []string{"w1", "w2"}),
	}

	result, err := applyTransition(domain.ActionCancel, entry("p1"), 1, shifts)
	require.NoError(t, err)

	require.Len(t, result.UpdatedShifts, 2)
	assert.Equal(t, []string{"p2", "p3", "w1"}, participantIDs(result.UpdatedShifts[1]))
	assert.Equal(t, []string{"w2"}, waitlistIDs(result.UpdatedShifts[2]))

	// Чистка не порождает дополнительных писем
	require.Len(t, result.Events, 1)
}

func TestApplyTransition_BookForfeitsWaitlists(t *testing.T) {
	shifts := []*domain.Shift{
		testShift(1, "2025-10-15", []string{"p1"}, nil),
		testShift(2, "2025-10-16", []string{"p4", "p5", "p6"}, []string{"u1", "w2"}),
	}

	result, err := applyTransition(domain.ActionBook, entry("u1"), 1, shifts)
	require.NoError(t, err)

	require.Len(t, result.UpdatedShifts, 2)
	assert.Equal(t, []string{"p1", "u1"}, participantIDs(result.UpdatedShifts[1]))
	assert.Equal(t, []string{"w2"}, waitlistIDs(result.UpdatedShifts[2]))

	require.Len(t, result.Events, 1)
	assert.Equal(t, "u1@studenti.uniroma1.it", result.Events[0].NotifyEmail)
	assert.Equal(t, []string{"u1"}, result.AffectedUsers)
}

func TestApplyTransition_JoinWaitlist(t *testing.T) {
	shifts := []*domain.Shift{
		testShift(1, "2025-10-15", []string{"p1", "p2", "p3"}, []string{"w1"}),
	}

	result, err := applyTransition(domain.ActionJoinWaitlist, entry("u1"), 1, shifts)
	require.NoError(t, err)

	// Новая заявка встает в хвост очереди
	assert.Equal(t, []string{"w1", "u1"}, waitlistIDs(result.UpdatedShifts[1]))
	assert.Empty(t, result.Events)
}

func TestApplyTransition_LeaveWaitlistKeepsOrder(t *testing.T) {
	shifts := []*domain.Shift{
		testShift(1, "2025-10-15", []string{"p1", "p2", "p3"}, []string{"w1", "u1", "w3"}),
	}

	result, err := applyTransition(domain.ActionLeaveWaitlist, entry("u1"), 1, shifts)
	require.NoError(t, err)

	assert.Equal(t, []string{"w1", "w3"}, waitlistIDs(result.UpdatedShifts[1]))
	assert.Empty(t, result.Events)
}

func TestApplyTransition_UnknownAction(t *testing.T) {
	shifts := []*domain.Shift{testShift(1, "2025-10-15", nil, nil)}

	_, err := applyTransition(domain.Action("explode"), entry("u1"), 1, shifts)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestApplyTransition_DoesNotMutateSnapshot(t *testing.T) {
	shifts := []*domain.Shift{
		testShift(1, "2025-10-15", []string{"p1", "p2", "p3"}, []string{"w1"}),
		testShift(2, "2025-10-16", []string{"p4"}, []string{"w1"}),
	}

	_, err := applyTransition(domain.ActionCancel, entry("p1"), 1, shifts)
	require.NoError(t, err)

	// Исходный снапшот остался нетронутым
	assert.Equal(t, []string{"p1", "p2", "p3"}, participantIDs(shifts[0]))
	assert.Equal(t, []string{"w1"}, waitlistIDs(shifts[0]))
	assert.Equal(t, []string{"w1"}, waitlistIDs(shifts[1]))
}
