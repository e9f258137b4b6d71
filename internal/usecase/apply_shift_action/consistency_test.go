package apply_shift_action

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/ORS-BookingService/internal/domain"
)

func TestValidateSingleClaim_SingleSeat(t *testing.T) {
	shifts := []*domain.Shift{
		testShift(1, "2025-10-15", []string{"u1"}, nil),
		testShift(2, "2025-10-16", nil, nil),
	}
	result := &transitionResult{UpdatedShifts: map[int64]*domain.Shift{}}

	err := validateSingleClaim(result, shifts, []string{"u1"})
	assert.NoError(t, err)
}

func TestValidateSingleClaim_TwoSeats(t *testing.T) {
	shifts := []*domain.Shift{
		testShift(1, "2025-10-15", []string{"u1"}, nil),
		testShift(2, "2025-10-16", []string{"u1"}, nil),
	}
	result := &transitionResult{UpdatedShifts: map[int64]*domain.Shift{}}

	err := validateSingleClaim(result, shifts, []string{"u1"})
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestValidateSingleClaim_SeatWithWaitlistResidue(t *testing.T) {
	// После подтверждения места в листах ожидания ничего не должно остаться
	shifts := []*domain.Shift{
		testShift(1, "2025-10-15", []string{"u1"}, nil),
		testShift(2, "2025-10-16", []string{"p1", "p2", "p3"}, []string{"u1"}),
	}
	result := &transitionResult{UpdatedShifts: map[int64]*domain.Shift{}}

	err := validateSingleClaim(result, shifts, []string{"u1"})
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestValidateSingleClaim_MultipleWaitlistsAllowed(t *testing.T) {
	shifts := []*domain.Shift{
		testShift(1, "2025-10-15", []string{"p1", "p2", "p3"}, []string{"u1"}),
		testShift(2, "2025-10-16", []string{"p4", "p5", "p6"}, []string{"u1"}),
	}
	result := &transitionResult{UpdatedShifts: map[int64]*domain.Shift{}}

	err := validateSingleClaim(result, shifts, []string{"u1"})
	assert.NoError(t, err)
}

func TestValidateSingleClaim_UpdatedShiftsOverlaySnapshot(t *testing.T) {
	// В снапшоте у u1 место и очередь, но переход очередь уже убрал:
	// проверяется состояние после перехода, а не снапшот
	shifts := []*domain.Shift{
		testShift(1, "2025-10-15", []string{"u1"}, nil),
		testShift(2, "2025-10-16", []string{"p1", "p2", "p3"}, []string{"u1"}),
	}
	cleaned := testShift(2, "2025-10-16", []string{"p1", "p2", "p3"}, nil)
	result := &transitionResult{UpdatedShifts: map[int64]*domain.Shift{2: cleaned}}

	err := validateSingleClaim(result, shifts, []string{"u1"})
	assert.NoError(t, err)
}
