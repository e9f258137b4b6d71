package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func shiftWith(participants, waitlist []string) *Shift {
	s := &Shift{ID: 1, Date: "2025-10-15"}
	for _, u := range participants {
		s.Participants = append(s.Participants, ShiftEntry{UserID: u})
	}
	for _, u := range waitlist {
		s.Waitlist = append(s.Waitlist, ShiftEntry{UserID: u})
	}
	return s
}

func TestShift_Membership(t *testing.T) {
	s := shiftWith([]string{"p1", "p2"}, []string{"w1"})

	assert.True(t, s.IsParticipant("p1"))
	assert.False(t, s.IsParticipant("w1"))

	assert.True(t, s.IsWaitlisted("w1"))
	assert.False(t, s.IsWaitlisted("p1"))

	assert.True(t, s.HasClaim("p1"))
	assert.True(t, s.HasClaim("w1"))
	assert.False(t, s.HasClaim("stranger"))
}

func TestShift_Capacity(t *testing.T) {
	s := shiftWith([]string{"p1", "p2"}, []string{"w1"})

	assert.True(t, s.HasFreeSeat(3))
	assert.False(t, s.HasFreeSeat(2))

	assert.True(t, s.HasWaitlistRoom(5))
	assert.False(t, s.HasWaitlistRoom(1))
}

func TestShift_Clone(t *testing.T) {
	s := shiftWith([]string{"p1"}, []string{"w1"})
	clone := s.Clone()

	clone.Participants[0].UserID = "changed"
	clone.Waitlist = append(clone.Waitlist, ShiftEntry{UserID: "w2"})

	// Исходная смена не затронута копией
	assert.Equal(t, "p1", s.Participants[0].UserID)
	assert.Len(t, s.Waitlist, 1)
}

func TestUserProfile_IsComplete(t *testing.T) {
	var nilProfile *UserProfile
	assert.False(t, nilProfile.IsComplete())

	assert.False(t, (&UserProfile{UserID: "u1"}).IsComplete())
	assert.False(t, (&UserProfile{UserID: "u1", DisplayName: "Mario"}).IsComplete())
	assert.True(t, (&UserProfile{
		UserID:      "u1",
		DisplayName: "Mario",
		NotifyEmail: "mario@studenti.uniroma1.it",
	}).IsComplete())
}
