package domain

import (
	"time"

	"github.com/m04kA/ORS-BookingService/pkg/types"
)

// Shift представляет одну смену (turno) в операционной
// Участники и лист ожидания упорядочены: порядок добавления = порядок подтверждения,
// голова листа ожидания продвигается первой
type Shift struct {
	ID      int64
	Date    types.DateString
	Version int64

	// Participants подтвержденные участники, максимум MaxParticipants
	Participants []ShiftEntry
	// Waitlist лист ожидания (FIFO), максимум MaxWaitlist
	Waitlist []ShiftEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShiftEntry заявка пользователя на смену
// Создается при записи в участники или лист ожидания, при продвижении
// переносится (не копируется) из листа ожидания в участники
type ShiftEntry struct {
	UserID      string
	DisplayName string
	NotifyEmail string
}

// IsParticipant проверяет, что пользователь записан участником смены
func (s *Shift) IsParticipant(userID string) bool {
	for _, p := range s.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// IsWaitlisted проверяет, что пользователь находится в листе ожидания смены
func (s *Shift) IsWaitlisted(userID string) bool {
	for _, w := range s.Waitlist {
		if w.UserID == userID {
			return true
		}
	}
	return false
}

// HasClaim проверяет, что у пользователя есть любая заявка на смену
func (s *Shift) HasClaim(userID string) bool {
	return s.IsParticipant(userID) || s.IsWaitlisted(userID)
}

// HasFreeSeat проверяет, что есть свободное место участника
func (s *Shift) HasFreeSeat(maxParticipants int) bool {
	return len(s.Participants) < maxParticipants
}

// HasWaitlistRoom проверяет, что в листе ожидания есть место
func (s *Shift) HasWaitlistRoom(maxWaitlist int) bool {
	return len(s.Waitlist) < maxWaitlist
}

// Clone возвращает глубокую копию смены
// Движок переходов никогда не изменяет исходный снапшот
func (s *Shift) Clone() *Shift {
	clone := &Shift{
		ID:        s.ID,
		Date:      s.Date,
		Version:   s.Version,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	clone.Participants = make([]ShiftEntry, len(s.Participants))
	copy(clone.Participants, s.Participants)
	clone.Waitlist = make([]ShiftEntry, len(s.Waitlist))
	copy(clone.Waitlist, s.Waitlist)
	return clone
}
