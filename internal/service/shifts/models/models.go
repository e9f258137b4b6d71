package models

import (
	"github.com/m04kA/ORS-BookingService/internal/domain"
)

// Request модели

// GetBoardRequest запрос доски смен для пользователя
type GetBoardRequest struct {
	UserID string
}

// GetUserShiftsRequest запрос смен пользователя
type GetUserShiftsRequest struct {
	UserID string
}

// Response модели

// ShiftView представление смены на доске
type ShiftView struct {
	ID                int64    `json:"id"`
	Date              string   `json:"date"`
	ParticipantsCount int      `json:"participantsCount"`
	MaxParticipants   int      `json:"maxParticipants"`
	WaitlistCount     int      `json:"waitlistCount"`
	MaxWaitlist       int      `json:"maxWaitlist"`
	IsFull            bool     `json:"isFull"`
	IsWaitlistFull    bool     `json:"isWaitlistFull"`
	BookedByUser      bool     `json:"bookedByUser"`
	WaitlistedByUser  bool     `json:"waitlistedByUser"`
	Participants      []string `json:"participants"`
}

// BoardResponse доска смен с разделами пользователя
type BoardResponse struct {
	Shifts           []ShiftView `json:"shifts"`
	BookedShiftIDs   []int64     `json:"bookedShiftIds"`
	WaitlistShiftIDs []int64     `json:"waitlistShiftIds"`
}

// UserShiftsResponse смены, на которые у пользователя есть заявки
type UserShiftsResponse struct {
	Booked     []ShiftView `json:"booked"`
	Waitlisted []ShiftView `json:"waitlisted"`
}

// FromDomainShift конвертирует доменную смену в представление
func FromDomainShift(s *domain.Shift, userID string, maxParticipants, maxWaitlist int) ShiftView {
	names := make([]string, len(s.Participants))
	for i, p := range s.Participants {
		names[i] = p.DisplayName
	}

	return ShiftView{
		ID:                s.ID,
		Date:              s.Date.String(),
		ParticipantsCount: len(s.Participants),
		MaxParticipants:   maxParticipants,
		WaitlistCount:     len(s.Waitlist),
		MaxWaitlist:       maxWaitlist,
		IsFull:            !s.HasFreeSeat(maxParticipants),
		IsWaitlistFull:    !s.HasWaitlistRoom(maxWaitlist),
		BookedByUser:      s.IsParticipant(userID),
		WaitlistedByUser:  s.IsWaitlisted(userID),
		Participants:      names,
	}
}
