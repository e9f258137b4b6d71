package apply_shift_action

import (
	applyShiftAction "github.com/m04kA/ORS-BookingService/internal/usecase/apply_shift_action"
)

// ActionResponse HTTP response model
type ActionResponse struct {
	Action       string  `json:"action"`
	ShiftID      int64   `json:"shiftId"`
	Date         string  `json:"date"`
	Participants []Entry `json:"participants"`
	Waitlist     []Entry `json:"waitlist"`
}

// Entry заявка на смену в HTTP ответе
type Entry struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *applyShiftAction.Response) *ActionResponse {
	participants := make([]Entry, len(resp.Participants))
	for i, p := range resp.Participants {
		participants[i] = Entry{UserID: p.UserID, DisplayName: p.DisplayName}
	}

	waitlist := make([]Entry, len(resp.Waitlist))
	for i, w := range resp.Waitlist {
		waitlist[i] = Entry{UserID: w.UserID, DisplayName: w.DisplayName}
	}

	return &ActionResponse{
		Action:       string(resp.Action),
		ShiftID:      resp.ShiftID,
		Date:         resp.Date.String(),
		Participants: participants,
		Waitlist:     waitlist,
	}
}
