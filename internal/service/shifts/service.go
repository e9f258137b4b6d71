package shifts

import (
	"context"
	"fmt"

	"github.com/m04kA/ORS-BookingService/internal/service/shifts/models"
)

// Service сервис чтения смен: доска для отображения и заявки пользователя
// Доска собирается pull-запросом по свежему чтению; push-обновления
// для отображения сервис сознательно не поддерживает
type Service struct {
	shiftRepo       ShiftRepository
	maxParticipants int
	maxWaitlist     int
	logger          Logger
}

// NewService создает новый экземпляр сервиса смен
func NewService(shiftRepo ShiftRepository, maxParticipants, maxWaitlist int, logger Logger) *Service {
	return &Service{
		shiftRepo:       shiftRepo,
		maxParticipants: maxParticipants,
		maxWaitlist:     maxWaitlist,
		logger:          logger,
	}
}

// GetBoard возвращает все смены с занятостью и отметками вызывающего
// пользователя (записан / в листе ожидания)
func (s *Service) GetBoard(ctx context.Context, req *models.GetBoardRequest) (*models.BoardResponse, error) {
	s.logger.Info("GetBoard: fetching shifts for user=%s", req.UserID)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	shifts, err := s.shiftRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("GetBoard: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetBoard - repository error: %v", ErrInternal, err)
	}

	response := &models.BoardResponse{
		Shifts:           make([]models.ShiftView, 0, len(shifts)),
		BookedShiftIDs:   make([]int64, 0),
		WaitlistShiftIDs: make([]int64, 0),
	}

	for _, shift := range shifts {
		view := models.FromDomainShift(shift, req.UserID, s.maxParticipants, s.maxWaitlist)
		response.Shifts = append(response.Shifts, view)

		if view.BookedByUser {
			response.BookedShiftIDs = append(response.BookedShiftIDs, shift.ID)
		}
		if view.WaitlistedByUser {
			response.WaitlistShiftIDs = append(response.WaitlistShiftIDs, shift.ID)
		}
	}

	s.logger.Info("GetBoard: successfully fetched %d shifts for user=%s", len(shifts), req.UserID)
	return response, nil
}

// GetUserShifts возвращает смены, где у пользователя есть заявка
func (s *Service) GetUserShifts(ctx context.Context, req *models.GetUserShiftsRequest) (*models.UserShiftsResponse, error) {
	s.logger.Info("GetUserShifts: fetching shifts for user=%s", req.UserID)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	shifts, err := s.shiftRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("GetUserShifts: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserShifts - repository error: %v", ErrInternal, err)
	}

	response := &models.UserShiftsResponse{
		Booked:     make([]models.ShiftView, 0),
		Waitlisted: make([]models.ShiftView, 0),
	}

	for _, shift := range shifts {
		switch {
		case shift.IsParticipant(req.UserID):
			response.Booked = append(response.Booked, models.FromDomainShift(shift, req.UserID, s.maxParticipants, s.maxWaitlist))
		case shift.IsWaitlisted(req.UserID):
			response.Waitlisted = append(response.Waitlisted, models.FromDomainShift(shift, req.UserID, s.maxParticipants, s.maxWaitlist))
		}
	}

	s.logger.Info("GetUserShifts: user=%s has %d booked and %d waitlisted shifts",
		req.UserID, len(response.Booked), len(response.Waitlisted))
	return response, nil
}
