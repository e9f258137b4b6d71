package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/ORS-BookingService/internal/domain"
	profileRepo "github.com/m04kA/ORS-BookingService/internal/infra/storage/profile"
	"github.com/m04kA/ORS-BookingService/internal/service/profiles/models"
)

// Service сервис профилей пользователей
// Заполнение профиля - явный отдельный шаг: движок бронирования требует
// имя и email до первого действия и возвращает отказ, пока их нет
type Service struct {
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Get возвращает профиль пользователя
func (s *Service) Get(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	s.logger.Info("GetProfile: fetching profile for user=%s", userID)

	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("GetProfile: profile for user=%s not found", userID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("GetProfile: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(profile), nil
}

// Update создает или обновляет профиль пользователя
func (s *Service) Update(ctx context.Context, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("UpdateProfile: updating profile for user=%s", req.UserID)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("UpdateProfile: validation failed for user=%s: %v", req.UserID, err)
		return nil, err
	}

	profile := &domain.UserProfile{
		UserID:      req.UserID,
		DisplayName: strings.TrimSpace(req.DisplayName),
		NotifyEmail: strings.TrimSpace(req.NotifyEmail),
	}

	updated, err := s.profileRepo.Upsert(ctx, profile)
	if err != nil {
		s.logger.Error("UpdateProfile: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: successfully updated profile for user=%s", req.UserID)
	return models.FromDomainProfile(updated), nil
}

// validateUpdateRequest валидирует входные данные запроса
func validateUpdateRequest(req *models.UpdateProfileRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		return fmt.Errorf("%w: displayName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxDisplayNameLength {
		return fmt.Errorf("%w: displayName is too long", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.NotifyEmail)
	if email == "" {
		return fmt.Errorf("%w: notifyEmail is required", ErrInvalidInput)
	}
	if len(email) > domain.MaxEmailLength || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: notifyEmail is invalid", ErrInvalidInput)
	}

	return nil
}
