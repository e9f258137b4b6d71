package models

import (
	"time"

	"github.com/m04kA/ORS-BookingService/internal/domain"
)

// Request модели

// UpdateProfileRequest запрос на создание или обновление профиля
type UpdateProfileRequest struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	NotifyEmail string `json:"notifyEmail"`
}

// Response модели

// ProfileResponse профиль пользователя
type ProfileResponse struct {
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName"`
	NotifyEmail string    `json:"notifyEmail"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromDomainProfile конвертирует доменный профиль в ответ сервиса
func FromDomainProfile(p *domain.UserProfile) *ProfileResponse {
	return &ProfileResponse{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		NotifyEmail: p.NotifyEmail,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
