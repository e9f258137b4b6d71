package domain

import "time"

// UserProfile кэшированные данные пользователя для бронирований
// Создается один раз при первом заполнении профиля и читается
// перед каждым действием, чтобы не запрашивать данные повторно
type UserProfile struct {
	UserID      string
	DisplayName string
	NotifyEmail string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsComplete проверяет, что профиль заполнен и пригоден для бронирования
func (p *UserProfile) IsComplete() bool {
	return p != nil && p.DisplayName != "" && p.NotifyEmail != ""
}
