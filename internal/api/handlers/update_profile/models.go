package update_profile

// UpdateProfileRequest тело запроса на обновление профиля
// userId берется из пути, а не из тела
type UpdateProfileRequest struct {
	DisplayName string `json:"displayName"`
	NotifyEmail string `json:"notifyEmail"`
}
