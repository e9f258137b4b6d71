package identityservice

// User модель пользователя из IdentityService
type User struct {
	ID         string `json:"id"`
	LoginEmail string `json:"login_email"`
}

// ErrorResponse модель ошибки от IdentityService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
