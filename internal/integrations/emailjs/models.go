package emailjs

// sendRequest тело запроса к EmailJS REST API
// https://api.emailjs.com/api/v1.0/email/send
type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

// templateParams параметры шаблона письма-подтверждения
type templateParams struct {
	ToEmail string `json:"to_email"`
	Nome    string `json:"nome"`
	Data    string `json:"data"`
}
