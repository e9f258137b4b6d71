package emailjs

import "errors"

var (
	// ErrSendFailed возвращается, когда EmailJS отклонил отправку письма
	ErrSendFailed = errors.New("emailjs client: failed to send email")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("emailjs client: internal error")
)
