package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/ORS-BookingService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент EmailJS для отправки писем-подтверждений
// Отправка best-effort: ошибка доставки логируется вызывающим кодом
// и никогда не откатывает зафиксированное бронирование
type Client struct {
	baseURL    string
	serviceID  string
	templateID string
	userID     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента EmailJS
func NewClient(baseURL, serviceID, templateID, userID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		serviceID:  serviceID,
		templateID: templateID,
		userID:     userID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmation отправляет письмо-подтверждение места на смене
func (c *Client) SendBookingConfirmation(ctx context.Context, toEmail, displayName string, shiftDate types.DateString) error {
	payload := sendRequest{
		ServiceID:  c.serviceID,
		TemplateID: c.templateID,
		UserID:     c.userID,
		TemplateParams: templateParams{
			ToEmail: toEmail,
			Nome:    displayName,
			Data:    shiftDate.String(),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	reqURL := c.baseURL + "/api/v1.0/email/send"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status code %d: %s", ErrSendFailed, resp.StatusCode, string(respBody))
	}

	return nil
}
