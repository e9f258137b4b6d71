package apply_shift_action

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/ORS-BookingService/internal/domain"
	profileRepo "github.com/m04kA/ORS-BookingService/internal/infra/storage/profile"
	shiftRepo "github.com/m04kA/ORS-BookingService/internal/infra/storage/shift"
	identityClient "github.com/m04kA/ORS-BookingService/internal/integrations/identityservice"
)

// notifyTimeout таймаут фоновой отправки одного письма-подтверждения
const notifyTimeout = 15 * time.Second

// UseCase use case применения действия пользователя к смене
// Единая точка всех переходов состояния бронирования: запись, отмена,
// постановка в лист ожидания и выход из него, с продвижением очереди
// и кросс-сменной чисткой
type UseCase struct {
	shiftRepo      ShiftRepository
	profileRepo    ProfileRepository
	identityClient IdentityServiceClient
	notifier       Notifier
	txManager      TransactionManager
	timeProvider   TimeProvider
	limits         Limits
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	shiftRepo ShiftRepository,
	profileRepo ProfileRepository,
	identityClient IdentityServiceClient,
	notifier Notifier,
	txManager TransactionManager,
	limits Limits,
	logger Logger,
) *UseCase {
	return &UseCase{
		shiftRepo:      shiftRepo,
		profileRepo:    profileRepo,
		identityClient: identityClient,
		notifier:       notifier,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		limits:         limits,
		logger:         logger,
	}
}

// Execute выполняет действие пользователя над сменой
// Весь переход (чтение снапшота, eligibility, применение, проверка
// инварианта, запись) выполняется в сериализуемой транзакции с блокировкой
// строк смен; письма-подтверждения отправляются после коммита и не влияют
// на результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyShiftAction: user=%s, shift=%d", req.UserID, req.ShiftID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApplyShiftAction: validation failed: %v", err)
		return nil, err
	}

	// 2. Ограничиваем время всей операции
	ctx, cancel := context.WithTimeout(ctx, uc.limits.ActionTimeout)
	defer cancel()

	// 3. Получаем текущее время (один семпл на весь переход)
	now := uc.timeProvider.Now()

	// 4. Проверяем пользователя и допуск по институтскому домену
	user, err := uc.identityClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("ApplyShiftAction: user=%s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("ApplyShiftAction: failed to get user=%s: %v", req.UserID, err)
		return nil, uc.mapTimeout(ctx, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err))
	}

	if !strings.HasSuffix(strings.ToLower(user.LoginEmail), strings.ToLower(uc.limits.AllowedEmailSuffix)) {
		uc.logger.Warn("ApplyShiftAction: user=%s login email is outside the allowed domain", req.UserID)
		return nil, ErrEmailDomainNotAllowed
	}

	// 5. Читаем профиль: без имени и email бронирование невозможно
	profile, err := uc.profileRepo.Get(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			uc.logger.Warn("ApplyShiftAction: user=%s has no profile", req.UserID)
			return nil, ErrProfileIncomplete
		}
		uc.logger.Error("ApplyShiftAction: failed to get profile for user=%s: %v", req.UserID, err)
		return nil, uc.mapTimeout(ctx, fmt.Errorf("%w: failed to get profile: %v", ErrStorageUnavailable, err))
	}

	var (
		response *Response
		events   []domain.BookingConfirmed
	)

	// 6. Выполняем переход в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Свежий снапшот всех смен с блокировкой строк
		shifts, err := uc.shiftRepo.ListAll(txCtx)
		if err != nil {
			uc.logger.Error("ApplyShiftAction: failed to list shifts: %v", err)
			return fmt.Errorf("%w: failed to list shifts: %v", ErrStorageUnavailable, err)
		}

		// 6.2. Определяем допустимое действие
		action, err := evaluate(profile, req.ShiftID, shifts, now, uc.limits)
		if err != nil {
			uc.logger.Warn("ApplyShiftAction: denied for user=%s, shift=%d: %v", req.UserID, req.ShiftID, err)
			return err
		}

		uc.logger.Info("ApplyShiftAction: user=%s, shift=%d, action=%s", req.UserID, req.ShiftID, action)

		// 6.3. Применяем переход к копии снапшота
		actor := domain.ShiftEntry{
			UserID:      profile.UserID,
			DisplayName: profile.DisplayName,
			NotifyEmail: profile.NotifyEmail,
		}

		result, err := applyTransition(action, actor, req.ShiftID, shifts)
		if err != nil {
			return err
		}

		// 6.4. Инвариант единственной активной заявки для всех затронутых
		// пользователей (актор и, при продвижении, голова листа ожидания)
		if err := validateSingleClaim(result, shifts, result.AffectedUsers); err != nil {
			uc.logger.Warn("ApplyShiftAction: single-claim invariant violated for user=%s, shift=%d",
				req.UserID, req.ShiftID)
			return err
		}

		// 6.5. Сохраняем все затронутые смены с проверкой версий
		for _, s := range result.UpdatedShifts {
			if err := uc.shiftRepo.UpdateEntries(txCtx, s); err != nil {
				if errors.Is(err, shiftRepo.ErrVersionConflict) {
					uc.logger.Warn("ApplyShiftAction: version conflict on shift=%d", s.ID)
					return ErrConcurrentModification
				}
				uc.logger.Error("ApplyShiftAction: failed to update shift=%d: %v", s.ID, err)
				return fmt.Errorf("%w: failed to update shift: %v", ErrStorageUnavailable, err)
			}
		}

		events = result.Events
		response = buildResponse(action, result.UpdatedShifts[req.ShiftID])
		return nil
	})

	if err != nil {
		return nil, uc.mapTimeout(ctx, err)
	}

	uc.logger.Info("ApplyShiftAction: success, user=%s, shift=%d, action=%s, notifications=%d",
		req.UserID, req.ShiftID, response.Action, len(events))

	// 7. Отправляем подтверждения fire-and-forget: ошибка доставки
	// логируется и никогда не откатывает зафиксированный переход
	uc.dispatchNotifications(events)

	return response, nil
}

// dispatchNotifications асинхронно отправляет письма-подтверждения
func (uc *UseCase) dispatchNotifications(events []domain.BookingConfirmed) {
	for _, event := range events {
		go func(e domain.BookingConfirmed) {
			ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()

			if err := uc.notifier.SendBookingConfirmation(ctx, e.NotifyEmail, e.DisplayName, e.ShiftDate); err != nil {
				uc.logger.Error("ApplyShiftAction: failed to send confirmation to %s for %s: %v",
					e.NotifyEmail, e.ShiftDate, err)
				return
			}
			uc.logger.Info("ApplyShiftAction: confirmation sent to %s for %s", e.NotifyEmail, e.ShiftDate)
		}(event)
	}
}

// mapTimeout переводит истекший дедлайн операции в ErrTimeout
func (uc *UseCase) mapTimeout(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if req.ShiftID <= 0 {
		return fmt.Errorf("%w: shiftID must be positive", ErrInvalidInput)
	}
	return nil
}

// buildResponse собирает ответ из нового состояния целевой смены
func buildResponse(action domain.Action, s *domain.Shift) *Response {
	resp := &Response{
		Action:       action,
		ShiftID:      s.ID,
		Date:         s.Date,
		Participants: make([]Entry, len(s.Participants)),
		Waitlist:     make([]Entry, len(s.Waitlist)),
	}
	for i, p := range s.Participants {
		resp.Participants[i] = Entry{UserID: p.UserID, DisplayName: p.DisplayName}
	}
	for i, w := range s.Waitlist {
		resp.Waitlist[i] = Entry{UserID: w.UserID, DisplayName: w.DisplayName}
	}
	return resp
}
