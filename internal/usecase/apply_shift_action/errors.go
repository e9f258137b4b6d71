package apply_shift_action

import "errors"

var (
	// ErrShiftNotFound возвращается, когда смена не найдена
	ErrShiftNotFound = errors.New("apply_shift_action: shift not found")

	// ErrProfileIncomplete возвращается, когда профиль пользователя не заполнен
	// Вызывающий собирает имя и email отдельным шагом и повторяет действие
	ErrProfileIncomplete = errors.New("apply_shift_action: user profile is incomplete")

	// ErrAlreadyBookedElsewhere возвращается, когда у пользователя уже есть
	// подтвержденное место на другой смене
	ErrAlreadyBookedElsewhere = errors.New("apply_shift_action: user already has a confirmed seat on another shift")

	// ErrCancelCutoffViolation возвращается при попытке отменить запись
	// ближе чем за cancel_cutoff_hours до начала смены
	ErrCancelCutoffViolation = errors.New("apply_shift_action: too late to cancel the booking")

	// ErrLeaveWaitlistCutoffViolation возвращается при попытке покинуть лист
	// ожидания ближе чем за leave_waitlist_cutoff_hours до начала смены
	ErrLeaveWaitlistCutoffViolation = errors.New("apply_shift_action: too late to leave the waitlist")

	// ErrShiftFullAndWaitlistFull возвращается, когда заняты все места
	// и лист ожидания заполнен
	ErrShiftFullAndWaitlistFull = errors.New("apply_shift_action: shift is full and waitlist is full")

	// ErrConcurrentModification возвращается, когда смены изменились между
	// чтением и записью; вызывающий повторяет попытку с новым снапшотом
	ErrConcurrentModification = errors.New("apply_shift_action: concurrent modification detected")

	// ErrEmailDomainNotAllowed возвращается, когда логин-email пользователя
	// не принадлежит институтскому домену
	ErrEmailDomainNotAllowed = errors.New("apply_shift_action: login email domain is not allowed")

	// ErrUserNotFound возвращается, когда пользователь не найден в IdentityService
	ErrUserNotFound = errors.New("apply_shift_action: user not found")

	// ErrTimeout возвращается, когда операция не уложилась в таймаут
	ErrTimeout = errors.New("apply_shift_action: operation timed out")

	// ErrStorageUnavailable возвращается при ошибках ввода-вывода хранилища,
	// фатально для текущей попытки, без автоматического повтора
	ErrStorageUnavailable = errors.New("apply_shift_action: storage unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("apply_shift_action: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("apply_shift_action: internal error")
)
