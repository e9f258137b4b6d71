package apply_shift_action

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ORS-BookingService/internal/domain"
	profileRepo "github.com/m04kA/ORS-BookingService/internal/infra/storage/profile"
	shiftRepo "github.com/m04kA/ORS-BookingService/internal/infra/storage/shift"
	"github.com/m04kA/ORS-BookingService/internal/integrations/identityservice"
	"github.com/m04kA/ORS-BookingService/pkg/types"
)

// --- Фейки зависимостей ---

type fakeShiftRepo struct {
	shifts    []*domain.Shift
	listErr   error
	updateErr error
	updated   map[int64]*domain.Shift
}

func (f *fakeShiftRepo) ListAll(ctx context.Context) ([]*domain.Shift, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.shifts, nil
}

func (f *fakeShiftRepo) UpdateEntries(ctx context.Context, s *domain.Shift) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[int64]*domain.Shift)
	}
	f.updated[s.ID] = s
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*domain.UserProfile
	err      error
}

func (f *fakeProfileRepo) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, profileRepo.ErrProfileNotFound
	}
	return p, nil
}

type fakeIdentityClient struct {
	users map[string]*identityservice.User
	err   error
}

func (f *fakeIdentityClient) GetUser(ctx context.Context, userID string) (*identityservice.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[userID]
	if !ok {
		return nil, identityservice.ErrUserNotFound
	}
	return u, nil
}

type fakeNotifier struct {
	err  error
	sent chan domain.BookingConfirmed
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(chan domain.BookingConfirmed, 10)}
}

func (f *fakeNotifier) SendBookingConfirmation(ctx context.Context, toEmail, displayName string, shiftDate types.DateString) error {
	f.sent <- domain.BookingConfirmed{NotifyEmail: toEmail, DisplayName: displayName, ShiftDate: shiftDate}
	return f.err
}

type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Сборка usecase с фейками ---

type fixture struct {
	uc        *UseCase
	shiftRepo *fakeShiftRepo
	notifier  *fakeNotifier
}

func newFixture(t *testing.T, shifts []*domain.Shift, now time.Time) *fixture {
	t.Helper()

	shiftRepository := &fakeShiftRepo{shifts: shifts}
	notifier := newFakeNotifier()

	uc := NewUseCase(
		shiftRepository,
		&fakeProfileRepo{profiles: map[string]*domain.UserProfile{
			"u1": testProfile("u1"),
		}},
		&fakeIdentityClient{users: map[string]*identityservice.User{
			"u1": {ID: "u1", LoginEmail: "mario.rossi@studenti.uniroma1.it"},
		}},
		notifier,
		&fakeTxManager{},
		testLimits,
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: now}

	return &fixture{uc: uc, shiftRepo: shiftRepository, notifier: notifier}
}

func waitForNotification(t *testing.T, notifier *fakeNotifier) domain.BookingConfirmed {
	t.Helper()
	select {
	case e := <-notifier.sent:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation email was not dispatched")
		return domain.BookingConfirmed{}
	}
}

// --- Тесты ---

func TestExecute_BookSuccess(t *testing.T) {
	shifts := []*domain.Shift{testShift(1, "2025-10-15", []string{"u2"}, nil)}
	fx := newFixture(t, shifts, nowBefore(t, "2025-10-15", 100))

	resp, err := fx.uc.Execute(context.Background(), &Request{UserID: "u1", ShiftID: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.ActionBook, resp.Action)
	assert.Equal(t, int64(1), resp.ShiftID)
	require.Len(t, resp.Participants, 2)
	assert.Equal(t, "u1", resp.Participants[1].UserID)

	// Смена сохранена с новым составом
	require.NotNil(t, fx.shiftRepo.updated[1])
	assert.True(t, fx.shiftRepo.updated[1].IsParticipant("u1"))

	// Письмо-подтверждение отправлено после коммита
	event := waitForNotification(t, fx.notifier)
	assert.Equal(t, "mario.rossi@studenti.uniroma1.it", event.NotifyEmail)
	assert.Equal(t, types.DateString("2025-10-15"), event.ShiftDate)
}

func TestExecute_CancelPromotesAndNotifies(t *testing.T) {
	shifts := []*domain.Shift{
		testShift(1, "2025-10-15", []string{"u1", "p2", "p3"}, []string{"w1"}),
	}
	fx := newFixture(t, shifts, nowBefore(t, "2025-10-15", 100))

	resp, err := fx.uc.Execute(context.Background(), &Request{UserID: "u1", ShiftID: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.ActionCancel, resp.Action)
	require.Len(t, resp.Participants, 3)
	assert.Equal(t, "w1", resp.Participants[2].UserID)
	assert.Empty(t, resp.Waitlist)

	event := waitForNotification(t, fx.notifier)
	assert.Equal(t, "w1@studenti.uniroma1.it", event.NotifyEmail)
}

func TestExecute_JoinWaitlistWhenFull(t *testing.T) {
	shifts := []*domain.Shift{testShift(1, "2025-10-15", []string{"u2", "u3", "u4"}, nil)}
	fx := newFixture(t, shifts, nowBefore(t, "2025-10-15", 100))

	resp, err := fx.uc.Execute(context.Background(), &Request{UserID: "u1", ShiftID: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.ActionJoinWaitlist, resp.Action)
	require.Len(t, resp.Waitlist, 1)
	assert.Equal(t, "u1", resp.Waitlist[0].UserID)

	// Постановка в очередь писем не порождает
	select {
	case <-fx.notifier.sent:
		t.Fatal("no confirmation expected for a waitlist join")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestExecute_LeaveWaitlist(t *testing.T) {
	shifts := []*domain.Shift{
		testShift(1, "2025-10-15", []string{"u2", "u3", "u4"}, []string{"w1", "u1"}),
	}
	fx := newFixture(t, shifts, nowBefore(t, "2025-10-15", 100))

	resp, err := fx.uc.Execute(context.Background(), &Request{UserID: "u1", ShiftID: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.ActionLeaveWaitlist, resp.Action)
	require.Len(t, resp.Waitlist, 1)
	assert.Equal(t, "w1", resp.Waitlist[0].UserID)
}

func TestExecute_InvalidInput(t *testing.T) {
	fx := newFixture(t, nil, time.Now())

	_, err := fx.uc.Execute(context.Background(), &Request{UserID: "", ShiftID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = fx.uc.Execute(context.Background(), &Request{UserID: "u1", ShiftID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_UserNotFound(t *testing.T) {
	shifts := []*domain.Shift{testShift(1, "2025-10-15", nil, nil)}
	fx := newFixture(t, shifts, nowBefore(t, "2025-10-15", 100))

	_, err := fx.uc.Execute(context.Background(), &Request{UserID: "ghost", ShiftID: 1})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_EmailDomainNotAllowed(t *testing.T) {
	shifts := []*domain.Shift{testShift(1, "2025-10-15", nil, nil)}
	fx := newFixture(t, shifts, nowBefore(t, "2025-10-15", 100))

	uc := NewUseCase(
		fx.shiftRepo,
		&fakeProfileRepo{profiles: map[string]*domain.UserProfile{"u1": testProfile("u1")}},
		&fakeIdentityClient{users: map[string]*identityservice.User{
			"u1": {ID: "u1", LoginEmail: "mario.rossi@gmail.com"},
		}},
		fx.notifier,
		&fakeTxManager{},
		testLimits,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: "u1", ShiftID: 1})
	assert.ErrorIs(t, err, ErrEmailDomainNotAllowed)
}

func TestExecute_ProfileIncomplete(t *testing.T) {
	shifts := []*domain.Shift{testShift(1, "2025-10-15", nil, nil)}
	fx := newFixture(t, shifts, nowBefore(t, "2025-10-15", 100))

	uc := NewUseCase(
		fx.shiftRepo,
		&fakeProfileRepo{profiles: map[string]*domain.UserProfile{}},
		&fakeIdentityClient{users: map[string]*identityservice.User{
			"u1": {ID: "u1", LoginEmail: "mario.rossi@studenti.uniroma1.it"},
		}},
		fx.notifier,
		&fakeTxManager{},
		testLimits,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{UserID: "u1", ShiftID: 1})
	assert.ErrorIs(t, err, ErrProfileIncomplete)
}

func TestExecute_VersionConflict(t *testing.T) {
	shifts := []*domain.Shift{testShift(1, "2025-10-15", nil, nil)}
	fx := newFixture(t, shifts, nowBefore(t, "2025-10-15", 100))
	fx.shiftRepo.updateErr = shiftRepo.ErrVersionConflict

	_, err := fx.uc.Execute(context.Background(), &Request{UserID: "u1", ShiftID: 1})
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestExecute_StorageUnavailable(t *testing.T) {
	shifts := []*domain.Shift{testShift(1, "2025-10-15", nil, nil)}
	fx := newFixture(t, shifts, nowBefore(t, "2025-10-15", 100))
	fx.shiftRepo.listErr = errors.New("connection refused")

	_, err := fx.uc.Execute(context.Background(), &Request{UserID: "u1", ShiftID: 1})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestExecute_Timeout(t *testing.T) {
	shifts := []*domain.Shift{testShift(1, "2025-10-15", nil, nil)}
	fx := newFixture(t, shifts, nowBefore(t, "2025-10-15", 100))

	uc := NewUseCase(
		fx.shiftRepo,
		&fakeProfileRepo{profiles: map[string]*domain.UserProfile{"u1": testProfile("u1")}},
		&fakeIdentityClient{users: map[string]*identityservice.User{
			"u1": {ID: "u1", LoginEmail: "mario.rossi@studenti.uniroma1.it"},
		}},
		fx.notifier,
		&fakeTxManager{err: context.DeadlineExceeded},
		testLimits,
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: nowBefore(t, "2025-10-15", 100)}

	_, err := uc.Execute(context.Background(), &Request{UserID: "u1", ShiftID: 1})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestExecute_NotificationFailureDoesNotFailAction(t *testing.T) {
	shifts := []*domain.Shift{testShift(1, "2025-10-15", nil, nil)}
	fx := newFixture(t, shifts, nowBefore(t, "2025-10-15", 100))
	fx.notifier.err = errors.New("emailjs is down")

	resp, err := fx.uc.Execute(context.Background(), &Request{UserID: "u1", ShiftID: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionBook, resp.Action)

	// Отправка была, её ошибка результат не меняет
	waitForNotification(t, fx.notifier)
}

func TestExecute_CancelCutoffDenied(t *testing.T) {
	shifts := []*domain.Shift{testShift(1, "2025-10-15", []string{"u1"}, nil)}
	fx := newFixture(t, shifts, nowBefore(t, "2025-10-15", 10))

	_, err := fx.uc.Execute(context.Background(), &Request{UserID: "u1", ShiftID: 1})
	assert.ErrorIs(t, err, ErrCancelCutoffViolation)
}
