package profiles

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ORS-BookingService/internal/domain"
	profileRepo "github.com/m04kA/ORS-BookingService/internal/infra/storage/profile"
	"github.com/m04kA/ORS-BookingService/internal/service/profiles/models"
)

type fakeProfileRepo struct {
	profiles map[string]*domain.UserProfile
	getErr   error
	upsertEr error
}

func (f *fakeProfileRepo) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, profileRepo.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	if f.upsertEr != nil {
		return nil, f.upsertEr
	}
	if f.profiles == nil {
		f.profiles = make(map[string]*domain.UserProfile)
	}
	f.profiles[p.UserID] = p
	return p, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGet(t *testing.T) {
	repo := &fakeProfileRepo{profiles: map[string]*domain.UserProfile{
		"u1": {UserID: "u1", DisplayName: "Mario Rossi", NotifyEmail: "mario@studenti.uniroma1.it"},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Mario Rossi", resp.DisplayName)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(&fakeProfileRepo{}, nopLogger{})

	_, err := svc.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGet_EmptyUserID(t *testing.T) {
	svc := NewService(&fakeProfileRepo{}, nopLogger{})

	_, err := svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGet_RepositoryError(t *testing.T) {
	svc := NewService(&fakeProfileRepo{getErr: errors.New("connection refused")}, nopLogger{})

	_, err := svc.Get(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdate(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateProfileRequest{
		UserID:      "u1",
		DisplayName: "  Mario Rossi  ",
		NotifyEmail: " mario@studenti.uniroma1.it ",
	})
	require.NoError(t, err)

	// Пробелы по краям отбрасываются до сохранения
	assert.Equal(t, "Mario Rossi", resp.DisplayName)
	assert.Equal(t, "mario@studenti.uniroma1.it", resp.NotifyEmail)
	assert.NotNil(t, repo.profiles["u1"])
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewService(&fakeProfileRepo{}, nopLogger{})

	cases := []struct {
		name string
		req  *models.UpdateProfileRequest
	}{
		{"empty user", &models.UpdateProfileRequest{DisplayName: "Mario", NotifyEmail: "m@x.it"}},
		{"empty name", &models.UpdateProfileRequest{UserID: "u1", NotifyEmail: "m@x.it"}},
		{"blank name", &models.UpdateProfileRequest{UserID: "u1", DisplayName: "   ", NotifyEmail: "m@x.it"}},
		{"name too long", &models.UpdateProfileRequest{
			UserID:      "u1",
			DisplayName: strings.Repeat("a", domain.MaxDisplayNameLength+1),
			NotifyEmail: "m@x.it",
		}},
		{"empty email", &models.UpdateProfileRequest{UserID: "u1", DisplayName: "Mario"}},
		{"email without at", &models.UpdateProfileRequest{UserID: "u1", DisplayName: "Mario", NotifyEmail: "mario.it"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_RepositoryError(t *testing.T) {
	svc := NewService(&fakeProfileRepo{upsertEr: errors.New("connection refused")}, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateProfileRequest{
		UserID:      "u1",
		DisplayName: "Mario",
		NotifyEmail: "mario@studenti.uniroma1.it",
	})
	assert.ErrorIs(t, err, ErrInternal)
}
