package auth

import (
	"context"
	"testing"
	"time"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureMailer records the last code instead of delivering it.
type captureMailer struct {
	email string
	code  string
}

func (m *captureMailer) SendCode(_ context.Context, email, code string) error {
	m.email = email
	m.code = code
	return nil
}

func newAuthUseCase(t *testing.T) (*UseCase, *captureMailer) {
	t.Helper()
	mailer := &captureMailer{}
	uc := NewUseCase(
		memory.NewUserRepository(memory.NewSwipeRepository()),
		memory.NewCodeRepository(),
		memory.NewSessionRepository(),
		mailer,
		"0123456789abcdef0123456789abcdef",
		time.Hour,
		10*time.Minute,
	)
	return uc, mailer
}

func TestSendCodeValidation(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	assert.ErrorIs(t, uc.SendCode(context.Background(), "not-an-email"), domain.ErrInvalidArgument)
	assert.ErrorIs(t, uc.SendCode(context.Background(), ""), domain.ErrInvalidArgument)
}

func TestVerifyCodeCreatesUserOnFirstSignIn(t *testing.T) {
	uc, mailer := newAuthUseCase(t)
	ctx := context.Background()

	require.NoError(t, uc.SendCode(ctx, "Alex@Example.com"))
	assert.Equal(t, "alex@example.com", mailer.email)
	require.Len(t, mailer.code, 6)

	result, err := uc.VerifyCode(ctx, "alex@example.com", mailer.code)
	require.NoError(t, err)
	assert.True(t, result.IsNewUser)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "alex@example.com", result.User.Email)
	assert.Equal(t, "User", result.User.DisplayName, "identity is placeholder until onboarding")
}

func TestVerifyCodeExistingUser(t *testing.T) {
	uc, mailer := newAuthUseCase(t)
	ctx := context.Background()

	require.NoError(t, uc.SendCode(ctx, "alex@example.com"))
	first, err := uc.VerifyCode(ctx, "alex@example.com", mailer.code)
	require.NoError(t, err)

	require.NoError(t, uc.SendCode(ctx, "alex@example.com"))
	second, err := uc.VerifyCode(ctx, "alex@example.com", mailer.code)
	require.NoError(t, err)
	assert.False(t, second.IsNewUser)
	assert.Equal(t, first.User.ID, second.User.ID)
}

func TestVerifyCodeSingleUse(t *testing.T) {
	uc, mailer := newAuthUseCase(t)
	ctx := context.Background()

	require.NoError(t, uc.SendCode(ctx, "alex@example.com"))
	_, err := uc.VerifyCode(ctx, "alex@example.com", mailer.code)
	require.NoError(t, err)

	_, err = uc.VerifyCode(ctx, "alex@example.com", mailer.code)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestVerifyCodeWrongCode(t *testing.T) {
	uc, mailer := newAuthUseCase(t)
	ctx := context.Background()

	require.NoError(t, uc.SendCode(ctx, "alex@example.com"))
	wrong := "000000"
	if mailer.code == wrong {
		wrong = "000001"
	}
	_, err := uc.VerifyCode(ctx, "alex@example.com", wrong)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)

	// The right code still works; a miss does not consume it.
	_, err = uc.VerifyCode(ctx, "alex@example.com", mailer.code)
	assert.NoError(t, err)
}

func TestAuthenticateRoundTrip(t *testing.T) {
	uc, mailer := newAuthUseCase(t)
	ctx := context.Background()

	require.NoError(t, uc.SendCode(ctx, "alex@example.com"))
	result, err := uc.VerifyCode(ctx, "alex@example.com", mailer.code)
	require.NoError(t, err)

	session, err := uc.Authenticate(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, session.UserID)

	me, err := uc.Me(ctx, session.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", me.Email)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	_, err := uc.Authenticate(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestSignOutRevokesToken(t *testing.T) {
	uc, mailer := newAuthUseCase(t)
	ctx := context.Background()

	require.NoError(t, uc.SendCode(ctx, "alex@example.com"))
	result, err := uc.VerifyCode(ctx, "alex@example.com", mailer.code)
	require.NoError(t, err)

	session, err := uc.Authenticate(ctx, result.Token)
	require.NoError(t, err)
	require.NoError(t, uc.SignOut(ctx, session.SessionID))

	// The JWT itself is still unexpired, but the session is gone.
	_, err = uc.Authenticate(ctx, result.Token)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDeleteAccount(t *testing.T) {
	uc, mailer := newAuthUseCase(t)
	ctx := context.Background()

	require.NoError(t, uc.SendCode(ctx, "alex@example.com"))
	result, err := uc.VerifyCode(ctx, "alex@example.com", mailer.code)
	require.NoError(t, err)
	session, err := uc.Authenticate(ctx, result.Token)
	require.NoError(t, err)

	require.NoError(t, uc.DeleteAccount(ctx, session.UserID, session.SessionID))

	_, err = uc.Me(ctx, session.UserID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = uc.Authenticate(ctx, result.Token)
	assert.Error(t, err)
}
