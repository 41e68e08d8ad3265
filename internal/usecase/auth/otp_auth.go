package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/infrastructure/mail"
	"github.com/JSharma2K/cofounded/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type UseCase struct {
	userRepo    repository.UserRepository
	codeRepo    repository.CodeRepository
	sessionRepo repository.SessionRepository
	mailer      mail.Mailer
	jwtSecret   string
	jwtExpiry   time.Duration
	codeTTL     time.Duration
}

func NewUseCase(
	userRepo repository.UserRepository,
	codeRepo repository.CodeRepository,
	sessionRepo repository.SessionRepository,
	mailer mail.Mailer,
	jwtSecret string,
	jwtExpiry time.Duration,
	codeTTL time.Duration,
) *UseCase {
	return &UseCase{
		userRepo:    userRepo,
		codeRepo:    codeRepo,
		sessionRepo: sessionRepo,
		mailer:      mailer,
		jwtSecret:   jwtSecret,
		jwtExpiry:   jwtExpiry,
		codeTTL:     codeTTL,
	}
}

// AuthResponse represents a successful code verification.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
	IsNewUser bool         `json:"is_new_user"`
}

// SendCode generates a one-time code for the email and hands it to the
// mailer. The stored copy is a SHA-256 digest with a short TTL.
func (uc *UseCase) SendCode(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email", domain.ErrInvalidArgument)
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	if err := uc.codeRepo.Store(ctx, email, hashCode(code), uc.codeTTL); err != nil {
		return fmt.Errorf("%w: failed to store code: %v", domain.ErrUnavailable, err)
	}

	if err := uc.mailer.SendCode(ctx, email, code); err != nil {
		return fmt.Errorf("%w: failed to deliver code: %v", domain.ErrUnavailable, err)
	}
	return nil
}

// VerifyCode checks the one-time code, creates the user row on first sign-in
// and issues a session token.
func (uc *UseCase) VerifyCode(ctx context.Context, email, code string) (*AuthResponse, error) {
	email = normalizeEmail(email)
	if email == "" || code == "" {
		return nil, fmt.Errorf("%w: email and code are required", domain.ErrInvalidArgument)
	}

	ok, err := uc.codeRepo.Consume(ctx, email, hashCode(code))
	if err != nil {
		return nil, fmt.Errorf("%w: code check failed: %v", domain.ErrUnavailable, err)
	}
	if !ok {
		return nil, domain.ErrInvalidCode
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	isNewUser := false
	if errors.Is(err, domain.ErrUserNotFound) {
		// First successful authentication creates the user record with
		// placeholder identity; onboarding fills it in.
		user = &domain.User{
			ID:          uuid.New().String(),
			Email:       email,
			DisplayName: "User",
			AgeBand:     domain.AgeBand19To22,
			Timezone:    "UTC",
			Languages:   []string{"English"},
			Role:        domain.RoleFounder,
		}
		if err := uc.userRepo.Upsert(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		isNewUser = true
	} else if err != nil {
		return nil, err
	}

	sessionID := uuid.New().String()
	expiresAt := time.Now().Add(uc.jwtExpiry)
	if err := uc.sessionRepo.Create(ctx, sessionID, user.ID, uc.jwtExpiry); err != nil {
		return nil, fmt.Errorf("%w: failed to create session: %v", domain.ErrUnavailable, err)
	}

	token, err := uc.signToken(user.ID, sessionID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
		IsNewUser: isNewUser,
	}, nil
}

// Session is the parsed, validated identity behind a bearer token.
type Session struct {
	UserID    string
	SessionID string
}

// Authenticate parses the token and checks the session is still live so a
// signed-out token is rejected before its JWT expiry.
func (uc *UseCase) Authenticate(ctx context.Context, tokenString string) (*Session, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", domain.ErrInvalidArgument)
	}

	userID, err := uc.sessionRepo.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: session expired", domain.ErrInvalidArgument)
		}
		return nil, fmt.Errorf("%w: session check failed: %v", domain.ErrUnavailable, err)
	}
	if userID != claims.Subject {
		return nil, fmt.Errorf("%w: session mismatch", domain.ErrInvalidArgument)
	}

	return &Session{UserID: userID, SessionID: claims.ID}, nil
}

// SignOut revokes the session behind the token.
func (uc *UseCase) SignOut(ctx context.Context, sessionID string) error {
	return uc.sessionRepo.Delete(ctx, sessionID)
}

// DeleteAccount removes the user and, via cascading constraints, their
// profile, intent, swipes, matches, messages and reports.
func (uc *UseCase) DeleteAccount(ctx context.Context, userID, sessionID string) error {
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	return uc.sessionRepo.Delete(ctx, sessionID)
}

// Me returns the authenticated user's own record.
func (uc *UseCase) Me(ctx context.Context, userID string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UseCase) signToken(userID, sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(uc.jwtSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
