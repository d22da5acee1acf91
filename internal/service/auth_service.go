package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"droughtwatch/internal/metrics"
	"droughtwatch/internal/model"
	"droughtwatch/pkg/apierror"
)

const (
	// bcrypt work factor. Matches the cost the product launched with; lowering
	// it would weaken every stored hash going forward.
	passwordHashCost = 10

	// Tokens live exactly seven days from issuance. Fixed, not per-call.
	tokenTTL = 7 * 24 * time.Hour
)

type userStore interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
	Create(ctx context.Context, name string, email string, passwordHash string, role string) (model.User, error)
}

// AuthService verifies credentials, mints access tokens and validates bearer
// tokens. It holds no mutable state: the signing secret is loaded once and
// read-only, so every method is safe for concurrent use.
type AuthService struct {
	users     userStore
	jwtSecret []byte
}

// tokenClaims is the wire shape of an access token. user_id/email/role are
// trusted as of issuance; verification never re-reads the user row.
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func NewAuthService(jwtSecret string, users userStore) (*AuthService, error) {
	if strings.TrimSpace(jwtSecret) == "" {
		return nil, errors.New("jwt secret is required")
	}

	return &AuthService{users: users, jwtSecret: []byte(jwtSecret)}, nil
}

func (s *AuthService) Register(ctx context.Context, name string, email string, password string, role string) (model.AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || password == "" {
		return model.AuthResult{}, apierror.BadRequest("name, email and password are required", "")
	}

	if role == "" {
		role = model.RoleFarmer
	}
	if !model.ValidRole(role) {
		return model.AuthResult{}, apierror.BadRequest("invalid role", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return model.AuthResult{}, err
	}

	// No existence pre-check: the store's unique constraint is the source of
	// truth for email uniqueness and already comes back as a Conflict.
	user, err := s.users.Create(ctx, name, email, string(hash), role)
	if err != nil {
		return model.AuthResult{}, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return model.AuthResult{}, err
	}

	metrics.RegistrationsTotal.Inc()
	slog.Info("user registered", "user_id", user.ID, "role", user.Role)
	return model.AuthResult{User: user, Token: token}, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password produce the same error so callers cannot probe which emails are
// registered; the two cases are only told apart in debug logs.
func (s *AuthService) Login(ctx context.Context, email string, password string) (model.AuthResult, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return model.AuthResult{}, apierror.BadRequest("email and password are required", "")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		var apiErr *apierror.APIError
		if errors.As(err, &apiErr) && apiErr.Code == "NOT_FOUND" {
			slog.Debug("login rejected", "reason", "unknown email")
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return model.AuthResult{}, apierror.Unauthorized("invalid credentials")
		}
		return model.AuthResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		slog.Debug("login rejected", "reason", "password mismatch", "user_id", user.ID)
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return model.AuthResult{}, apierror.Unauthorized("invalid credentials")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return model.AuthResult{}, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return model.AuthResult{User: user, Token: token}, nil
}

// ValidateToken checks signature and expiry and returns the embedded claims.
// Every failure collapses to the same Unauthorized result.
func (s *AuthService) ValidateToken(tokenString string) (*model.AuthClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		reason := "invalid"
		if errors.Is(err, jwt.ErrTokenExpired) {
			reason = "expired"
		}
		slog.Debug("token rejected", "reason", reason)
		metrics.TokensRejectedTotal.WithLabelValues(reason).Inc()
		return nil, apierror.Unauthorized("invalid or expired token")
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || claims.UserID == 0 {
		metrics.TokensRejectedTotal.WithLabelValues("invalid").Inc()
		return nil, apierror.Unauthorized("invalid or expired token")
	}

	return &model.AuthClaims{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}

// GetUserByID backs the /auth/me endpoint; unlike token validation it does
// read the store, so it reflects the current user row.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) issueToken(user model.User) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
