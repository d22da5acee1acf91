package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droughtwatch/internal/model"
	"droughtwatch/pkg/apierror"
)

// memUserStore is an in-memory userStore with the same uniqueness contract as
// the real repository: Create fails with a Conflict when the email is taken.
type memUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]model.User{}}
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[email]
	if !ok {
		return model.User{}, apierror.NotFound("user not found", "")
	}
	return u, nil
}

func (m *memUserStore) FindByID(_ context.Context, id int64) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, apierror.NotFound("user not found", "")
}

func (m *memUserStore) Create(_ context.Context, name string, email string, passwordHash string, role string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[email]; exists {
		return model.User{}, apierror.Conflict("email already registered", "email")
	}

	m.nextID++
	now := time.Now().UTC()
	u := model.User{
		ID:           m.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.users[email] = u
	return u, nil
}

func newTestAuthService(t *testing.T) (*AuthService, *memUserStore) {
	t.Helper()

	store := newMemUserStore()
	svc, err := NewAuthService("test-secret", store)
	require.NoError(t, err)
	return svc, store
}

func TestNewAuthService_RequiresSecret(t *testing.T) {
	_, err := NewAuthService("", newMemUserStore())
	assert.Error(t, err)

	_, err = NewAuthService("   ", newMemUserStore())
	assert.Error(t, err)
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Ana", "ana@x.co", "secret123", "")
	require.NoError(t, err)
	assert.Equal(t, "ana@x.co", registered.User.Email)
	assert.Equal(t, model.RoleFarmer, registered.User.Role)
	assert.NotEmpty(t, registered.Token)

	loggedIn, err := svc.Login(ctx, "ana@x.co", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.Equal(t, registered.User.Email, loggedIn.User.Email)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		for _, tc := range []struct {
			name, email, password string
		}{
			{"", "a@x.co", "pw"},
			{"Ana", "", "pw"},
			{"Ana", "a@x.co", ""},
		} {
			_, err := svc.Register(ctx, tc.name, tc.email, tc.password, "")
			var apiErr *apierror.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, "BAD_REQUEST", apiErr.Code)
		}
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, "Ana", "role@x.co", "pw123456", "superuser")
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "BAD_REQUEST", apiErr.Code)
	})

	t.Run("explicit valid role kept", func(t *testing.T) {
		result, err := svc.Register(ctx, "Rex", "rex@x.co", "pw123456", model.RoleResearcher)
		require.NoError(t, err)
		assert.Equal(t, model.RoleResearcher, result.User.Role)
	})
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "dup@x.co", "secret123", "")
	require.NoError(t, err)

	// Conflict regardless of password or role supplied.
	_, err = svc.Register(ctx, "Other", "dup@x.co", "different-pw", model.RoleAdmin)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "ALREADY_EXISTS", apiErr.Code)
}

func TestAuthService_LoginFailuresIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "ana@x.co", "secret123", "")
	require.NoError(t, err)

	_, wrongPwErr := svc.Login(ctx, "ana@x.co", "wrong")
	_, unknownErr := svc.Login(ctx, "nobody@x.co", "whatever")

	var wrongPw, unknown *apierror.APIError
	require.ErrorAs(t, wrongPwErr, &wrongPw)
	require.ErrorAs(t, unknownErr, &unknown)

	// Same code, same message, same status: no user-enumeration signal.
	assert.Equal(t, wrongPw.Code, unknown.Code)
	assert.Equal(t, wrongPw.Message, unknown.Message)
	assert.Equal(t, wrongPw.HTTPStatus, unknown.HTTPStatus)
	assert.Equal(t, "UNAUTHORIZED", wrongPw.Code)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, "Ana", "ana@x.co", "secret123", model.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, "ana@x.co", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	svc, _ := newTestAuthService(t)

	// Craft a token signed with the service's secret but already expired.
	now := time.Now().UTC()
	expired := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		UserID: 1,
		Email:  "ana@x.co",
		Role:   model.RoleFarmer,
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
}

func TestAuthService_ValidateToken_Tampered(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, "Ana", "ana@x.co", "secret123", "")
	require.NoError(t, err)

	parts := strings.Split(result.Token, ".")
	require.Len(t, parts, 3)

	// Flip one character of the signature segment.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.ValidateToken(tampered)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	svc, _ := newTestAuthService(t)

	otherStore := newMemUserStore()
	otherSvc, err := NewAuthService("another-secret", otherStore)
	require.NoError(t, err)

	result, err := otherSvc.Register(context.Background(), "Ana", "ana@x.co", "secret123", "")
	require.NoError(t, err)

	_, err = svc.ValidateToken(result.Token)
	assert.Error(t, err)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ValidateToken("not-a-token")
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
}

func TestAuthService_LoginPreservesUnavailable(t *testing.T) {
	svc, err := NewAuthService("test-secret", unavailableStore{})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "ana@x.co", "secret123")
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "UNAVAILABLE", apiErr.Code)
}

// unavailableStore simulates unreachable storage.
type unavailableStore struct{}

func (unavailableStore) FindByEmail(context.Context, string) (model.User, error) {
	return model.User{}, apierror.Unavailable("storage unavailable")
}

func (unavailableStore) FindByID(context.Context, int64) (model.User, error) {
	return model.User{}, apierror.Unavailable("storage unavailable")
}

func (unavailableStore) Create(context.Context, string, string, string, string) (model.User, error) {
	return model.User{}, apierror.Unavailable("storage unavailable")
}
