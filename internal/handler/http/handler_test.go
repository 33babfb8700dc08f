package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avkhamov/userhub/internal/config"
	"github.com/avkhamov/userhub/internal/logger"
	"github.com/avkhamov/userhub/internal/service"
	"github.com/avkhamov/userhub/internal/store"
	"github.com/avkhamov/userhub/internal/utils"
	"github.com/avkhamov/userhub/models"
)

// memoryRepository is an in-memory store.UserRepository used to drive the
// full router stack in tests without a database.
type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{users: make(map[int64]models.User)}
}

func (m *memoryRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}

	m.nextID++
	user.UserID = m.nextID
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user

	return user, nil
}

func (m *memoryRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *memoryRepository) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func (m *memoryRepository) UpdateProfile(_ context.Context, userID int64, fullName, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}

	if email != "" {
		for id, existing := range m.users {
			if id != userID && existing.Email == email {
				return models.User{}, store.ErrEmailAlreadyExists
			}
		}
		user.Email = email
	}
	if fullName != "" {
		user.FullName = fullName
	}

	m.users[userID] = user
	return user, nil
}

func (m *memoryRepository) UpdatePassword(_ context.Context, userID int64, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return store.ErrNoUserWasFound
	}
	user.PasswordHash = passwordHash
	m.users[userID] = user
	return nil
}

func (m *memoryRepository) UpdateRole(_ context.Context, userID int64, role models.Role) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	user.Role = role
	m.users[userID] = user
	return user, nil
}

func (m *memoryRepository) UpdateStatus(_ context.Context, userID int64, status models.Status) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	user.Status = status
	m.users[userID] = user
	return user, nil
}

func (m *memoryRepository) UpdateLastLogin(_ context.Context, userID int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return store.ErrNoUserWasFound
	}
	user.LastLogin = &at
	m.users[userID] = user
	return nil
}

func (m *memoryRepository) ListUsers(_ context.Context, limit, offset int) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]models.User, 0, limit)
	for i := offset; i < len(ids) && len(users) < limit; i++ {
		users = append(users, m.users[ids[i]])
	}
	return users, nil
}

func (m *memoryRepository) CountUsers(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return int64(len(m.users)), nil
}

// testEnv wires the real services and router on top of the in-memory store.
type testEnv struct {
	router   http.Handler
	repo     *memoryRepository
	services *service.Services
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repo := newMemoryRepository()
	log := logger.Nop()

	services := &service.Services{
		AuthService: service.NewAuthService(repo, config.Auth{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "userhub-test",
			TokenDuration: time.Hour,
		}, log),
		UserService: service.NewUserService(repo, log),
	}

	handler := NewHandler(services, config.Server{}, log)

	return &testEnv{
		router:   handler.Init(),
		repo:     repo,
		services: services,
	}
}

// seedUser creates an account directly in the store, bypassing registration
// validation, and returns the stored record.
func (e *testEnv) seedUser(t *testing.T, fullName, email, password string, role models.Role, status models.Status) models.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user, err := e.repo.CreateUser(context.Background(), models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       status,
	})
	require.NoError(t, err)

	return user
}

// tokenFor issues a bearer token for the given user.
func (e *testEnv) tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := e.services.AuthService.CreateToken(context.Background(), user)
	require.NoError(t, err)

	return token.SignedString
}

// doRequest sends one request through the full router. A non-empty token is
// attached as a bearer Authorization header; a non-nil body is JSON-encoded.
func (e *testEnv) doRequest(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	return rec
}

// decodeBody unmarshals the recorded response body into T.
func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
