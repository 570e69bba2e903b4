package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/edupulse/internal/api/http/handlers"
	"github.com/spec-kit/edupulse/internal/auth"
	"github.com/spec-kit/edupulse/internal/config"
	"github.com/spec-kit/edupulse/internal/domain"
	"github.com/spec-kit/edupulse/internal/events"
	"github.com/spec-kit/edupulse/internal/observability"
	"github.com/spec-kit/edupulse/internal/persistence"
	"github.com/spec-kit/edupulse/internal/repository"
	"github.com/spec-kit/edupulse/internal/service"
	"github.com/spec-kit/edupulse/internal/worker"
)

type memUserRepo struct {
	byEmail map[string]*domain.User
	created []*domain.User
}

func (m *memUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = "user-" + user.Email
	m.byEmail[user.Email] = user
	m.created = append(m.created, user)
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range m.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if user, ok := m.byEmail[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *memUserRepo) List(_ context.Context, filter repository.UserFilter) ([]*domain.User, error) {
	var users []*domain.User
	for _, user := range m.byEmail {
		if filter.Role != nil && user.Role != *filter.Role {
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func (m *memUserRepo) Delete(_ context.Context, id string) error {
	for email, user := range m.byEmail {
		if user.ID == id {
			delete(m.byEmail, email)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *memUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.byEmail)), nil
}

func (m *memUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var count int64
	for _, user := range m.byEmail {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

type memActivityRepo struct {
	entries []*domain.ActivityLog
}

func (m *memActivityRepo) Insert(_ context.Context, log *domain.ActivityLog) error {
	m.entries = append(m.entries, log)
	return nil
}

func (m *memActivityRepo) ListRecent(_ context.Context, limit int) ([]*domain.ActivityLog, error) {
	if len(m.entries) < limit {
		limit = len(m.entries)
	}
	out := make([]*domain.ActivityLog, 0, limit)
	for i := len(m.entries) - 1; i >= len(m.entries)-limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

func seed(t *testing.T, users *memUserRepo, email, password string, role domain.Role) {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	users.byEmail[email] = &domain.User{
		ID:             "user-" + email,
		Email:          email,
		HashedPassword: hash,
		Role:           role,
		IsActive:       true,
	}
}

func newTestServer(t *testing.T) (*fiber.App, *memUserRepo, *memActivityRepo) {
	t.Helper()

	users := &memUserRepo{byEmail: make(map[string]*domain.User)}
	seed(t, users, "admin@edu.com", "adminpass", domain.RoleAdmin)
	seed(t, users, "faculty@edu.com", "facultypass", domain.RoleFaculty)

	activity := &memActivityRepo{}

	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:             "router-test-secret",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            bcrypt.MinCost,
	}}

	dispatcher := events.NewInMemoryDispatcher()
	logger := zap.NewNop()

	authService := service.NewAuthService(cfg, users, dispatcher, nil)
	userService := service.NewUserService(users, dispatcher, cfg.Auth.BcryptCost)
	reportService := service.NewReportService(users, nil, nil, nil)
	academicService := service.NewAcademicService(nil, nil, nil)
	auditService := service.NewAuditService(dispatcher, activity, logger)

	worker.StartAuditWorker(auditService)

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("test", "dev", &persistence.Postgres{}, &persistence.Redis{}),
		Auth:           handlers.NewAuthHandler(authService),
		Admin:          handlers.NewAdminHandler(userService, reportService, auditService),
		Academic:       handlers.NewAcademicHandler(academicService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), users),
	})

	return app, users, activity
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	form := "username=" + email + "&password=" + password
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "bearer", payload.TokenType)
	require.NotEmpty(t, payload.AccessToken)
	return payload.AccessToken
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload.Error.Code
}

func TestLoginAndSelfLookup(t *testing.T) {
	app, _, activity := newTestServer(t)

	token := login(t, app, "admin@edu.com", "adminpass")

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "admin@edu.com")
	require.NotContains(t, string(body), "hashed_password")

	// login was audited through the event pipeline
	require.Len(t, activity.entries, 1)
	require.Equal(t, "LOGIN", activity.entries[0].Action)
	require.Equal(t, "user-admin@edu.com", activity.entries[0].UserID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _, _ := newTestServer(t)

	form := "username=admin@edu.com&password=wrong"
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
	require.Equal(t, "UNAUTHORIZED", errorCode(t, resp))
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	app, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
}

func TestFacultyCannotCreateUsers(t *testing.T) {
	app, users, _ := newTestServer(t)

	token := login(t, app, "faculty@edu.com", "facultypass")

	body, err := json.Marshal(map[string]string{
		"email":    "student@edu.com",
		"password": "studentpass",
		"role":     "student",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, "FORBIDDEN", errorCode(t, resp))
	require.Empty(t, users.created, "forbidden request must not create a record")
}

func TestAdminCreatesAndDeletesUser(t *testing.T) {
	app, users, activity := newTestServer(t)

	token := login(t, app, "admin@edu.com", "adminpass")

	body, err := json.Marshal(map[string]string{
		"email":     "student@edu.com",
		"full_name": "Sam Student",
		"password":  "studentpass",
		"role":      "student",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, users.created, 1)

	// the freshly created student can log in
	login(t, app, "student@edu.com", "studentpass")

	delReq := httptest.NewRequest(http.MethodDelete, "/admin/users/user-student@edu.com", nil)
	delReq.Header.Set("Authorization", "Bearer "+token)
	delResp, err := app.Test(delReq)
	require.NoError(t, err)
	defer delResp.Body.Close()
	require.Equal(t, http.StatusOK, delResp.StatusCode)

	actions := make([]string, 0, len(activity.entries))
	for _, entry := range activity.entries {
		actions = append(actions, entry.Action)
	}
	require.Contains(t, actions, "USER_CREATE")
	require.Contains(t, actions, "USER_DELETE")
}

func TestAdminLogsEndpoint(t *testing.T) {
	app, _, _ := newTestServer(t)

	token := login(t, app, "admin@edu.com", "adminpass")

	req := httptest.NewRequest(http.MethodGet, "/admin/logs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "LOGIN")
}

func TestAdminStats(t *testing.T) {
	app, _, _ := newTestServer(t)

	token := login(t, app, "admin@edu.com", "adminpass")

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		TotalUsers   int64 `json:"total_users"`
		TotalFaculty int64 `json:"total_faculty"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	require.Equal(t, int64(2), stats.TotalUsers)
	require.Equal(t, int64(1), stats.TotalFaculty)
}
