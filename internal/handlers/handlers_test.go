package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboardhq/team_board_app/internal/adapters/database/memory"
	"github.com/teamboardhq/team_board_app/internal/core/services"
	"github.com/teamboardhq/team_board_app/internal/dto"
	"github.com/teamboardhq/team_board_app/internal/platform/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore(memory.Options{})
	data, err := memory.SampleData()
	require.NoError(t, err)
	store.Seed(data)

	cfg := &config.Config{
		Port:              "8080",
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
	}
	container := services.NewServiceContainer(cfg, memory.NewRepositoryProvider(store))

	r := gin.New()
	RegisterRoutes(r, cfg, container, nil)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    email,
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestLoginSuccessReturnsTokenAndProfile(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "alex@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Alex Johnson", resp.User.Name)
	assert.Equal(t, "admin", resp.User.Role.RoleID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "alex@example.com",
		Password: "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestLoginValidatesRequestBody(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutIsIdempotent(t *testing.T) {
	r := newTestRouter(t)

	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/logout", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/workspaces", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/auth/profile", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileReturnsSignedInMember(t *testing.T) {
	r := newTestRouter(t)
	token := loginAs(t, r, "maria@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/v1/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.TeamMemberResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Maria Gomez", resp.Name)
	assert.Equal(t, "manager", resp.Role.RoleID)
}

func TestWorkspaceFlow(t *testing.T) {
	r := newTestRouter(t)
	token := loginAs(t, r, "alex@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/v1/workspaces", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.ListWorkspacesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Workspaces, 2)
	require.NotNil(t, list.CurrentWorkspace)
	assert.Equal(t, "1", list.CurrentWorkspace.WorkspaceID)
	assert.Equal(t, 2, list.Workspaces[0].ProjectCount)

	w = doJSON(t, r, http.MethodPost, "/api/v1/workspaces", token, dto.CreateWorkspaceRequest{Name: "Side Quests"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.WorkspaceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// The new workspace is now the current one.
	w = doJSON(t, r, http.MethodGet, "/api/v1/workspaces/current", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var current dto.WorkspaceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	assert.Equal(t, created.WorkspaceID, current.WorkspaceID)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/workspaces/"+created.WorkspaceID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/workspaces/"+created.WorkspaceID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Workspace not found")
}

func TestWorkspaceWritesForbiddenForManager(t *testing.T) {
	r := newTestRouter(t)
	token := loginAs(t, r, "maria@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/v1/workspaces", token, dto.CreateWorkspaceRequest{Name: "Nope"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTaskFiltersOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := loginAs(t, r, "lee@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/v1/tasks?projectID=1&status=completed", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.ListTasksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, "Design homepage mockup", list.Tasks[0].Title)

	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks?status=bogus", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTeamVisibilityAndEditFlags(t *testing.T) {
	r := newTestRouter(t)

	adminToken := loginAs(t, r, "alex@example.com")
	w := doJSON(t, r, http.MethodGet, "/api/v1/team", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list dto.ListTeamMembersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Members, 3)
	for _, m := range list.Members {
		assert.True(t, m.CanEdit, "admin should be able to edit %s", m.Name)
	}

	contributorToken := loginAs(t, r, "lee@example.com")
	w = doJSON(t, r, http.MethodGet, "/api/v1/team", contributorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Members, 1)
	assert.Equal(t, "Lee Wong", list.Members[0].Name)
	assert.True(t, list.Members[0].CanEdit)
}

func TestTeamCreateConflictsAndGates(t *testing.T) {
	r := newTestRouter(t)
	adminToken := loginAs(t, r, "alex@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/v1/team", adminToken, dto.CreateTeamMemberRequest{
		Name:     "Duplicate",
		Email:    "maria@example.com",
		RoleID:   "contributor",
		Password: "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")

	managerToken := loginAs(t, r, "maria@example.com")
	w = doJSON(t, r, http.MethodPost, "/api/v1/team", managerToken, dto.CreateTeamMemberRequest{
		Name:     "Sneaky Admin",
		Email:    "sneaky@example.com",
		RoleID:   "admin",
		Password: "password123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteOwnAccountForbidden(t *testing.T) {
	r := newTestRouter(t)
	adminToken := loginAs(t, r, "alex@example.com")

	w := doJSON(t, r, http.MethodDelete, "/api/v1/team/1", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "your own account")
}

func TestAnalyticsForbiddenForContributor(t *testing.T) {
	r := newTestRouter(t)
	token := loginAs(t, r, "lee@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/v1/analytics/summary", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAnalyticsSummaryForManager(t *testing.T) {
	r := newTestRouter(t)
	token := loginAs(t, r, "maria@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/v1/analytics/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"workspaceCount":2`)
}

func TestRoleCatalogueEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := loginAs(t, r, "lee@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/v1/roles", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.ListRolesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Roles, 4)
}
