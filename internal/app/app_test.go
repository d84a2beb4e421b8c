package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"opiol_backend/internal/config"
	"opiol_backend/internal/model"
	"opiol_backend/internal/util"
	"opiol_backend/pkg/mockapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server:    config.ServerConfig{Port: "0", Mode: "test"},
		Log:       config.LogConfig{File: filepath.Join(t.TempDir(), "app.log"), MaxSizeMB: 1},
		Transport: config.TransportConfig{DelayMs: 0, FailureRate: 0},
		Draft:     config.DraftConfig{Store: util.DraftStoreMemory, Key: "profile-setup"},
		Wizard:    config.WizardConfig{RedirectDelayMs: 3600000, RedirectPath: "/dashboard", NotificationDurationMs: 3600000},
		I18n:      config.I18nConfig{DefaultLanguage: "en"},
	}
}

func newTestApp(t *testing.T, strategy mockapi.Strategy) *App {
	t.Helper()
	a, err := NewApp(testConfig(t), WithTransportStrategy(strategy))
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, a *App, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(util.ClientIDHeader, "client-1")

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestRootRedirect(t *testing.T) {
	a := newTestApp(t, mockapi.Fixed(mockapi.Success))

	w, _ := do(t, a, http.MethodGet, "/?utm=x", "")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/profile-setup?utm=x", w.Header().Get("Location"))
}

func TestProfileSetupAPI(t *testing.T) {
	a := newTestApp(t, mockapi.NewSequence(mockapi.Failure, mockapi.Success))
	body := `{"educationLevel":"bachelor","gpa":"3.8","currentUniversity":"X","destinationCountry":"germany","targetDegree":"msc","intendedField":"CS","englishTestTaken":false,"targetYear":"2025"}`

	w, _ := do(t, a, http.MethodPost, "/profile-setup/api", body)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Server error"}`, w.Body.String())

	w, _ = do(t, a, http.MethodPost, "/profile-setup/api", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Profile saved successfully"}`, w.Body.String())
}

func TestWizardFlow(t *testing.T) {
	a := newTestApp(t, mockapi.Fixed(mockapi.Success))

	fields := map[string]interface{}{
		"educationLevel": "bachelor", "gpa": "3.8", "currentUniversity": "X",
		"destinationCountry": "germany", "targetDegree": "msc", "intendedField": "CS",
		"englishTestTaken": false, "targetYear": "2025",
	}
	for field, value := range fields {
		payload, err := json.Marshal(map[string]interface{}{"field": field, "value": value})
		require.NoError(t, err)
		w, _ := do(t, a, http.MethodPut, "/api/profile-setup/wizard/fields", string(payload))
		require.Equal(t, http.StatusOK, w.Code, field)
	}

	_, env := do(t, a, http.MethodGet, "/api/profile-setup/draft", "")
	var draft model.Draft
	require.NoError(t, json.Unmarshal(env.Data, &draft))
	assert.Equal(t, "3.8", draft.GPA)

	w, _ := do(t, a, http.MethodPost, "/api/profile-setup/wizard/submit", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	do(t, a, http.MethodPost, "/api/profile-setup/wizard/next", "")
	_, env = do(t, a, http.MethodPost, "/api/profile-setup/wizard/next", "")
	var view model.WizardView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, 3, view.Step)

	w, env = do(t, a, http.MethodPost, "/api/profile-setup/wizard/submit", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, model.WizardSucceeded, view.State)

	_, env = do(t, a, http.MethodGet, "/api/profile-setup/draft", "")
	require.NoError(t, json.Unmarshal(env.Data, &draft))
	assert.Equal(t, model.DefaultDraft(), draft)

	w, _ = do(t, a, http.MethodPost, "/api/profile-setup/wizard/back", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = do(t, a, http.MethodDelete, "/api/profile-setup/wizard", "")
	assert.Equal(t, http.StatusOK, w.Code)
	_, env = do(t, a, http.MethodGet, "/api/profile-setup/wizard", "")
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, model.WizardStep1, view.State)
}

func TestPageRoutes(t *testing.T) {
	a := newTestApp(t, mockapi.Fixed(mockapi.Success))

	for _, path := range []string{"/api/roadmap", "/api/archive?country=Germany", "/api/archive/filters", "/api/advisor/categories", "/api/dashboard", "/api/profile", "/api/health"} {
		w, env := do(t, a, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, http.StatusOK, env.Code, path)
	}

	w, _ := do(t, a, http.MethodPost, "/api/roadmap/groups/preparation/tasks/2/toggle", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, a, http.MethodPost, "/api/roadmap/groups/preparation/tasks/x/toggle", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := do(t, a, http.MethodPost, "/api/advisor/messages", `{"content":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Message must not be empty", env.Message)

	w, _ = do(t, a, http.MethodPost, "/api/advisor/messages", `{"content":"visa?"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	_, env = do(t, a, http.MethodGet, "/api/advisor/messages", "")
	var msgs []model.AdvisorMessage
	require.NoError(t, json.Unmarshal(env.Data, &msgs))
	assert.Len(t, msgs, 2)

	w, _ = do(t, a, http.MethodPut, "/api/profile", `{"name":"","email":"bad"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfigCallbackReconfiguresTransport(t *testing.T) {
	a := newTestApp(t, nil)

	cfg := testConfig(t)
	cfg.Transport.DelayMs = 25
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	assert.Equal(t, int64(25), a.Transport.Delay().Milliseconds())
}
