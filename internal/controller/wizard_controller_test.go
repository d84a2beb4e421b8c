package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"opiol_backend/internal/config"
	"opiol_backend/internal/model"
	"opiol_backend/internal/repository"
	"opiol_backend/internal/service"
	"opiol_backend/internal/util"
	"opiol_backend/internal/validation"
	"opiol_backend/pkg/clientcache"
	"opiol_backend/pkg/mockapi"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wizardRouter(s *service.WizardService) *gin.Engine {
	c := NewWizardController(s)
	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		ctx.Set(util.CtxClientID, "c1")
		ctx.Set(util.CtxLang, "en")
	})
	r.POST("/api/profile-setup/wizard/submit", c.Submit)
	return r
}

func TestWizardSubmit_SurvivesClientDisconnect(t *testing.T) {
	v := validation.New(translator)
	transport := mockapi.New(mockapi.WithDelay(100*time.Millisecond), mockapi.WithStrategy(mockapi.Fixed(mockapi.Success)))
	s := service.NewWizardService(repository.NewMemoryDraftStore("profile-setup"), v, service.NewProfileSetupService(v, transport), translator, config.WizardConfig{
		RedirectDelayMs:        int(time.Hour / time.Millisecond),
		RedirectPath:           "/dashboard",
		NotificationDurationMs: int(time.Hour / time.Millisecond),
	}, clientcache.DefaultLimits)
	defer s.CloseAll()

	bg := context.Background()
	w := s.Session(bg, "c1", "en")
	for field, value := range map[model.DraftField]string{
		model.FieldEducationLevel:     "bachelor",
		model.FieldGPA:                "3.8",
		model.FieldCurrentUniversity:  "X",
		model.FieldDestinationCountry: "germany",
		model.FieldTargetDegree:       "msc",
		model.FieldIntendedField:      "CS",
		model.FieldTargetYear:         "2025",
	} {
		_, err := w.SetField(bg, field, value)
		require.NoError(t, err)
	}
	w.Next()
	w.Next()

	reqCtx, cancel := context.WithCancel(bg)
	time.AfterFunc(10*time.Millisecond, cancel)
	defer cancel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/profile-setup/wizard/submit", nil).WithContext(reqCtx)
	wizardRouter(s).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.WizardSucceeded, w.View().State)
}
