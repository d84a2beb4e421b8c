package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"opiol_backend/internal/config"
	"opiol_backend/internal/model"
	"opiol_backend/internal/repository"
	"opiol_backend/internal/util"
	"opiol_backend/internal/wizard"
	"opiol_backend/pkg/clientcache"
	"opiol_backend/pkg/mockapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWizardService(store repository.DraftStore, strategy mockapi.Strategy) *WizardService {
	return newWizardServiceWith(store, strategy, time.Hour, clientcache.DefaultLimits)
}

func newWizardServiceWith(store repository.DraftStore, strategy mockapi.Strategy, redirectDelay time.Duration, limits clientcache.Limits) *WizardService {
	submitter := NewProfileSetupService(newValidator(), mockapi.New(mockapi.WithDelay(0), mockapi.WithStrategy(strategy)))
	return NewWizardService(store, newValidator(), submitter, testTranslator, config.WizardConfig{
		RedirectDelayMs:        int(redirectDelay / time.Millisecond),
		RedirectPath:           "/dashboard",
		NotificationDurationMs: int(time.Hour / time.Millisecond),
	}, limits)
}

func fillAndSubmit(t *testing.T, ctx context.Context, w *wizard.Controller) model.WizardView {
	t.Helper()
	d := validDraft()
	for field, value := range map[model.DraftField]string{
		model.FieldEducationLevel:     d.EducationLevel,
		model.FieldGPA:                d.GPA,
		model.FieldCurrentUniversity:  d.CurrentUniversity,
		model.FieldDestinationCountry: d.DestinationCountry,
		model.FieldTargetDegree:       d.TargetDegree,
		model.FieldIntendedField:      d.IntendedField,
		model.FieldTargetYear:         d.TargetYear,
	} {
		_, err := w.SetField(ctx, field, value)
		require.NoError(t, err)
	}
	w.Next()
	w.Next()

	view, err := w.Submit(ctx)
	require.NoError(t, err)
	return view
}

func TestWizardService_SessionsArePerClient(t *testing.T) {
	s := newWizardService(repository.NewMemoryDraftStore("profile-setup"), mockapi.Fixed(mockapi.Success))
	defer s.CloseAll()
	ctx := context.Background()

	a := s.Session(ctx, "a", "en")
	_, err := a.Next()
	require.NoError(t, err)

	assert.Same(t, a, s.Session(ctx, "a", "en"))
	assert.Equal(t, 1, s.Session(ctx, "b", "en").View().Step)
	assert.Equal(t, 2, a.View().Step)
}

func TestWizardService_CloseStartsOver(t *testing.T) {
	store := repository.NewMemoryDraftStore("profile-setup")
	s := newWizardService(store, mockapi.Fixed(mockapi.Success))
	defer s.CloseAll()
	ctx := context.Background()

	a := s.Session(ctx, "a", "en")
	_, err := a.SetField(ctx, model.FieldGPA, "3.1")
	require.NoError(t, err)
	_, err = a.Next()
	require.NoError(t, err)

	s.Close("a")
	assert.True(t, a.Closed())
	_, err = a.Next()
	assert.ErrorIs(t, err, util.ErrWizardClosed)

	fresh := s.Session(ctx, "a", "en")
	assert.Equal(t, 1, fresh.View().Step)
	assert.Equal(t, "3.1", fresh.View().Draft.GPA)
}

func TestWizardService_SubmitThroughProfileSetup(t *testing.T) {
	store := repository.NewMemoryDraftStore("profile-setup")
	s := newWizardService(store, mockapi.Fixed(mockapi.Success))
	defer s.CloseAll()
	ctx := context.Background()

	w := s.Session(ctx, "a", "en")
	view := fillAndSubmit(t, ctx, w)
	assert.Equal(t, model.WizardSucceeded, view.State)
	// 跳转前仍是同一个已完成的向导，页面可以显示成功提示
	assert.Same(t, w, s.Session(ctx, "a", "en"))
	assert.Equal(t, model.DefaultDraft(), store.Load(ctx, "a"))
}

func TestWizardService_FreshSessionAfterRedirect(t *testing.T) {
	s := newWizardServiceWith(repository.NewMemoryDraftStore("profile-setup"), mockapi.Fixed(mockapi.Success), 10*time.Millisecond, clientcache.DefaultLimits)
	defer s.CloseAll()
	ctx := context.Background()

	done := s.Session(ctx, "a", "en")
	fillAndSubmit(t, ctx, done)

	require.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	assert.True(t, done.Closed())

	fresh := s.Session(ctx, "a", "en")
	assert.NotSame(t, done, fresh)
	view := fresh.View()
	assert.Equal(t, 1, view.Step)
	assert.Equal(t, model.WizardStep1, view.State)
	assert.Equal(t, model.DefaultDraft(), view.Draft)

	_, err := fresh.SetField(ctx, model.FieldGPA, "3.2")
	assert.NoError(t, err)
}

func TestWizardService_ReplacesClosedSession(t *testing.T) {
	s := newWizardService(repository.NewMemoryDraftStore("profile-setup"), mockapi.Fixed(mockapi.Success))
	defer s.CloseAll()
	ctx := context.Background()

	a := s.Session(ctx, "a", "en")
	a.Close()

	fresh := s.Session(ctx, "a", "en")
	assert.NotSame(t, a, fresh)
	assert.False(t, fresh.Closed())
}

func TestWizardService_BoundsSessions(t *testing.T) {
	s := newWizardServiceWith(repository.NewMemoryDraftStore("profile-setup"), mockapi.Fixed(mockapi.Success), time.Hour, clientcache.Limits{MaxClients: 100})
	defer s.CloseAll()
	ctx := context.Background()

	first := s.Session(ctx, "client-0", "en")
	for i := 1; i < 1000; i++ {
		s.Session(ctx, fmt.Sprintf("client-%d", i), "en")
	}

	assert.Equal(t, 100, s.Len())
	assert.True(t, first.Closed())
}
