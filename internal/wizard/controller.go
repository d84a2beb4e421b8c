// Package wizard drives the three-step profile setup flow.
//
//	step1 <-> step2 <-> step3 --submit--> submitting --ok--> succeeded
//	                                           |
//	                                           +--error--> failed (back on step 3)
//
// Navigation is never gated on validation; the whole draft is validated on
// submit. Once Close is called no transport result, timer or navigation is
// applied to the controller.
package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"opiol_backend/internal/model"
	"opiol_backend/internal/repository"
	"opiol_backend/internal/util"
	"opiol_backend/internal/validation"
	"opiol_backend/pkg/i18n"
	"opiol_backend/pkg/logger"
	"opiol_backend/pkg/monitoring"

	"go.uber.org/zap"
)

const (
	DefaultRedirectDelay        = 1500 * time.Millisecond
	DefaultNotificationDuration = 3 * time.Second
	DefaultRedirectPath         = "/dashboard"
)

// Submitter sends a validated draft and returns the server's message.
type Submitter interface {
	Submit(ctx context.Context, draft model.Draft, lang string) (string, error)
}

type SubmitterFunc func(ctx context.Context, draft model.Draft, lang string) (string, error)

func (f SubmitterFunc) Submit(ctx context.Context, draft model.Draft, lang string) (string, error) {
	return f(ctx, draft, lang)
}

type Validator interface {
	Validate(d model.Draft, lang string) (model.Draft, *validation.FieldError)
}

type Options struct {
	ClientID             string
	Lang                 string
	RedirectDelay        time.Duration
	RedirectPath         string
	NotificationDuration time.Duration
	// OnNavigate runs once the redirect delay after a successful submission
	// has elapsed, outside the controller lock.
	OnNavigate func(path string)
}

type Controller struct {
	mu sync.Mutex

	store      repository.DraftStore
	validator  Validator
	submitter  Submitter
	translator *i18n.Translator
	opts       Options

	step         int
	state        model.WizardState
	draft        model.Draft
	notification *model.Notification
	redirectTo   string

	dismissTimer  *time.Timer
	redirectTimer *time.Timer
	cancelSubmit  context.CancelFunc
	closed        bool
}

// New starts on step 1 with whatever draft the store holds for the client.
func New(ctx context.Context, store repository.DraftStore, v Validator, s Submitter, tr *i18n.Translator, opts Options) *Controller {
	if opts.RedirectPath == "" {
		opts.RedirectPath = DefaultRedirectPath
	}
	if opts.Lang == "" {
		opts.Lang = tr.DefaultLanguage()
	}
	return &Controller{
		store:      store,
		validator:  v,
		submitter:  s,
		translator: tr,
		opts:       opts,
		step:       model.FirstStep,
		state:      model.WizardStep1,
		draft:      store.Load(ctx, opts.ClientID),
	}
}

func stateForStep(step int) model.WizardState {
	switch step {
	case 1:
		return model.WizardStep1
	case 2:
		return model.WizardStep2
	default:
		return model.WizardStep3
	}
}

func (c *Controller) View() model.WizardView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() model.WizardView {
	v := model.WizardView{
		Step:       c.step,
		State:      c.state,
		Draft:      c.draft,
		Submitting: c.state == model.WizardSubmitting,
		RedirectTo: c.redirectTo,
	}
	if c.notification != nil {
		n := *c.notification
		v.Notification = &n
	}
	return v
}

// SetLang switches the language used for notifications and validation messages.
func (c *Controller) SetLang(lang string) {
	if lang == "" {
		return
	}
	c.mu.Lock()
	c.opts.Lang = lang
	c.mu.Unlock()
}

// checkActiveLocked rejects actions on a closed or finished wizard.
func (c *Controller) checkActiveLocked() error {
	if c.closed {
		return util.ErrWizardClosed
	}
	if c.state == model.WizardSucceeded {
		return util.ErrWizardFinished
	}
	return nil
}

// SetField mutates one field and mirrors the whole draft to the store.
func (c *Controller) SetField(ctx context.Context, field model.DraftField, value interface{}) (model.WizardView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkActiveLocked(); err != nil {
		return c.viewLocked(), err
	}
	if s, ok := value.(string); ok && field != model.FieldEnglishTestTaken {
		value = util.StripTags(s)
	}
	if err := c.draft.Set(field, value); err != nil {
		return c.viewLocked(), err
	}
	c.store.Save(ctx, c.opts.ClientID, c.draft)
	return c.viewLocked(), nil
}

func (c *Controller) Next() (model.WizardView, error) {
	return c.move(1)
}

func (c *Controller) Back() (model.WizardView, error) {
	return c.move(-1)
}

func (c *Controller) move(delta int) (model.WizardView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkActiveLocked(); err != nil {
		return c.viewLocked(), err
	}
	if c.state == model.WizardSubmitting {
		return c.viewLocked(), util.ErrSubmitInProgress
	}

	next := c.step + delta
	if next < model.FirstStep || next > model.LastStep {
		return c.viewLocked(), nil
	}
	c.step = next
	c.state = stateForStep(next)
	return c.viewLocked(), nil
}

// Submit validates the draft and, when valid, hands it to the submitter.
// A validation failure is returned as *validation.FieldError and never
// reaches the submitter.
func (c *Controller) Submit(ctx context.Context) (model.WizardView, error) {
	c.mu.Lock()
	if err := c.checkActiveLocked(); err != nil {
		defer c.mu.Unlock()
		return c.viewLocked(), err
	}
	if c.state == model.WizardSubmitting {
		defer c.mu.Unlock()
		return c.viewLocked(), util.ErrSubmitInProgress
	}
	if c.step != model.LastStep {
		defer c.mu.Unlock()
		return c.viewLocked(), util.ErrNotOnLastStep
	}

	lang := c.opts.Lang
	draft, ferr := c.validator.Validate(c.draft, lang)
	if ferr != nil {
		defer c.mu.Unlock()
		c.state = model.WizardStep3
		c.notifyLocked(model.NotificationError, ferr.Message)
		monitoring.WizardSubmissions.WithLabelValues("invalid").Inc()
		return c.viewLocked(), ferr
	}

	c.state = model.WizardSubmitting
	c.notifyLocked(model.NotificationLoading, c.translator.T(lang, i18n.MsgWizardSaving))
	subCtx, cancel := context.WithCancel(ctx)
	c.cancelSubmit = cancel
	c.mu.Unlock()

	_, err := c.submitter.Submit(subCtx, draft, lang)

	c.mu.Lock()
	defer c.mu.Unlock()
	cancel()
	c.cancelSubmit = nil

	if c.closed {
		monitoring.WizardSubmissions.WithLabelValues("discarded").Inc()
		logger.Log.Info("Discarding submission result after teardown", zap.String("client_id", c.opts.ClientID))
		return c.viewLocked(), util.ErrWizardClosed
	}

	if err != nil {
		c.state = model.WizardFailed
		c.notifyLocked(model.NotificationError, c.failureMessage(err, lang))
		monitoring.WizardSubmissions.WithLabelValues("failed").Inc()
		logger.Log.Info("Profile submission failed", zap.String("client_id", c.opts.ClientID), zap.Error(err))
		return c.viewLocked(), err
	}

	c.state = model.WizardSucceeded
	c.store.Clear(ctx, c.opts.ClientID)
	c.draft = model.DefaultDraft()
	c.notifyLocked(model.NotificationSuccess, c.translator.T(lang, i18n.MsgWizardSaved))
	c.scheduleRedirectLocked()
	monitoring.WizardSubmissions.WithLabelValues("succeeded").Inc()
	logger.Log.Info("Profile submitted", zap.String("client_id", c.opts.ClientID))
	return c.viewLocked(), nil
}

func (c *Controller) failureMessage(err error, lang string) string {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || err.Error() == "" {
		return c.translator.T(lang, i18n.MsgWizardSaveFailedRetry)
	}
	return err.Error()
}

func (c *Controller) notifyLocked(kind model.NotificationKind, message string) {
	if c.dismissTimer != nil {
		c.dismissTimer.Stop()
		c.dismissTimer = nil
	}

	n := model.NewNotification(kind, message, c.opts.NotificationDuration)
	c.notification = n
	if kind == model.NotificationLoading || c.opts.NotificationDuration <= 0 {
		return
	}
	c.dismissTimer = time.AfterFunc(c.opts.NotificationDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.notification == n {
			c.notification = nil
		}
	})
}

func (c *Controller) scheduleRedirectLocked() {
	path := c.opts.RedirectPath
	c.redirectTimer = time.AfterFunc(c.opts.RedirectDelay, func() {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return
		}
		c.redirectTo = path
		onNavigate := c.opts.OnNavigate
		c.mu.Unlock()

		if onNavigate != nil {
			onNavigate(path)
		}
	})
}

// DismissNotification closes the current notification by hand.
func (c *Controller) DismissNotification() model.WizardView {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dismissTimer != nil {
		c.dismissTimer.Stop()
		c.dismissTimer = nil
	}
	c.notification = nil
	return c.viewLocked()
}

// Close tears the controller down: the in-flight submission is cancelled and
// its result dropped, pending timers are stopped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.cancelSubmit != nil {
		c.cancelSubmit()
	}
	if c.dismissTimer != nil {
		c.dismissTimer.Stop()
	}
	if c.redirectTimer != nil {
		c.redirectTimer.Stop()
	}
}

func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Done reports whether the wizard has been closed or has already navigated
// away after a successful submission.
func (c *Controller) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed || c.redirectTo != ""
}
