package service

import (
	"context"
	"sync"

	"opiol_backend/internal/config"
	"opiol_backend/internal/repository"
	"opiol_backend/internal/validation"
	"opiol_backend/internal/wizard"
	"opiol_backend/pkg/clientcache"
	"opiol_backend/pkg/i18n"
	"opiol_backend/pkg/logger"

	"go.uber.org/zap"
)

// WizardService 按客户端维护向导会话，首次访问时创建，DELETE 时关闭。
// 提交成功并跳转后会话被移除，下次访问从第一步重新开始；
// 被容量或空闲超时淘汰的会话同样会被关闭
type WizardService struct {
	store      repository.DraftStore
	validator  *validation.Validator
	submitter  wizard.Submitter
	translator *i18n.Translator
	cfg        config.WizardConfig

	mu       sync.Mutex
	sessions *clientcache.Cache[*wizard.Controller]
}

func NewWizardService(store repository.DraftStore, v *validation.Validator, submitter wizard.Submitter, tr *i18n.Translator, cfg config.WizardConfig, limits clientcache.Limits) *WizardService {
	return &WizardService{
		store:      store,
		validator:  v,
		submitter:  submitter,
		translator: tr,
		cfg:        cfg,
		sessions: clientcache.New(limits, func(_ string, c *wizard.Controller) {
			c.Close()
		}),
	}
}

// Session 返回客户端当前的向导，不存在或已结束时从草稿存储恢复一个新的
func (s *WizardService) Session(ctx context.Context, clientID, lang string) *wizard.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.sessions.Get(clientID); ok {
		if !c.Done() {
			c.SetLang(lang)
			return c
		}
		s.sessions.Remove(clientID)
	}

	var c *wizard.Controller
	c = wizard.New(ctx, s.store, s.validator, s.submitter, s.translator, wizard.Options{
		ClientID:             clientID,
		Lang:                 lang,
		RedirectDelay:        s.cfg.RedirectDelay(),
		RedirectPath:         s.cfg.RedirectPath,
		NotificationDuration: s.cfg.NotificationDuration(),
		OnNavigate: func(path string) {
			logger.Log.Debug("Wizard redirect", zap.String("client_id", clientID), zap.String("path", path))
			s.sessions.RemoveIf(clientID, func(cur *wizard.Controller) bool { return cur == c })
		},
	})
	s.sessions.Put(clientID, c)
	return c
}

// Close 关闭并丢弃客户端的向导，正在进行的提交结果不会再被应用
func (s *WizardService) Close(clientID string) {
	s.sessions.Remove(clientID)
}

func (s *WizardService) Len() int {
	return s.sessions.Len()
}

// CloseAll 在服务关闭时调用
func (s *WizardService) CloseAll() {
	s.sessions.Clear()
}
