package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"opiol_backend/internal/model"
	"opiol_backend/internal/repository"
	"opiol_backend/internal/util"
	"opiol_backend/pkg/clientcache"

	"github.com/google/uuid"
)

// AdvisorService 脚本化的顾问对话：按关键字挑选预设回复，没有真实的 AI 调用
type AdvisorService struct {
	Fixtures    *repository.FixtureRepository
	TypingDelay time.Duration

	script model.AdvisorScript

	mu          sync.Mutex
	transcripts *clientcache.Cache[[]model.AdvisorMessage]
}

func NewAdvisorService(fixtures *repository.FixtureRepository, typingDelay time.Duration, limits clientcache.Limits) *AdvisorService {
	return &AdvisorService{
		Fixtures:    fixtures,
		TypingDelay: typingDelay,
		script:      fixtures.AdvisorScript(),
		transcripts: clientcache.New[[]model.AdvisorMessage](limits, nil),
	}
}

func (s *AdvisorService) Categories() []model.AdvisorCategory {
	return s.Fixtures.AdvisorCategories()
}

func (s *AdvisorService) Messages(clientID string) []model.AdvisorMessage {
	msgs, _ := s.transcripts.Get(clientID)
	return append([]model.AdvisorMessage{}, msgs...)
}

// Ask 记录用户消息，等待模拟的输入延迟后追加预设回复。
// ctx 取消时只保留用户消息
func (s *AdvisorService) Ask(ctx context.Context, clientID, content string) (model.AdvisorMessage, *model.AdvisorMessage, error) {
	question, err := s.Post(clientID, content)
	if err != nil {
		return model.AdvisorMessage{}, nil, err
	}

	reply, err := s.Respond(ctx, clientID, question.Content)
	return question, reply, err
}

// Post 只记录用户消息，空白内容返回 util.ErrEmptyMessage
func (s *AdvisorService) Post(clientID, content string) (model.AdvisorMessage, error) {
	if util.IsBlank(content) {
		return model.AdvisorMessage{}, util.ErrEmptyMessage
	}
	return s.appendMessage(clientID, model.SenderUser, util.StripTags(content)), nil
}

// Respond 等待输入延迟后追加 content 对应的预设回复
func (s *AdvisorService) Respond(ctx context.Context, clientID, content string) (*model.AdvisorMessage, error) {
	if s.TypingDelay > 0 {
		timer := time.NewTimer(s.TypingDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	reply := s.appendMessage(clientID, model.SenderAI, s.Reply(content))
	return &reply, nil
}

// Reply 选择第一个出现在内容中的关键字对应的回复
func (s *AdvisorService) Reply(content string) string {
	lower := strings.ToLower(content)
	for _, kw := range s.script.Keywords {
		if strings.Contains(lower, kw) {
			if reply, ok := s.script.Replies[kw]; ok {
				return reply
			}
		}
	}
	return s.script.Fallback
}

func (s *AdvisorService) appendMessage(clientID string, sender model.MessageSender, content string) model.AdvisorMessage {
	msg := model.AdvisorMessage{
		ID:        uuid.NewString(),
		Type:      sender,
		Content:   content,
		Timestamp: time.Now(),
	}
	s.mu.Lock()
	msgs, _ := s.transcripts.Get(clientID)
	s.transcripts.Put(clientID, append(msgs, msg))
	s.mu.Unlock()
	return msg
}
