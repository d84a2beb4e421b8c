package service

import (
	"context"

	"opiol_backend/internal/model"
	"opiol_backend/internal/repository"
	"opiol_backend/internal/util"
)

type DraftService struct {
	Store repository.DraftStore
}

func NewDraftService(store repository.DraftStore) *DraftService {
	return &DraftService{Store: store}
}

func (s *DraftService) Load(ctx context.Context, clientID string) model.Draft {
	return s.Store.Load(ctx, clientID)
}

// Save 保存前去除文本字段中的标签，返回实际保存的草稿
func (s *DraftService) Save(ctx context.Context, clientID string, draft model.Draft) model.Draft {
	draft = util.SanitizeDraft(draft)
	s.Store.Save(ctx, clientID, draft)
	return draft
}

func (s *DraftService) Clear(ctx context.Context, clientID string) {
	s.Store.Clear(ctx, clientID)
}
