package repository

import (
	"context"
	"encoding/json"
	"opiol_backend/internal/config"
	"opiol_backend/internal/model"
	"opiol_backend/internal/util"
	"opiol_backend/pkg/logger"
	"sync"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DraftStore 草稿的键值镜像。读取失败或数据损坏时返回默认值，写入为尽力而为，
// 错误只记录日志，不返回给调用方
type DraftStore interface {
	Load(ctx context.Context, clientID string) model.Draft
	Save(ctx context.Context, clientID string, draft model.Draft)
	Clear(ctx context.Context, clientID string)
}

// NewDraftStore 按配置选择存储后端，后端不可用时降级为内存存储
func NewDraftStore(cfg *config.DraftConfig, rdb *redis.Client) DraftStore {
	switch cfg.Store {
	case util.DraftStoreRedis:
		if rdb != nil {
			return NewRedisDraftStore(rdb, cfg.Key)
		}
		logger.Log.Warn("Redis unavailable, draft store falls back to memory")
	case util.DraftStoreFile:
		store, err := NewFileDraftStore(cfg.FileDir, cfg.Key)
		if err == nil {
			return store
		}
		logger.Log.Warn("File draft store unavailable, falling back to memory", zap.Error(err))
	}
	return NewMemoryDraftStore(cfg.Key)
}

func draftKey(prefix, clientID string) string {
	return prefix + ":" + clientID
}

func encodeDraft(d model.Draft) ([]byte, error) {
	return json.Marshal(d)
}

// decodeDraft 解析失败时返回默认草稿和 false
func decodeDraft(raw []byte) (model.Draft, bool) {
	var d model.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return model.DefaultDraft(), false
	}
	return d, true
}

// MemoryDraftStore 进程内存储，重启后丢失
type MemoryDraftStore struct {
	mu     sync.RWMutex
	prefix string
	data   map[string][]byte
}

func NewMemoryDraftStore(prefix string) *MemoryDraftStore {
	return &MemoryDraftStore{prefix: prefix, data: make(map[string][]byte)}
}

func (s *MemoryDraftStore) Load(ctx context.Context, clientID string) model.Draft {
	s.mu.RLock()
	raw, ok := s.data[draftKey(s.prefix, clientID)]
	s.mu.RUnlock()
	if !ok {
		return model.DefaultDraft()
	}

	d, ok := decodeDraft(raw)
	if !ok {
		logger.Log.Warn("Malformed stored draft, using defaults", zap.String("client_id", clientID))
	}
	return d
}

func (s *MemoryDraftStore) Save(ctx context.Context, clientID string, draft model.Draft) {
	raw, err := encodeDraft(draft)
	if err != nil {
		logger.Log.Warn("Failed to encode draft", zap.Error(err))
		return
	}
	s.mu.Lock()
	s.data[draftKey(s.prefix, clientID)] = raw
	s.mu.Unlock()
}

func (s *MemoryDraftStore) Clear(ctx context.Context, clientID string) {
	s.mu.Lock()
	delete(s.data, draftKey(s.prefix, clientID))
	s.mu.Unlock()
}

// RedisDraftStore 以 Redis 字符串保存草稿，不设置过期时间
type RedisDraftStore struct {
	Redis  *redis.Client
	prefix string
}

func NewRedisDraftStore(rdb *redis.Client, prefix string) *RedisDraftStore {
	return &RedisDraftStore{Redis: rdb, prefix: prefix}
}

func (s *RedisDraftStore) Load(ctx context.Context, clientID string) model.Draft {
	raw, err := s.Redis.Get(ctx, draftKey(s.prefix, clientID)).Bytes()
	if err == redis.Nil {
		return model.DefaultDraft()
	}
	if err != nil {
		logger.Log.Warn("Failed to load draft from redis", zap.String("client_id", clientID), zap.Error(err))
		return model.DefaultDraft()
	}

	d, ok := decodeDraft(raw)
	if !ok {
		logger.Log.Warn("Malformed stored draft, using defaults", zap.String("client_id", clientID))
	}
	return d
}

func (s *RedisDraftStore) Save(ctx context.Context, clientID string, draft model.Draft) {
	raw, err := encodeDraft(draft)
	if err != nil {
		logger.Log.Warn("Failed to encode draft", zap.Error(err))
		return
	}
	if err := s.Redis.Set(ctx, draftKey(s.prefix, clientID), raw, 0).Err(); err != nil {
		logger.Log.Warn("Failed to save draft to redis", zap.String("client_id", clientID), zap.Error(err))
	}
}

func (s *RedisDraftStore) Clear(ctx context.Context, clientID string) {
	if err := s.Redis.Del(ctx, draftKey(s.prefix, clientID)).Err(); err != nil {
		logger.Log.Warn("Failed to clear draft in redis", zap.String("client_id", clientID), zap.Error(err))
	}
}
