package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"opiol_backend/internal/model"
	"opiol_backend/pkg/logger"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"go.uber.org/zap"
)

var safeClientID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// FileDraftStore 每个客户端一个 JSON 文件
type FileDraftStore struct {
	mu      sync.Mutex
	baseDir string
	prefix  string
}

func NewFileDraftStore(baseDir, prefix string) (*FileDraftStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create draft directory: %w", err)
	}
	return &FileDraftStore{baseDir: baseDir, prefix: prefix}, nil
}

func (s *FileDraftStore) path(clientID string) string {
	name := clientID
	if !safeClientID.MatchString(clientID) {
		sum := sha256.Sum256([]byte(clientID))
		name = hex.EncodeToString(sum[:16])
	}
	return filepath.Join(s.baseDir, s.prefix+"-"+name+".json")
}

func (s *FileDraftStore) Load(ctx context.Context, clientID string) model.Draft {
	s.mu.Lock()
	raw, err := os.ReadFile(s.path(clientID))
	s.mu.Unlock()
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Warn("Failed to read draft file", zap.String("client_id", clientID), zap.Error(err))
		}
		return model.DefaultDraft()
	}

	d, ok := decodeDraft(raw)
	if !ok {
		logger.Log.Warn("Malformed stored draft, using defaults", zap.String("client_id", clientID))
	}
	return d
}

func (s *FileDraftStore) Save(ctx context.Context, clientID string, draft model.Draft) {
	raw, err := encodeDraft(draft)
	if err != nil {
		logger.Log.Warn("Failed to encode draft", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path(clientID), raw, 0644); err != nil {
		logger.Log.Warn("Failed to write draft file", zap.String("client_id", clientID), zap.Error(err))
	}
}

func (s *FileDraftStore) Clear(ctx context.Context, clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(clientID)); err != nil && !os.IsNotExist(err) {
		logger.Log.Warn("Failed to remove draft file", zap.String("client_id", clientID), zap.Error(err))
	}
}
