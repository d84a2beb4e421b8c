package model

import "time"

type AdvisorCategory struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Prompt      string `json:"prompt" yaml:"prompt"`
}

type MessageSender string

const (
	SenderUser MessageSender = "user"
	SenderAI   MessageSender = "ai"
)

type AdvisorMessage struct {
	ID        string        `json:"id"`
	Type      MessageSender `json:"type"`
	Content   string        `json:"content"`
	Timestamp time.Time     `json:"timestamp"`
}

// AdvisorScript 预设回复：按 Keywords 顺序匹配，均未命中时使用 Fallback
type AdvisorScript struct {
	Keywords []string          `yaml:"keywords"`
	Replies  map[string]string `yaml:"replies"`
	Fallback string            `yaml:"fallback"`
}
