package service

import (
	"context"
	"testing"
	"time"

	"opiol_backend/internal/model"
	"opiol_backend/internal/util"
	"opiol_backend/pkg/clientcache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisorService_ReplyPicksFirstKeyword(t *testing.T) {
	s := NewAdvisorService(newFixtures(t), 0, clientcache.DefaultLimits)
	script := newFixtures(t).AdvisorScript()

	assert.Equal(t, script.Replies["sop"], s.Reply("Help with my SOP and visa"))
	assert.Equal(t, script.Replies["ielts"], s.Reply("IELTS tips please"))
	assert.Equal(t, script.Replies["visa"], s.Reply("Visa documents?"))
	assert.Equal(t, script.Replies["funding"], s.Reply("any funding?"))
	assert.Equal(t, script.Fallback, s.Reply("hello"))
}

func TestAdvisorService_AskAppendsTranscript(t *testing.T) {
	s := NewAdvisorService(newFixtures(t), 0, clientcache.DefaultLimits)

	question, reply, err := s.Ask(context.Background(), "a", "What about visa?")
	require.NoError(t, err)
	require.NotNil(t, reply)
	assert.Equal(t, model.SenderUser, question.Type)
	assert.Equal(t, model.SenderAI, reply.Type)
	assert.NotEqual(t, question.ID, reply.ID)

	msgs := s.Messages("a")
	require.Len(t, msgs, 2)
	assert.Equal(t, "What about visa?", msgs[0].Content)
	assert.Empty(t, s.Messages("b"))
}

func TestAdvisorService_RejectsBlank(t *testing.T) {
	s := NewAdvisorService(newFixtures(t), 0, clientcache.DefaultLimits)

	for _, content := range []string{"", "   ", "<p> </p>"} {
		_, _, err := s.Ask(context.Background(), "a", content)
		assert.ErrorIs(t, err, util.ErrEmptyMessage, content)
	}
	assert.Empty(t, s.Messages("a"))
}

func TestAdvisorService_CancelDuringTyping(t *testing.T) {
	s := NewAdvisorService(newFixtures(t), time.Hour, clientcache.DefaultLimits)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, reply, err := s.Ask(ctx, "a", "funding")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, reply)
	assert.Len(t, s.Messages("a"), 1)
}
