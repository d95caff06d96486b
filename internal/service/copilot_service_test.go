package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chipchop/chipchop/internal/domain"
)

func chat(svc *CopilotService, message string) *domain.ChatResponse {
	return svc.Chat(context.Background(), &domain.ChatRequest{Message: message})
}

func TestCopilotCounterReply(t *testing.T) {
	svc := NewCopilotService()

	resp := chat(svc, "please help me build a counter")
	assert.True(t, strings.Contains(resp.Reply, "module counter"))
	assert.Equal(t, []string{"Create File"}, resp.Actions)
}

func TestCopilotSynthesisReply(t *testing.T) {
	svc := NewCopilotService()

	resp := chat(svc, "How do I run Synthesis?")
	assert.Contains(t, resp.Reply, "Flow Navigator")
	assert.Equal(t, []string{"Run Synthesis"}, resp.Actions)
}

func TestCopilotBitstreamReplyHasNoActions(t *testing.T) {
	svc := NewCopilotService()

	resp := chat(svc, "generate a BITSTREAM")
	assert.Contains(t, resp.Reply, "Bitstream generation")
	assert.Empty(t, resp.Actions)
}

func TestCopilotFallback(t *testing.T) {
	svc := NewCopilotService()

	resp := chat(svc, "what is the meaning of life")
	assert.Contains(t, resp.Reply, "I can help you with RTL coding")
	assert.Empty(t, resp.Actions)
}

func TestCopilotFirstKeywordWins(t *testing.T) {
	svc := NewCopilotService()

	// "counter" outranks "synthesis" when both appear.
	resp := chat(svc, "run synthesis on my counter")
	assert.Equal(t, []string{"Create File"}, resp.Actions)
}
