package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatReplyMatchesKeywords(t *testing.T) {
	svc := ChatService{}

	transport := svc.Reply("¿A qué hora sale la LANCHA a Nauta?")
	assert.Contains(t, transport.Message, "horarios")
	assert.Len(t, transport.RelatedLinks, 2)
	assert.Equal(t, "/boats", transport.RelatedLinks[0].URL)

	food := svc.Reply("dónde puedo comer juane")
	assert.Contains(t, food.Message, "gastronomía")
	assert.Equal(t, "/restaurants", food.RelatedLinks[0].URL)

	tours := svc.Reply("busco un tour nocturno")
	assert.Equal(t, "/experiences", tours.RelatedLinks[0].URL)
}

func TestChatReplyFallback(t *testing.T) {
	svc := ChatService{}

	got := svc.Reply("hola")
	assert.Contains(t, got.Message, "SelvaAI")
	assert.Empty(t, got.RelatedLinks)
}
