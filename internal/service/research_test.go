package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// blockingGateway lets a test hold one topic's research call in flight.
type blockingGateway struct {
	stubGateway
	blockTopic string
	block      chan struct{}
	answers    map[string]string
}

func (g *blockingGateway) ResearchTopic(ctx context.Context, topic string) string {
	if topic == g.blockTopic {
		<-g.block
	}
	return g.answers[topic]
}

func TestResearchTopicsFixedList(t *testing.T) {
	svc := NewResearchService(&stubGateway{}, zap.NewNop())
	assert.Equal(t, ResearchTopics, svc.Topics())
}

func TestResearchQueryUnknownTopic(t *testing.T) {
	svc := NewResearchService(&stubGateway{}, zap.NewNop())
	_, _, err := svc.Query(context.Background(), "Keto Myths")
	assert.ErrorIs(t, err, ErrUnknownTopic)
}

func TestResearchQueryReturnsAnswer(t *testing.T) {
	svc := NewResearchService(&stubGateway{}, zap.NewNop())
	answer, stale, err := svc.Query(context.Background(), "Polyphenols")
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Equal(t, "summary", answer)
}

func TestResearchQuerySupersededIsStale(t *testing.T) {
	gw := &blockingGateway{
		blockTopic: "Polyphenols",
		block:      make(chan struct{}),
		answers: map[string]string{
			"Polyphenols":    "slow answer",
			"Gut-Brain Axis": "fast answer",
		},
	}
	svc := NewResearchService(gw, zap.NewNop())

	type result struct {
		answer string
		stale  bool
	}
	first := make(chan result, 1)
	go func() {
		answer, stale, _ := svc.Query(context.Background(), "Polyphenols")
		first <- result{answer, stale}
	}()

	// Issue a second query while the first is blocked in the gateway.
	require.Eventually(t, func() bool { return svc.seq.Load() >= 1 }, time.Second, time.Millisecond)
	answer, stale, err := svc.Query(context.Background(), "Gut-Brain Axis")
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Equal(t, "fast answer", answer)

	close(gw.block)
	got := <-first
	assert.True(t, got.stale, "superseded query must report stale")
	assert.Equal(t, "slow answer", got.answer)
}
