package service

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
)

var ErrUnknownTopic = errors.New("unknown research topic")

// ResearchTopics is the fixed list of topics offered by the research hub.
var ResearchTopics = []string{
	"Gut-Brain Axis",
	"Fiber Diversity",
	"Prebiotics vs Probiotics",
	"Fermented Foods",
	"Polyphenols",
}

// ResearchService is a stateless query surface over the AI gateway, scoped
// to the fixed topic list. Queries carry a sequence token: a query that was
// superseded by a newer one while in flight is reported stale so the client
// can discard its answer instead of letting a slow response win.
type ResearchService struct {
	gateway AIGateway
	logger  *zap.Logger
	seq     atomic.Uint64
}

// NewResearchService creates a new ResearchService instance.
func NewResearchService(gateway AIGateway, logger *zap.Logger) *ResearchService {
	return &ResearchService{gateway: gateway, logger: logger}
}

// Topics returns the fixed topic list.
func (s *ResearchService) Topics() []string {
	return ResearchTopics
}

// Query issues one AI request for the topic. It returns the answer (or the
// gateway's fallback string on failure) and whether a newer query superseded
// this one while it was in flight.
func (s *ResearchService) Query(ctx context.Context, topic string) (answer string, stale bool, err error) {
	if !validTopic(topic) {
		return "", false, ErrUnknownTopic
	}

	token := s.seq.Add(1)
	answer = s.gateway.ResearchTopic(ctx, topic)
	stale = token != s.seq.Load()
	if stale {
		s.logger.Info("research answer superseded", zap.String("topic", topic))
	}
	return answer, stale, nil
}

func validTopic(topic string) bool {
	for _, t := range ResearchTopics {
		if t == topic {
			return true
		}
	}
	return false
}
