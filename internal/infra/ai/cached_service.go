package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"portfolio/internal/domain/service"

	"github.com/patrickmn/go-cache"
)

// CachedChatService remembers answers per prompt for a fixed TTL.
type CachedChatService struct {
	next     service.ChatService
	cache    *cache.Cache
	recorder service.ActivityRecorder
}

// NewCachedChatService wraps next. A non-positive ttl disables caching but
// answers are still counted on recorder.
func NewCachedChatService(next service.ChatService, ttl time.Duration, recorder service.ActivityRecorder) *CachedChatService {
	s := &CachedChatService{
		next:     next,
		recorder: recorder,
	}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}

	return s
}

func (s *CachedChatService) Generate(ctx context.Context, prompt service.ChatPrompt) (string, error) {
	key := cacheKey(prompt)
	if s.cache != nil {
		if cached, found := s.cache.Get(key); found {
			if text, ok := cached.(string); ok {
				s.answered(ctx, true)

				return text, nil
			}
		}
	}

	text, err := s.next.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		s.cache.Set(key, text, cache.DefaultExpiration)
	}
	s.answered(ctx, false)

	return text, nil
}

func (s *CachedChatService) answered(ctx context.Context, cached bool) {
	if s.recorder != nil {
		s.recorder.ChatAnswered(ctx, cached)
	}
}

func cacheKey(prompt service.ChatPrompt) string {
	sum := sha256.Sum256([]byte(prompt.SystemInstruction + "\x00" + prompt.Query))

	return hex.EncodeToString(sum[:])
}
