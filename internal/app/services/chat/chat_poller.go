package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"doorspital-service/internal/app/contracts"
	"doorspital-service/internal/pkg/constvars"
	"doorspital-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// watchTTL is how long a room stays on the poll list after it was last opened.
const watchTTL = 2 * time.Minute

type roomWatch struct {
	token      string
	lastOpened time.Time
}

// Poller keeps the message cache warm for rooms that are currently open in a
// client. It refreshes each watched room on a fixed interval, with a rate
// limiter capping the aggregate upstream pressure regardless of how many rooms
// are being watched.
type Poller struct {
	ChatClient contracts.ChatBackendClient
	RedisRepo  contracts.RedisRepository
	Log        *zap.Logger

	interval time.Duration
	cacheExp time.Duration
	limiter  *rate.Limiter

	mu      sync.Mutex
	watches map[string]roomWatch

	stopOnce sync.Once
	stop     chan struct{}
}

func NewPoller(chatClient contracts.ChatBackendClient, redisRepo contracts.RedisRepository, interval time.Duration, pollRatePerSecond int, logger *zap.Logger) *Poller {
	return &Poller{
		ChatClient: chatClient,
		RedisRepo:  redisRepo,
		Log:        logger,
		interval:   interval,
		cacheExp:   2 * interval,
		limiter:    rate.NewLimiter(rate.Limit(pollRatePerSecond), pollRatePerSecond),
		watches:    make(map[string]roomWatch),
		stop:       make(chan struct{}),
	}
}

// Watch marks a room as open. Watching an already watched room refreshes its
// TTL and its token.
func (p *Poller) Watch(roomID, token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.watches[roomID] = roomWatch{token: token, lastOpened: time.Now()}
}

func (p *Poller) Unwatch(roomID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.watches, roomID)
}

func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stop:
			return
		case <-ticker.C:
			p.pollOnce(ctx)
		}
	}
}

func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
}

func (p *Poller) pollOnce(ctx context.Context) {
	p.mu.Lock()
	due := make(map[string]roomWatch, len(p.watches))
	for roomID, watch := range p.watches {
		if time.Since(watch.lastOpened) > watchTTL {
			delete(p.watches, roomID)
			continue
		}
		due[roomID] = watch
	}
	p.mu.Unlock()

	for roomID, watch := range due {
		if !p.limiter.Allow() {
			// Skip the rest of this round rather than queueing; the next tick
			// picks them up again.
			return
		}
		p.refreshRoom(ctx, roomID, watch.token)
	}
}

func (p *Poller) refreshRoom(ctx context.Context, roomID, token string) {
	messages, err := p.ChatClient.FindMessages(ctx, token, roomID)
	if err != nil {
		p.Log.Warn("Chat poll failed",
			zap.String(constvars.LoggingRoomIDKey, roomID),
			zap.Error(err),
		)
		return
	}

	if err := p.RedisRepo.Set(ctx, messagesCacheKey(roomID), messages, p.cacheExp); err != nil {
		p.Log.Warn("Chat cache write failed",
			zap.String(constvars.LoggingRoomIDKey, roomID),
			zap.Error(err),
		)
	}
}

func messagesCacheKey(roomID string) string {
	return fmt.Sprintf("%s:%s", constvars.RedisKeyChatMessages, roomID)
}

func decodeCachedMessages(data string) []responses.ChatMessage {
	if data == "" {
		return nil
	}
	var cached []responses.ChatMessage
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		return nil
	}
	return cached
}
