package presence

import (
	"application-service/internal/config"
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// onlinePlayersKey is the set of online player UUIDs maintained by the proxy.
	onlinePlayersKey = "online_players"

	// playerChatChannelFormat is the pub/sub channel the proxy subscribes to
	// for direct player messages.
	playerChatChannelFormat = "chat:player:%s"
)

var _ Sink = (*redisSink)(nil)

type redisSink struct {
	logger *zap.SugaredLogger
	client *redis.Client
}

func NewRedisSink(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg config.RedisConfig) Sink {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
	})

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := client.Close(); err != nil {
			logger.Errorw("failed to close redis client", "error", err)
		}
	}()

	return &redisSink{
		logger: logger,
		client: client,
	}
}

func (r *redisSink) IsOnline(ctx context.Context, playerId uuid.UUID) (bool, error) {
	online, err := r.client.SIsMember(ctx, onlinePlayersKey, playerId.String()).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check presence: %w", err)
	}
	return online, nil
}

func (r *redisSink) Notify(ctx context.Context, playerId uuid.UUID, message string) error {
	channel := fmt.Sprintf(playerChatChannelFormat, playerId)
	if err := r.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}
