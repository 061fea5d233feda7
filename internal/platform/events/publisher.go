package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// CommissionRuleChannel is the pub/sub channel carrying commission rule changes.
// Transfer pricing screens subscribe to it so quoted commission never lags a
// rule edit by more than the propagation delay.
const CommissionRuleChannel = "commission_rules.changed"

// CommissionRuleEvent describes a change to an office's commission rules.
type CommissionRuleEvent struct {
	Action   string    `json:"action"` // "upserted" or "deleted"
	OfficeID string    `json:"officeID"`
	RuleID   string    `json:"ruleID"`
	City     string    `json:"city,omitempty"`
	At       time.Time `json:"at"`
}

// Publisher broadcasts domain events to interested consumers.
type Publisher interface {
	PublishCommissionRuleEvent(ctx context.Context, event CommissionRuleEvent) error
}

// RedisPublisher publishes events over Redis pub/sub.
type RedisPublisher struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisPublisher creates a publisher on top of an existing Redis client.
func NewRedisPublisher(client *redis.Client, logger *slog.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, logger: logger}
}

func (p *RedisPublisher) PublishCommissionRuleEvent(ctx context.Context, event CommissionRuleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal commission rule event: %w", err)
	}
	if err := p.client.Publish(ctx, CommissionRuleChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish commission rule event: %w", err)
	}
	p.logger.DebugContext(ctx, "Published commission rule event",
		slog.String("action", event.Action),
		slog.String("office_id", event.OfficeID),
	)
	return nil
}

// NoopPublisher discards events. Used when Redis is not configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishCommissionRuleEvent(context.Context, CommissionRuleEvent) error {
	return nil
}

var (
	_ Publisher = (*RedisPublisher)(nil)
	_ Publisher = NoopPublisher{}
)
