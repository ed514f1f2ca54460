// Package realtime turns the change-event stream into cache
// invalidations. It never merges state directly; consumers re-fetch on
// the next read.
package realtime

import (
	"context"
	"log/slog"

	"pinflow/internal/cache"
	"pinflow/internal/events"
)

// Subscription narrows the invalidator to the rows it cares about: a
// table name plus an optional tenant filter. An empty table matches
// every table; an empty tenant matches every tenant.
type Subscription struct {
	Table    string
	TenantID string
}

func (s Subscription) matches(ev events.ChangeEvent) bool {
	if s.Table != "" && s.Table != ev.Table {
		return false
	}
	if s.TenantID != "" && s.TenantID != ev.TenantID {
		return false
	}
	return true
}

// Consumer reads change events from a queue and invalidates the
// dependent cache keys.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler func(events.ChangeEvent)) error
}

type Invalidator struct {
	consumer      Consumer
	store         *cache.Store
	queue         string
	subscriptions []Subscription
	logger        *slog.Logger
}

func NewInvalidator(consumer Consumer, store *cache.Store, queue string, subs []Subscription, logger *slog.Logger) *Invalidator {
	if len(subs) == 0 {
		subs = []Subscription{{}}
	}
	return &Invalidator{
		consumer:      consumer,
		store:         store,
		queue:         queue,
		subscriptions: subs,
		logger:        logger.With("component", "realtime"),
	}
}

// Run blocks until ctx is cancelled.
func (i *Invalidator) Run(ctx context.Context) error {
	i.logger.Info("realtime invalidator started", "queue", i.queue)
	return i.consumer.Consume(ctx, i.queue, i.handle)
}

func (i *Invalidator) handle(ev events.ChangeEvent) {
	for _, sub := range i.subscriptions {
		if !sub.matches(ev) {
			continue
		}
		keys := cache.KeysFor(ev)
		if len(keys) == 0 {
			return
		}
		i.store.Invalidate(keys...)
		i.logger.Debug("invalidated cache keys",
			"table", ev.Table,
			"action", ev.Action,
			"keys", len(keys),
		)
		return
	}
}
