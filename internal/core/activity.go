package core

import (
	"context"
	"time"

	"invoiceease/internal/storage"

	"github.com/rs/zerolog"
)

// ActivityType classifies an activity feed event.
type ActivityType string

const (
	ActivityCreated    ActivityType = "created"
	ActivityEdited     ActivityType = "edited"
	ActivityDownloaded ActivityType = "downloaded"
	ActivityPayment    ActivityType = "payment"
	ActivityClient     ActivityType = "client"
	ActivityEmail      ActivityType = "email"
	ActivityEstimate   ActivityType = "estimate"
)

// maxActivityEvents bounds the feed; older entries are silently dropped.
const maxActivityEvents = 50

// ActivityEvent is one entry of the user's activity timeline.
type ActivityEvent struct {
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
}

// ActivityLog is the append-only bounded event feed. It is keyed by user
// only: switching business profile shows the same feed.
type ActivityLog interface {
	// Record prepends an event with the current timestamp and truncates the
	// feed to the 50 most recent entries.
	Record(ctx context.Context, kind ActivityType, description string) error

	// Events returns the feed, newest first.
	Events(ctx context.Context) ([]ActivityEvent, error)
}

type activityLog struct {
	events *storage.Collection[ActivityEvent]
}

// NewActivityLog constructs an ActivityLog for the given scope's user.
func NewActivityLog(store storage.Store, scope Scope, log zerolog.Logger) ActivityLog {
	return &activityLog{
		events: storage.NewCollection[ActivityEvent](store, scope.activityKey(), log),
	}
}

func (l *activityLog) Record(ctx context.Context, kind ActivityType, description string) error {
	events, err := l.events.Load(ctx)
	if err != nil {
		return err
	}

	event := ActivityEvent{Type: kind, Description: description, Timestamp: time.Now()}
	events = append([]ActivityEvent{event}, events...)
	if len(events) > maxActivityEvents {
		events = events[:maxActivityEvents]
	}
	return l.events.Save(ctx, events)
}

func (l *activityLog) Events(ctx context.Context) ([]ActivityEvent, error) {
	return l.events.Load(ctx)
}
