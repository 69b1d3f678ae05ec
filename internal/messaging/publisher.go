package messaging

import (
	"context"

	"github.com/iryswiki/iryswiki/internal/domain"
)

// Publisher defines the interface for publishing content events to a message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a content event
	PublishEvent(ctx context.Context, event *domain.ContentEvent) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishEvent(context.Context, *domain.ContentEvent) error { return nil }
func (noopPublisher) Close()                                                   {}
