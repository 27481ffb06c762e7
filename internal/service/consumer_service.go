package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"notes-api-be/internal/pkg/logger"
	"notes-api-be/pkg/events"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the note event topic into the structured log,
// keeping an audit trail of mutations without touching the request path.
type consumerService struct {
	subscriber message.Subscriber
	topic      string
	log        logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, topic string, log logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topic:      topic,
		log:        log,
	}
}

func (s *consumerService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	for msg := range messages {
		var evt events.NoteEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			s.log.Warn("events", "malformed note event", map[string]interface{}{
				"error": err.Error(),
			})
			msg.Ack()
			continue
		}

		details := map[string]interface{}{
			"note_id":     evt.NoteId,
			"occurred_at": evt.OccurredAt,
		}
		if evt.UserId != nil {
			details["user_id"] = *evt.UserId
		}
		s.log.Info("events", evt.Type, details)
		msg.Ack()
	}
	return nil
}
