package gochannel

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/bnema/docassist-cli/internal/ports"
	"github.com/google/uuid"
)

const TopicSessionChanged = "session.changed"

var _ ports.SessionPublisher = (*Publisher)(nil)

// SessionEvent is the wire form of a committed session snapshot.
type SessionEvent struct {
	Version       uint64 `json:"version"`
	DocumentID    string `json:"document_id,omitempty"`
	FileName      string `json:"file_name,omitempty"`
	QuizSessionID string `json:"quiz_session_id,omitempty"`
	Messages      int    `json:"messages"`
	Questions     int    `json:"questions"`
	Answered      int    `json:"answered"`
	Cursor        *int   `json:"cursor,omitempty"`
	Busy          bool   `json:"busy"`
	BusyOperation string `json:"busy_operation,omitempty"`
	LastError     string `json:"last_error,omitempty"`
}

func NewSessionEvent(snapshot domain.Session) SessionEvent {
	return SessionEvent{
		Version:       snapshot.Version,
		DocumentID:    snapshot.DocumentID,
		FileName:      snapshot.FileName,
		QuizSessionID: snapshot.QuizSessionID,
		Messages:      len(snapshot.Transcript),
		Questions:     len(snapshot.Questions),
		Answered:      len(snapshot.Answers),
		Cursor:        snapshot.Cursor,
		Busy:          snapshot.Busy,
		BusyOperation: string(snapshot.BusyOperation),
		LastError:     snapshot.LastError,
	}
}

// NewPubSub returns an in-process pub/sub where Publish waits for every
// subscriber to ack, so subscribers see events in publish order.
func NewPubSub(logger watermill.LoggerAdapter) *gochannel.GoChannel {
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	return gochannel.NewGoChannel(
		gochannel.Config{BlockPublishUntilSubscriberAck: true},
		logger,
	)
}

type Publisher struct {
	pubSub *gochannel.GoChannel
	topic  string
}

func NewPublisher(pubSub *gochannel.GoChannel) *Publisher {
	return &Publisher{pubSub: pubSub, topic: TopicSessionChanged}
}

func (p *Publisher) PublishSession(ctx context.Context, snapshot domain.Session) error {
	payload, err := json.Marshal(NewSessionEvent(snapshot))
	if err != nil {
		return fmt.Errorf("encode session event: %w", err)
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	msg.Metadata.Set("version", strconv.FormatUint(snapshot.Version, 10))
	msg.SetContext(ctx)

	if err := p.pubSub.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("publish session event: %w", err)
	}

	return nil
}

// Subscribe delivers decoded session events until ctx is done. Undecodable
// messages are acked and dropped.
func (p *Publisher) Subscribe(ctx context.Context) (<-chan SessionEvent, error) {
	messages, err := p.pubSub.Subscribe(ctx, p.topic)
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s: %w", p.topic, err)
	}

	events := make(chan SessionEvent, 16)
	go func() {
		defer close(events)
		for msg := range messages {
			var event SessionEvent
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				msg.Ack()
				continue
			}
			msg.Ack()

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}

func (p *Publisher) Close() error {
	return p.pubSub.Close()
}
