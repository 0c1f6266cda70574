package queue

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// TopicCampaignCreated carries CampaignCreated events to the creator
// matcher, which lives outside this service.
const TopicCampaignCreated = "campaign.created"

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload []byte) error) error
}

// CampaignCreated is published once a campaign row exists.
type CampaignCreated struct {
	CampaignID     string   `json:"campaign_id"`
	ProductID      string   `json:"product_id"`
	UserID         string   `json:"user_id"`
	Mode           string   `json:"mode"`
	SelectedNiches []string `json:"selected_niches"`
}

// InMemoryQueue delivers to in-process subscribers with retry.
type InMemoryQueue struct {
	mu         sync.Mutex
	handlers   map[string][]func(payload []byte) error
	log        zerolog.Logger
	MaxRetries int
	Backoff    func(attempt int) time.Duration
	wg         sync.WaitGroup
}

func NewInMemoryQueue(log zerolog.Logger) *InMemoryQueue {
	return &InMemoryQueue{
		handlers:   make(map[string][]func(payload []byte) error),
		log:        log,
		MaxRetries: 3,
		Backoff: func(attempt int) time.Duration {
			return time.Duration(attempt*500) * time.Millisecond
		},
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Topic      string
	Body       []byte
	RetryCount int
	MaxRetries int
}

// Publish encodes payload as JSON and hands it to every subscriber.
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", topic, err)
	}

	q.mu.Lock()
	handlers := append([]func([]byte) error{}, q.handlers[topic]...)
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		job := JobPayload{Topic: topic, Body: body, MaxRetries: q.MaxRetries}
		q.wg.Add(1)
		go q.processJob(handler, job)
	}
	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload []byte) error, job JobPayload) {
	defer q.wg.Done()

	for {
		err := handler(job.Body)
		if err == nil {
			q.log.Debug().Str("topic", job.Topic).Msg("job processed")
			return
		}

		job.RetryCount++
		q.log.Warn().Err(err).Str("topic", job.Topic).
			Int("attempt", job.RetryCount).Int("max_retries", job.MaxRetries).
			Msg("job failed")

		if job.RetryCount > job.MaxRetries {
			q.log.Error().Str("topic", job.Topic).Msg("job permanently failed")
			return
		}
		time.Sleep(q.Backoff(job.RetryCount))
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload []byte) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// Wait blocks until every published job has finished.
func (q *InMemoryQueue) Wait() {
	q.wg.Wait()
}

// LogCampaignCreated subscribes a handler that records campaign events.
// It stands in for the matcher when no broker is configured.
func LogCampaignCreated(q Queue, log zerolog.Logger) error {
	return q.Subscribe(TopicCampaignCreated, func(payload []byte) error {
		var evt CampaignCreated
		if err := json.Unmarshal(payload, &evt); err != nil {
			log.Warn().Err(err).Msg("invalid campaign.created payload")
			return nil // retrying won't fix it
		}
		log.Info().
			Str("campaign_id", evt.CampaignID).
			Str("user_id", evt.UserID).
			Strs("niches", evt.SelectedNiches).
			Msg("campaign ready for matching")
		return nil
	})
}

var _ Queue = (*InMemoryQueue)(nil)
