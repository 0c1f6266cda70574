package queue_test

import (
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/influencer-campaign-backend/internal/queue"
)

func newQueue() *queue.InMemoryQueue {
	q := queue.NewInMemoryQueue(zerolog.Nop())
	q.Backoff = func(int) time.Duration { return 0 }
	return q
}

func TestPublishWithoutSubscribers(t *testing.T) {
	q := newQueue()
	assert.Error(t, q.Publish(queue.TopicCampaignCreated, queue.CampaignCreated{CampaignID: "c1"}))
}

func TestPublishDeliversJSON(t *testing.T) {
	q := newQueue()

	got := make(chan queue.CampaignCreated, 1)
	require.NoError(t, q.Subscribe(queue.TopicCampaignCreated, func(payload []byte) error {
		var evt queue.CampaignCreated
		if err := json.Unmarshal(payload, &evt); err != nil {
			return err
		}
		got <- evt
		return nil
	}))

	require.NoError(t, q.Publish(queue.TopicCampaignCreated, queue.CampaignCreated{CampaignID: "c1", SelectedNiches: []string{"travel"}}))
	q.Wait()

	evt := <-got
	assert.Equal(t, "c1", evt.CampaignID)
	assert.Equal(t, []string{"travel"}, evt.SelectedNiches)
}

func TestProcessRetriesThenGivesUp(t *testing.T) {
	q := newQueue()
	q.MaxRetries = 2

	var calls int32
	require.NoError(t, q.Subscribe("t", func([]byte) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("boom")
	}))

	require.NoError(t, q.Publish("t", 1))
	q.Wait()
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestProcessStopsOnSuccess(t *testing.T) {
	q := newQueue()

	var calls int32
	require.NoError(t, q.Subscribe("t", func([]byte) error {
		if atomic.AddInt32(&calls, 1) < 2 {
			return errors.New("transient")
		}
		return nil
	}))

	require.NoError(t, q.Publish("t", 1))
	q.Wait()
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestLogCampaignCreatedAcceptsEvents(t *testing.T) {
	q := newQueue()
	require.NoError(t, queue.LogCampaignCreated(q, zerolog.Nop()))

	assert.NoError(t, q.Publish(queue.TopicCampaignCreated, queue.CampaignCreated{CampaignID: "c1"}))
	q.Wait()
}
