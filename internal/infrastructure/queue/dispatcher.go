package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/jaaago/civic-portal/internal/core/ports"
	"github.com/jaaago/civic-portal/internal/pkg/metrics"
)

var (
	ErrQueueFull = errors.New("chat queue is full")
	ErrStopped   = errors.New("chat queue is stopped")
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes chat reply jobs to a fixed set of workers using
// consistent hashing on the conversation id, so the replies of one
// conversation are produced in order.
type Dispatcher struct {
	workers []chan ports.ChatJob
	replier ports.ChatReplier
	log     zerolog.Logger
	stopped atomic.Bool
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, replier ports.ChatReplier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ChatJob, numWorkers),
		replier: replier,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ChatJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled,
// and from then on Enqueue rejects every job.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
	context.AfterFunc(ctx, func() { d.stopped.Store(true) })
}

// Enqueue hands a job to the worker responsible for its conversation. It
// never blocks: a full shard, or a dispatcher whose workers have stopped,
// rejects the job with ErrQueueFull or ErrStopped.
func (d *Dispatcher) Enqueue(job ports.ChatJob) error {
	if d.stopped.Load() {
		return ErrStopped
	}
	idx := d.shardIndex(job.ConversationID)
	select {
	case d.workers[idx] <- job:
	default:
		metrics.ChatJobsRejectedTotal.Inc()
		return ErrQueueFull
	}
	metrics.ChatQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	return nil
}

// shardIndex maps a conversation id deterministically to a worker index.
func (d *Dispatcher) shardIndex(conversationID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(conversationID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ChatJob) {
	depth := metrics.ChatQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))

			start := time.Now()
			topic, err := d.replier.Reply(ctx, job)
			metrics.ChatRepliesTotal.WithLabelValues(topic).Inc()
			metrics.ChatReplyDuration.WithLabelValues(topic).Observe(time.Since(start).Seconds())
			if err != nil {
				d.log.Error().Err(err).
					Str("conversation_id", job.ConversationID).
					Int("worker_id", id).
					Msg("chat reply failed")
			}
		}
	}
}
