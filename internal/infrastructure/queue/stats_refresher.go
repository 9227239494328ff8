package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/kanbanhq/board-api/internal/api/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// StatsRecomputer rebuilds the cached counters for one board.
type StatsRecomputer interface {
	RecomputeStats(ctx context.Context, boardID string) error
}

// StatsRefresher routes board-stats refreshes to a fixed set of workers
// using consistent hashing on the board id, so refreshes for the same board
// are applied in order and never race each other.
type StatsRefresher struct {
	workers []chan string
	service StatsRecomputer
	log     zerolog.Logger
}

// NewStatsRefresher creates a StatsRefresher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewStatsRefresher(numWorkers int, service StatsRecomputer, log zerolog.Logger) *StatsRefresher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &StatsRefresher{
		workers: make([]chan string, numWorkers),
		service: service,
		log:     log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan string, channelBuffer)
	}
	return r
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (r *StatsRefresher) Start(ctx context.Context) {
	for i, ch := range r.workers {
		go r.runWorker(ctx, i, ch)
	}
}

// Enqueue schedules a refresh for the board. Non-blocking up to
// channelBuffer capacity.
func (r *StatsRefresher) Enqueue(boardID string) {
	idx := r.shardIndex(boardID)
	r.workers[idx] <- boardID
	metrics.StatsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(r.workers[idx])))
}

// shardIndex maps a board id deterministically to a worker index.
func (r *StatsRefresher) shardIndex(boardID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(boardID))
	return int(h.Sum32()) % len(r.workers)
}

func (r *StatsRefresher) runWorker(ctx context.Context, id int, ch <-chan string) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case boardID, ok := <-ch:
			if !ok {
				return
			}
			metrics.StatsQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := r.service.RecomputeStats(ctx, boardID); err != nil {
				metrics.StatsRefreshTotal.WithLabelValues("error").Inc()
				r.log.Error().Err(err).
					Str("board_id", boardID).
					Int("worker_id", id).
					Msg("stats refresh failed")
				continue
			}
			metrics.StatsRefreshTotal.WithLabelValues("ok").Inc()
		}
	}
}
