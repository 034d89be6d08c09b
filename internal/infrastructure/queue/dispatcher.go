package queue

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/buy2send/shipping-rates/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// ErrDispatcherStopped is reported for batch items that no worker will run
// because the pool has shut down.
var ErrDispatcherStopped = errors.New("batch dispatcher stopped")

type result struct {
	index int
	item  ports.QuoteBatchItem
}

type job struct {
	ctx     context.Context
	index   int
	input   ports.QuoteInput
	results chan<- result
}

// Dispatcher prices quotes on a fixed set of long-lived workers so a large
// batch cannot spawn unbounded goroutines.
type Dispatcher struct {
	jobs      chan job
	workers   int
	service   ports.QuoteService
	log       zerolog.Logger
	startOnce sync.Once
	stopped   chan struct{}
}

// NewDispatcher creates a Dispatcher with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.QuoteService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Dispatcher{
		jobs:    make(chan job, channelBuffer),
		workers: numWorkers,
		service: service,
		log:     log,
		stopped: make(chan struct{}),
	}
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled;
// once all of them have returned, pending and future batches fail fast with
// ErrDispatcherStopped. Only the first call has an effect.
func (d *Dispatcher) Start(ctx context.Context) {
	d.startOnce.Do(func() {
		var wg sync.WaitGroup
		for i := 0; i < d.workers; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				d.runWorker(ctx, id)
			}(i)
		}
		go func() {
			wg.Wait()
			close(d.stopped)
		}()
	})
}

// QuoteBatch prices every input and returns the outcomes in input order.
// Items still unpriced when the request context ends carry the context error;
// items stranded by a pool shutdown carry ErrDispatcherStopped.
func (d *Dispatcher) QuoteBatch(ctx context.Context, inputs []ports.QuoteInput) []ports.QuoteBatchItem {
	out := make([]ports.QuoteBatchItem, len(inputs))
	done := make([]bool, len(inputs))
	// Buffered to len(inputs) so workers never block on a batch that gave up.
	results := make(chan result, len(inputs))

	pending := 0
	var abort error
	for i, in := range inputs {
		if abort == nil {
			select {
			case d.jobs <- job{ctx: ctx, index: i, input: in, results: results}:
				pending++
				continue
			case <-ctx.Done():
				abort = ctx.Err()
			case <-d.stopped:
				abort = ErrDispatcherStopped
			}
		}
		out[i] = ports.QuoteBatchItem{Err: abort}
		done[i] = true
	}

	for pending > 0 {
		select {
		case r := <-results:
			out[r.index] = r.item
			done[r.index] = true
			pending--
		case <-ctx.Done():
			return fillPending(out, done, ctx.Err())
		case <-d.stopped:
			// Workers may have finished jobs just before stopping.
			for drained := false; !drained; {
				select {
				case r := <-results:
					out[r.index] = r.item
					done[r.index] = true
				default:
					drained = true
				}
			}
			return fillPending(out, done, ErrDispatcherStopped)
		}
	}
	return out
}

func fillPending(out []ports.QuoteBatchItem, done []bool, err error) []ports.QuoteBatchItem {
	for i := range out {
		if !done[i] {
			out[i] = ports.QuoteBatchItem{Err: err}
		}
	}
	return out
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	for {
		// Cancellation wins over queued work.
		if ctx.Err() != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case j := <-d.jobs:
			d.process(id, j)
		}
	}
}

func (d *Dispatcher) process(id int, j job) {
	if err := j.ctx.Err(); err != nil {
		j.results <- result{index: j.index, item: ports.QuoteBatchItem{Err: err}}
		return
	}

	res, err := d.service.Quote(j.ctx, j.input)
	if err != nil {
		d.log.Debug().Err(err).
			Int("worker_id", id).
			Int("index", j.index).
			Msg("batch quote failed")
	}
	j.results <- result{index: j.index, item: ports.QuoteBatchItem{Result: res, Err: err}}
}
