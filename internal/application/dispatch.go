package application

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"translatorbot/internal/domain/entities"
	"translatorbot/internal/ports/output"
)

// Dispatcher serializes all outbound platform sends. Producers enqueue
// without ever blocking; a single consumer drains the queue in strict FIFO
// order, throttled to one send per interval so Discord's rate limits are
// respected. A failed send is logged and dropped; it never halts the queue.
type Dispatcher struct {
	sender  output.ChannelSender
	limiter *rate.Limiter

	mu    sync.Mutex
	queue []entities.OutboundItem
	wake  chan struct{}

	ready     chan struct{}
	readyOnce sync.Once
}

func NewDispatcher(sender output.ChannelSender, perSend time.Duration) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		limiter: rate.NewLimiter(rate.Every(perSend), 1),
		wake:    make(chan struct{}, 1),
		ready:   make(chan struct{}),
	}
}

// Enqueue appends the item to the outbound queue. It never blocks; the queue
// is unbounded.
func (d *Dispatcher) Enqueue(item entities.OutboundItem) {
	d.mu.Lock()
	d.queue = append(d.queue, item)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Ready unblocks the consumer. Items enqueued before the platform connection
// is up accumulate and are sent once Ready is called.
func (d *Dispatcher) Ready() {
	d.readyOnce.Do(func() { close(d.ready) })
}

// ReadySignal is closed once Ready has been called.
func (d *Dispatcher) ReadySignal() <-chan struct{} {
	return d.ready
}

// Len reports the number of items waiting to be sent.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

// Run drains the queue until ctx is cancelled. It does not start sending
// before Ready. Pending items are not drained on shutdown.
func (d *Dispatcher) Run(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-d.ready:
	}

	for {
		item, ok := d.pop()
		if !ok {
			select {
			case <-ctx.Done():
				return
			case <-d.wake:
			}
			continue
		}
		if err := d.limiter.Wait(ctx); err != nil {
			return
		}
		d.send(item)
	}
}

func (d *Dispatcher) pop() (entities.OutboundItem, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.queue) == 0 {
		return entities.OutboundItem{}, false
	}
	item := d.queue[0]
	d.queue = d.queue[1:]
	return item, true
}

func (d *Dispatcher) send(item entities.OutboundItem) {
	var err error
	if item.File != nil {
		err = d.sender.SendFile(item.ChannelID, *item.File)
	} else {
		err = d.sender.SendText(item.ChannelID, item.Text)
	}
	if err != nil {
		log.Printf("⚠️ Delivery to channel %s failed: %v", item.ChannelID, err)
	}
}
