package events

import (
	"fmt"
	"sync"
)

// InMemoryEventDispatcher fans events out to subscribed handlers on a
// background goroutine. Publishing never blocks request handling; a full
// buffer surfaces as an error instead.
type InMemoryEventDispatcher struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
	running  bool
	stopCh   chan struct{}
	eventCh  chan DomainEvent
	wg       sync.WaitGroup
}

// NewInMemoryEventDispatcher creates a new in-memory event dispatcher
func NewInMemoryEventDispatcher(bufferSize int) *InMemoryEventDispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}

	return &InMemoryEventDispatcher{
		handlers: make(map[string][]EventHandler),
		stopCh:   make(chan struct{}),
		eventCh:  make(chan DomainEvent, bufferSize),
	}
}

// Publish publishes a single event
func (d *InMemoryEventDispatcher) Publish(event DomainEvent) error {
	if !d.running {
		return fmt.Errorf("event dispatcher is not running")
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return fmt.Errorf("event channel is full")
	}
}

// Subscribe registers a handler for a specific event type
func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

// Start begins dispatching events to handlers.
func (d *InMemoryEventDispatcher) Start() error {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return fmt.Errorf("event dispatcher already running")
	}
	d.running = true
	d.mu.Unlock()

	d.wg.Add(1)
	go d.dispatchLoop()
	return nil
}

// Stop drains pending events and stops the dispatcher.
func (d *InMemoryEventDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return nil
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	return nil
}

func (d *InMemoryEventDispatcher) dispatchLoop() {
	defer d.wg.Done()

	for {
		select {
		case event := <-d.eventCh:
			d.dispatch(event)
		case <-d.stopCh:
			// Drain remaining events before exiting.
			for {
				select {
				case event := <-d.eventCh:
					d.dispatch(event)
				default:
					return
				}
			}
		}
	}
}

func (d *InMemoryEventDispatcher) dispatch(event DomainEvent) {
	d.mu.RLock()
	handlers := d.handlers[event.GetEventType()]
	d.mu.RUnlock()

	for _, handler := range handlers {
		if handler.CanHandle(event.GetEventType()) {
			// Handler errors are the handler's concern; dispatching continues.
			_ = handler.Handle(event)
		}
	}
}
