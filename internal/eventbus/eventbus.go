package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/charmbracelet/log"

	"suggestbox/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSelectionChanged = domain.EventSelectionChanged
	EventQueryChanged     = domain.EventQueryChanged
	EventSearchSubmitted  = domain.EventSearchSubmitted
	EventResultsRefreshed = domain.EventResultsRefreshed
	EventDropdownOpened   = domain.EventDropdownOpened
	EventDropdownClosed   = domain.EventDropdownClosed
	EventCursorMoved      = domain.EventCursorMoved
	EventError            = domain.EventError
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
)

// Re-export domain event types
type SelectionChangedEvent = domain.SelectionChangedEvent
type QueryChangedEvent = domain.QueryChangedEvent
type SearchSubmittedEvent = domain.SearchSubmittedEvent
type ResultsRefreshedEvent = domain.ResultsRefreshedEvent
type DropdownOpenedEvent = domain.DropdownOpenedEvent
type DropdownClosedEvent = domain.DropdownClosedEvent
type CursorMovedEvent = domain.CursorMovedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// NullBus drops every event. Useful for components that run without
// outbound collaborators.
type NullBus struct{}

func (NullBus) Publish(DomainEvent) {}

func (NullBus) Subscribe(EventType, EventHandler) func() { return func() {} }

type subscription struct {
	id      uint64
	handler EventHandler
}

// Bus is the asynchronous EventBus implementation
type Bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus and starts its dispatcher
func New() *Bus {
	b := &Bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. Events are dropped when
// the queue is full.
func (b *Bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventCursorMoved, EventQueryChanged:
		// too chatty for the log
	default:
		log.Debug("publishing event", "type", event.Type())
	}

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		log.Warn("event bus channel full, dropping event", "type", event.Type())
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *Bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Queued events that were not yet dispatched
// are discarded.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

func (b *Bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			handlers := make([]EventHandler, len(subs))
			for i, s := range subs {
				handlers[i] = s.handler
			}
			b.mu.RUnlock()

			for _, handler := range handlers {
				go func(h EventHandler, event DomainEvent) {
					defer func() {
						if r := recover(); r != nil {
							log.Error("event handler panic", "type", event.Type(), "panic", r, "stack", string(debug.Stack()))
						}
					}()
					h(event)
				}(handler, event)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
