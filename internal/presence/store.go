// Package presence tracks which users are currently online and fans out
// online/offline transitions to interested transports.
package presence

import (
	"log/slog"
	"sync"
	"time"

	"lookate/internal/domain/entity"

	"github.com/google/uuid"
)

// EventType marks a presence transition.
type EventType string

const (
	EventOnline  EventType = "user:online"
	EventOffline EventType = "user:offline"
)

// Event is delivered to subscribers on every presence transition.
type Event struct {
	Type     EventType
	Presence entity.Presence
}

const subscriberBuffer = 16

// Store is an in-memory presence registry. All methods are safe for
// concurrent use.
type Store struct {
	mu          sync.RWMutex
	users       map[uuid.UUID]entity.Presence
	subscribers map[int]chan Event
	nextSubID   int

	logger *slog.Logger
}

// NewStore creates an empty presence registry.
func NewStore(logger *slog.Logger) *Store {
	return &Store{
		users:       make(map[uuid.UUID]entity.Presence),
		subscribers: make(map[int]chan Event),
		logger:      logger,
	}
}

// MarkOnline records a user as online and refreshes their last activity.
// An EventOnline is emitted only when the user was not already online, so
// duplicate connects do not spam subscribers.
func (s *Store) MarkOnline(userID uuid.UUID, name, avatar string, at time.Time) {
	s.mu.Lock()

	prev, existed := s.users[userID]
	p := entity.Presence{
		UserID:     userID,
		UserName:   name,
		UserAvatar: avatar,
		LastSeen:   at,
		IsOnline:   true,
	}
	s.users[userID] = p

	transition := !existed || !prev.IsOnline
	s.mu.Unlock()

	if transition {
		s.publish(Event{Type: EventOnline, Presence: p})
	}
}

// MarkOffline records a user as offline, keeping their last seen timestamp.
// Emits EventOffline only when the user was online.
func (s *Store) MarkOffline(userID uuid.UUID, at time.Time) {
	s.mu.Lock()

	p, ok := s.users[userID]
	if !ok || !p.IsOnline {
		s.mu.Unlock()
		return
	}

	p.IsOnline = false
	p.LastSeen = at
	s.users[userID] = p
	s.mu.Unlock()

	s.publish(Event{Type: EventOffline, Presence: p})
}

// Heartbeat refreshes a user's last activity without changing their
// online flag. Unknown users are ignored.
func (s *Store) Heartbeat(userID uuid.UUID, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.users[userID]
	if !ok {
		return
	}
	if at.After(p.LastSeen) {
		p.LastSeen = at
		s.users[userID] = p
	}
}

// Get returns the user's presence entry, if any.
func (s *Store) Get(userID uuid.UUID) (entity.Presence, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.users[userID]

	return p, ok
}

// Online reports whether the user is currently marked online.
func (s *Store) Online(userID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.users[userID]
	return ok && p.IsOnline
}

// Snapshot returns the presence of every currently online user.
func (s *Store) Snapshot() []entity.Presence {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Presence, 0, len(s.users))
	for _, p := range s.users {
		if p.IsOnline {
			out = append(out, p)
		}
	}

	return out
}

// Subscribe registers a transition listener. The returned cancel function
// must be called to release the subscription; the channel is closed by it.
func (s *Store) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++

	ch := make(chan Event, subscriberBuffer)
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}

	return ch, cancel
}

// publish delivers an event to every subscriber without blocking. Slow
// subscribers with a full buffer miss the event.
func (s *Store) publish(ev Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, ch := range s.subscribers {
		select {
		case ch <- ev:
		default:
			s.logger.Warn("presence subscriber buffer full, dropping event",
				slog.Int("subscriber", id),
				slog.String("event", string(ev.Type)),
				slog.String("userID", ev.Presence.UserID.String()))
		}
	}
}
