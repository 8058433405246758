package client

import (
	"sync"

	"lookate/internal/domain/entity"

	"github.com/google/uuid"
)

// State describes the delivery mode a client currently runs in. Degraded is
// set when the push channel was unavailable and the client fell back to
// polling.
type State struct {
	Connected bool
	Degraded  bool
}

// sharedState is the merge target both delivery modes write into. Push merges
// incrementally per event, poll replaces wholesale; readers always see the
// latest merged view.
type sharedState struct {
	mu        sync.RWMutex
	locations map[uuid.UUID]entity.UserLocation
	users     map[uuid.UUID]entity.Presence
}

func newSharedState() *sharedState {
	return &sharedState{
		locations: make(map[uuid.UUID]entity.UserLocation),
		users:     make(map[uuid.UUID]entity.Presence),
	}
}

// replaceLocations swaps the whole location view, the poll refresh path.
func (s *sharedState) replaceLocations(locations []entity.UserLocation) {
	next := make(map[uuid.UUID]entity.UserLocation, len(locations))
	for _, l := range locations {
		next[l.UserID] = l
	}

	s.mu.Lock()
	s.locations = next
	s.mu.Unlock()
}

// mergeLocation upserts a single user's location, the push event path.
func (s *sharedState) mergeLocation(location entity.UserLocation) {
	s.mu.Lock()
	s.locations[location.UserID] = location
	s.mu.Unlock()
}

// replaceUsers swaps the whole presence view.
func (s *sharedState) replaceUsers(users []entity.Presence) {
	next := make(map[uuid.UUID]entity.Presence, len(users))
	for _, u := range users {
		next[u.UserID] = u
	}

	s.mu.Lock()
	s.users = next
	s.mu.Unlock()
}

// setUser upserts one user's presence. Offline users stay in the map so
// their last seen time remains visible.
func (s *sharedState) setUser(p entity.Presence) {
	s.mu.Lock()
	s.users[p.UserID] = p
	if !p.IsOnline {
		if loc, ok := s.locations[p.UserID]; ok {
			loc.IsOnline = false
			loc.LastSeen = p.LastSeen
			s.locations[p.UserID] = loc
		}
	}
	s.mu.Unlock()
}

// snapshot returns the merged location view.
func (s *sharedState) snapshot() []entity.UserLocation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.UserLocation, 0, len(s.locations))
	for _, l := range s.locations {
		out = append(out, l)
	}

	return out
}

// connectedUsers returns the currently online users.
func (s *sharedState) connectedUsers() []entity.Presence {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Presence, 0, len(s.users))
	for _, u := range s.users {
		if u.IsOnline {
			out = append(out, u)
		}
	}

	return out
}
