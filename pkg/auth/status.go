package auth

import "fmt"

// Status is the session lifecycle state: Anonymous -> Authenticating ->
// Authenticated -> Refreshing -> Authenticated. Every state can exit to
// Anonymous (logout, unrecoverable 401, failed refresh).
type Status string

const (
	StatusAnonymous      Status = "anonymous"
	StatusAuthenticating Status = "authenticating"
	StatusAuthenticated  Status = "authenticated"
	StatusRefreshing     Status = "refreshing"
)

// transitions lists the permitted next states per state, the exit to
// Anonymous excluded since it is always allowed.
var transitions = map[Status][]Status{
	StatusAnonymous:      {StatusAuthenticating},
	StatusAuthenticating: {StatusAuthenticated},
	StatusAuthenticated:  {StatusAuthenticating, StatusRefreshing},
	StatusRefreshing:     {StatusAuthenticated},
}

// canTransition reports whether moving from s to next is permitted.
func (s Status) canTransition(next Status) bool {
	if next == StatusAnonymous {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// begin atomically moves the service into next, returning the state it was
// in so a failed operation can settle back.
func (s *Service) begin(next Status) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.status
	if !prev.canTransition(next) {
		return prev, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, prev, next)
	}
	s.status = next
	return prev, nil
}

// settle moves from "from" to "to" only when the service is still in
// "from". A concurrent logout that already forced Anonymous is never
// clobbered by a finishing operation.
func (s *Service) settle(from, to Status) {
	s.mu.Lock()
	if s.status == from {
		s.status = to
	}
	s.mu.Unlock()
}

func (s *Service) setStatus(status Status) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// Status returns the current lifecycle state.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
