package todo

import "sync"

// Listener is invoked after every dispatch with the new state and the
// action that produced it.
type Listener func(state AppState, action Action)

type subscription struct {
	id int
	fn Listener
}

// Store holds the current AppState and is the only path through which it
// changes. Dispatch is synchronous: the reducer runs and every listener is
// notified before Dispatch returns.
type Store struct {
	reducer Reducer

	mu         sync.Mutex
	state      AppState
	listeners  []subscription
	nextSubID  int
	dispatched uint64
}

// NewStore creates a store starting from initial. A nil reducer defaults to
// ReduceApp.
func NewStore(reducer Reducer, initial AppState) *Store {
	if reducer == nil {
		reducer = ReduceApp
	}
	return &Store{
		reducer: reducer,
		state:   initial,
	}
}

// State returns the current state.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatched returns the number of actions applied so far.
func (s *Store) Dispatched() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatched
}

// Dispatch applies action to the current state, replaces it with the
// result and notifies listeners in subscription order. Any non-nil action
// is accepted; a nil action is ignored and listeners are not called.
func (s *Store) Dispatch(action Action) {
	if action == nil {
		return
	}

	next, subs := s.reduce(action)
	for _, sub := range subs {
		sub.fn(next, action)
	}
}

// reduce applies action under the lock and returns the new state with a
// snapshot of the current listeners.
func (s *Store) reduce(action Action) (AppState, []subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.reducer(s.state, action)
	s.dispatched++

	subs := make([]subscription, len(s.listeners))
	copy(subs, s.listeners)
	return s.state, subs
}

// Subscribe registers fn to be called after every dispatch. The returned
// function removes the listener; calling it more than once is a no-op.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *Store) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.listeners {
		if sub.id == id {
			// Build a new slice so an in-flight notification keeps its copy.
			next := make([]subscription, 0, len(s.listeners)-1)
			next = append(next, s.listeners[:i]...)
			s.listeners = append(next, s.listeners[i+1:]...)
			return
		}
	}
}
