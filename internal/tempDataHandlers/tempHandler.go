package tempdatahandlers

import "sync"

// Store keeps per-chat scratch values and the chat's conversation state.
type Store struct {
	mu     sync.Mutex
	data   map[int64]map[string]string
	states map[int64]string
}

func NewStore() *Store {
	return &Store{
		data:   make(map[int64]map[string]string),
		states: make(map[int64]string),
	}
}

func (s *Store) SetTemporaryData(userID int64, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.data[userID]; !exists {
		s.data[userID] = make(map[string]string)
	}
	s.data[userID][key] = value
}

// GetTemporaryData returns a copy; missing users get an empty map.
func (s *Store) GetTemporaryData(userID int64) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.data[userID]))
	for k, v := range s.data[userID] {
		out[k] = v
	}
	return out
}

func (s *Store) Get(userID int64, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[userID][key]
	return v, ok
}

func (s *Store) DeleteTemporaryData(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
}

func (s *Store) SetState(userID int64, state string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = state
}

func (s *Store) State(userID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[userID]
}

func (s *Store) ClearState(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}
