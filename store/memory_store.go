package store

import "sync"

// memoryStore keeps runs in a process-local map. Suitable for single-process
// deployments and tests; queued runs executed by a separate worker process
// need the redis store instead.
type memoryStore struct {
	runs    map[string]*Run
	runsMux *sync.RWMutex
}

func NewMemoryStore() *memoryStore {
	return &memoryStore{
		runs:    map[string]*Run{},
		runsMux: &sync.RWMutex{},
	}
}

func (s *memoryStore) Save(run *Run) error {
	s.runsMux.Lock()
	s.runs[run.ID] = run
	s.runsMux.Unlock()
	return nil
}

func (s *memoryStore) Find(id string) (*Run, error) {
	s.runsMux.RLock()
	defer s.runsMux.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, ErrRunNotFound
	}
	return run, nil
}
