package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock records calls in memory. It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	ResultsSubmitted map[string]int
	PhaseTransitions map[string]int
	StoreOperations  map[string]int
	PublishFailures  map[string]int
}

func NewMock() *Mock {
	return &Mock{
		ResultsSubmitted: make(map[string]int),
		PhaseTransitions: make(map[string]int),
		StoreOperations:  make(map[string]int),
		PublishFailures:  make(map[string]int),
	}
}

func (m *Mock) IncResultSubmitted(kind, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResultsSubmitted[kind+"/"+outcome]++
}

func (m *Mock) IncPhaseTransition(phase string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PhaseTransitions[phase]++
}

func (m *Mock) ObserveStoreDuration(operation string, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoreOperations[operation]++
}

func (m *Mock) IncPublishFailed(sink string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishFailures[sink]++
}
