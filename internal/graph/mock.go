package graph

import (
	"context"
	"sync"
	"time"

	"github.com/manoharask/msme/internal/types"
)

// MockCall represents a recorded method call on the mock graph client.
type MockCall struct {
	Method    string
	Args      []interface{}
	Timestamp time.Time
}

// queryStep is one scripted outcome for a Query or Write call.
type queryStep struct {
	result QueryResult
	err    error
}

// MockGraphClient is a mock implementation of GraphClient for testing.
// It provides configurable responses and tracks all method calls for verification.
type MockGraphClient struct {
	mu sync.RWMutex

	// State
	connected    bool
	healthStatus types.HealthStatus
	calls        []MockCall

	// Configurable responses
	querySteps   []queryStep
	writeSteps   []queryStep
	queryError   error
	writeError   error
	connectError error
	closeError   error
}

// NewMockGraphClient creates a new mock graph client for testing.
// The mock starts connected so tests can exercise queries directly.
func NewMockGraphClient() *MockGraphClient {
	return &MockGraphClient{
		connected:    true,
		healthStatus: types.NewHealthStatus(types.HealthStateHealthy, "mock graph client"),
		calls:        make([]MockCall, 0),
		querySteps:   make([]queryStep, 0),
		writeSteps:   make([]queryStep, 0),
	}
}

// Connect records the call and simulates connection.
func (m *MockGraphClient) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Connect")

	if m.connectError != nil {
		return m.connectError
	}

	m.connected = true
	return nil
}

// Close records the call and simulates disconnection.
func (m *MockGraphClient) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Close")

	if m.closeError != nil {
		return m.closeError
	}

	m.connected = false
	return nil
}

// Health records the call and returns the configured health status.
func (m *MockGraphClient) Health(ctx context.Context) types.HealthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Health")

	if !m.connected {
		return types.Unhealthy("not connected")
	}

	return m.healthStatus
}

// Query records the call and returns the next scripted result (FIFO).
func (m *MockGraphClient) Query(ctx context.Context, cypher string, params map[string]any) (QueryResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Query", cypher, params)

	if !m.connected {
		return QueryResult{}, types.NewError(ErrCodeGraphConnectionClosed, "not connected")
	}

	if len(m.querySteps) > 0 {
		step := m.querySteps[0]
		m.querySteps = m.querySteps[1:]
		return step.result, step.err
	}

	if m.queryError != nil {
		return QueryResult{}, m.queryError
	}

	return QueryResult{
		Records: []map[string]any{},
		Columns: []string{},
		Summary: QuerySummary{},
	}, nil
}

// Write records the call and returns the next scripted write result (FIFO).
func (m *MockGraphClient) Write(ctx context.Context, cypher string, params map[string]any) (QueryResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record("Write", cypher, params)

	if !m.connected {
		return QueryResult{}, types.NewError(ErrCodeGraphConnectionClosed, "not connected")
	}

	if len(m.writeSteps) > 0 {
		step := m.writeSteps[0]
		m.writeSteps = m.writeSteps[1:]
		return step.result, step.err
	}

	if m.writeError != nil {
		return QueryResult{}, m.writeError
	}

	return QueryResult{
		Records: []map[string]any{},
		Columns: []string{},
		Summary: QuerySummary{},
	}, nil
}

// record appends a call entry; caller must hold the lock.
func (m *MockGraphClient) record(method string, args ...interface{}) {
	m.calls = append(m.calls, MockCall{
		Method:    method,
		Args:      args,
		Timestamp: time.Now(),
	})
}

// AddQueryResult queues a successful Query result.
func (m *MockGraphClient) AddQueryResult(result QueryResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.querySteps = append(m.querySteps, queryStep{result: result})
}

// AddQueryError queues a failing Query outcome.
func (m *MockGraphClient) AddQueryError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.querySteps = append(m.querySteps, queryStep{err: err})
}

// AddWriteResult queues a successful Write result.
func (m *MockGraphClient) AddWriteResult(result QueryResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeSteps = append(m.writeSteps, queryStep{result: result})
}

// SetQueryError configures Query() to return an error once the scripted
// results are exhausted.
func (m *MockGraphClient) SetQueryError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryError = err
}

// SetWriteError configures Write() to return an error once the scripted
// results are exhausted.
func (m *MockGraphClient) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeError = err
}

// SetConnectError configures Connect() to return an error.
func (m *MockGraphClient) SetConnectError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectError = err
}

// SetCloseError configures Close() to return an error.
func (m *MockGraphClient) SetCloseError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeError = err
}

// SetHealthStatus configures what Health() should return.
func (m *MockGraphClient) SetHealthStatus(status types.HealthStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.healthStatus = status
}

// GetCalls returns all recorded method calls.
func (m *MockGraphClient) GetCalls() []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]MockCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// GetCallsByMethod returns all calls to a specific method.
func (m *MockGraphClient) GetCallsByMethod(method string) []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]MockCall, 0)
	for _, call := range m.calls {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

// Reset clears all recorded calls and scripted responses.
func (m *MockGraphClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = m.calls[:0]
	m.querySteps = m.querySteps[:0]
	m.writeSteps = m.writeSteps[:0]
	m.queryError = nil
	m.writeError = nil
}
