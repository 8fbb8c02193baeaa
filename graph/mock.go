package graph

import (
	"context"
	"sync"
	"time"
)

// MockCall records one method invocation on the mock client.
type MockCall struct {
	Method    string
	Cypher    string
	Params    map[string]any
	Timestamp time.Time
}

// MockClient is an in-memory Client for testing. Responses are
// configured up front; every call is recorded for verification.
type MockClient struct {
	mu sync.RWMutex

	connected bool
	calls     []MockCall

	// Configurable responses. readResults are returned in order, one
	// per Read call; when exhausted the last entry repeats.
	readResults  []Result
	readIndex    int
	writeResult  Result
	readError    error
	writeError   error
	connectError error
	verifyError  error
}

// NewMockClient creates a mock client with empty results.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// SetReadResults configures the results returned by successive Read calls.
func (m *MockClient) SetReadResults(results ...Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readResults = results
	m.readIndex = 0
}

// SetReadError configures Read to fail with err.
func (m *MockClient) SetReadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readError = err
}

// SetWriteResult configures the result returned by Write calls.
func (m *MockClient) SetWriteResult(result Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeResult = result
}

// SetWriteError configures Write to fail with err.
func (m *MockClient) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeError = err
}

// SetConnectError configures Connect to fail with err.
func (m *MockClient) SetConnectError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectError = err
}

// SetVerifyError configures Verify to fail with err.
func (m *MockClient) SetVerifyError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verifyError = err
}

// Calls returns a copy of the recorded calls.
func (m *MockClient) Calls() []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	calls := make([]MockCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// LastCall returns the most recent recorded call and true, or false
// when nothing has been called yet.
func (m *MockClient) LastCall() (MockCall, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.calls) == 0 {
		return MockCall{}, false
	}
	return m.calls[len(m.calls)-1], true
}

func (m *MockClient) record(method, cypher string, params map[string]any) {
	m.calls = append(m.calls, MockCall{
		Method:    method,
		Cypher:    cypher,
		Params:    params,
		Timestamp: time.Now(),
	})
}

// Connect marks the mock as connected.
func (m *MockClient) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Connect", "", nil)
	if m.connectError != nil {
		return m.connectError
	}
	m.connected = true
	return nil
}

// Close marks the mock as disconnected.
func (m *MockClient) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Close", "", nil)
	m.connected = false
	return nil
}

// Verify returns the configured verify error, if any.
func (m *MockClient) Verify(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Verify", "", nil)
	return m.verifyError
}

// Read returns the next configured read result.
func (m *MockClient) Read(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Read", cypher, params)
	if m.readError != nil {
		return Result{}, m.readError
	}
	if len(m.readResults) == 0 {
		return Result{}, nil
	}
	result := m.readResults[m.readIndex]
	if m.readIndex < len(m.readResults)-1 {
		m.readIndex++
	}
	return result, nil
}

// Write returns the configured write result.
func (m *MockClient) Write(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Write", cypher, params)
	if m.writeError != nil {
		return Result{}, m.writeError
	}
	return m.writeResult, nil
}
