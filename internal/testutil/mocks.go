package testutil

import (
	"sync"
	"time"

	"pad/internal/models"
	"pad/internal/providers"
	"pad/internal/store"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// CountLevel returns how many entries were recorded at the given level.
func (m *MockLogger) CountLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockDataStore implements store.DataStoreInterface.
type MockDataStore struct {
	PresenceData models.PresenceData
	Users_       models.UserDirectory
	PresenceErr  error
	UsersErr     error
	StatsData    store.Stats

	PresenceCalls int
	UsersCalls    int
}

func (m *MockDataStore) Presence() (models.PresenceData, error) {
	m.PresenceCalls++
	if m.PresenceErr != nil {
		return nil, m.PresenceErr
	}
	return m.PresenceData, nil
}

func (m *MockDataStore) Users() (models.UserDirectory, error) {
	m.UsersCalls++
	if m.UsersErr != nil {
		return nil, m.UsersErr
	}
	return m.Users_, nil
}

func (m *MockDataStore) Stats() store.Stats {
	return m.StatsData
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu            sync.Mutex
	RequestCalls  int
	DurationCalls int
	CacheHits     int
	CacheMisses   int
	LoadCalls     int
	RecordCounts  map[string]int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCalls++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DurationCalls++
}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) ObserveSourceLoadDuration(_ string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls++
}

func (m *MockMetrics) SetDatasetRecords(source string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordCounts == nil {
		m.RecordCounts = make(map[string]int)
	}
	m.RecordCounts[source] = count
}
