package providers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pad/internal/structures"
)

// testLogger records formatted messages, shared by tests in this package.
type testLogger struct {
	messages []string
}

func (l *testLogger) record(format string, args ...interface{}) {
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

func (l *testLogger) Errorf(_ TypeEnum, format string, args ...interface{}) { l.record(format, args...) }
func (l *testLogger) Warnf(_ TypeEnum, format string, args ...interface{})  { l.record(format, args...) }
func (l *testLogger) Debugf(_ TypeEnum, format string, args ...interface{}) { l.record(format, args...) }
func (l *testLogger) Infof(_ TypeEnum, format string, args ...interface{})  { l.record(format, args...) }
func (l *testLogger) Fatalf(_ TypeEnum, format string, args ...interface{}) { l.record(format, args...) }
func (l *testLogger) Close()                                                {}

func cacheConfig(enabled bool, sizeMB int, ttl time.Duration) *structures.Config {
	return &structures.Config{
		Cache: structures.CacheConfig{
			Enabled: enabled,
			Size:    sizeMB,
			TTL:     ttl,
		},
	}
}

func TestCacheProvider_SetGet(t *testing.T) {
	cp := NewCacheProvider(cacheConfig(true, 1, time.Minute), &testLogger{})

	cp.Set("users", []byte(`[{"user_id":1}]`))

	val, ok := cp.Get("users")
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"user_id":1}]`), val)
}

func TestCacheProvider_MissingKey(t *testing.T) {
	cp := NewCacheProvider(cacheConfig(true, 1, time.Minute), &testLogger{})

	val, ok := cp.Get("nope")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestCacheProvider_Expiry(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TTL expiry test in short mode")
	}
	cp := NewCacheProvider(cacheConfig(true, 1, time.Second), &testLogger{})

	cp.Set("five_top:9:2013", []byte(`[]`))
	_, ok := cp.Get("five_top:9:2013")
	assert.True(t, ok)

	time.Sleep(1500 * time.Millisecond)

	_, ok = cp.Get("five_top:9:2013")
	assert.False(t, ok)
}

func TestCacheProvider_Disabled(t *testing.T) {
	cp := NewCacheProvider(cacheConfig(false, 16, time.Minute), &testLogger{})

	cp.Set("users", []byte("x"))
	_, ok := cp.Get("users")
	assert.False(t, ok)
}

func TestCacheProvider_ZeroSizeFallsBackToNoop(t *testing.T) {
	cp := NewCacheProvider(cacheConfig(true, 0, time.Minute), &testLogger{})

	cp.Set("users", []byte("x"))
	_, ok := cp.Get("users")
	assert.False(t, ok)
}

func TestUnsafeStringToBytes(t *testing.T) {
	assert.Nil(t, unsafeStringToBytes(""))
	assert.Equal(t, []byte("podium:10"), unsafeStringToBytes("podium:10"))
}
