package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeCodeStore struct {
	values map[string]string
	ttls   map[string]time.Duration
	getErr error
}

var _ codeStore = (*fakeCodeStore)(nil)

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCodeStore) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.values[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCodeStore) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeCodeStore) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestFixedCodeVerifier(t *testing.T) {
	v := NewFixedCodeVerifier("", testLogger())
	ctx := context.Background()

	require.NoError(t, v.SendCode(ctx, "+15550001111"))

	ok, err := v.Verify(ctx, "+15550001111", DefaultFixedCode)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.Verify(ctx, "+15550001111", "000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisVerifier(t *testing.T) {
	store := newFakeCodeStore()
	v := newRedisVerifier(store, 5*time.Minute, testLogger())
	ctx := context.Background()
	phone := "+15550001111"

	require.NoError(t, v.SendCode(ctx, phone))
	code := store.values[otpKey(phone)]
	assert.Len(t, code, 6)
	assert.Equal(t, 5*time.Minute, store.ttls[otpKey(phone)])

	ok, err := v.Verify(ctx, phone, "wrong!")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = v.Verify(ctx, phone, code)
	require.NoError(t, err)
	assert.True(t, ok)

	// codes are single use
	ok, err = v.Verify(ctx, phone, code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisVerifier_StoreError(t *testing.T) {
	store := newFakeCodeStore()
	store.getErr = errors.New("connection refused")
	v := newRedisVerifier(store, time.Minute, testLogger())

	ok, err := v.Verify(context.Background(), "+15550001111", "123456")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRandomCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := randomCode(6)
		require.NoError(t, err)
		assert.Regexp(t, `^[0-9]{6}$`, code)
	}
}
