package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Nothing listens on this port, so every command fails fast.
const unreachableAddr = "127.0.0.1:1"

func TestNewRedisCache_Options(t *testing.T) {
	rc := NewRedisCache("cache:6379", "secret", 2)
	defer rc.Close()

	opts := rc.Client.Options()
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
}

func TestRedisCache_UnreachableServer(t *testing.T) {
	rc := NewRedisCache(unreachableAddr, "", 0)
	defer rc.Close()

	ctx := context.Background()

	assert.Error(t, rc.Ping(ctx))
	assert.Error(t, rc.Connect(ctx))

	var dest map[string]string
	found, err := rc.Get(ctx, "book:detail:x", &dest)
	assert.Error(t, err)
	assert.False(t, found)

	assert.Error(t, rc.Set(ctx, "k", map[string]string{"a": "b"}, time.Minute))
	assert.Error(t, rc.Delete(ctx, "k"))
}

func TestRedisCache_DeleteNoKeys(t *testing.T) {
	rc := NewRedisCache(unreachableAddr, "", 0)
	defer rc.Close()

	require.NoError(t, rc.Delete(context.Background()))
}

func TestRedisCache_SetRejectsUnencodableValue(t *testing.T) {
	rc := NewRedisCache(unreachableAddr, "", 0)
	defer rc.Close()

	err := rc.Set(context.Background(), "k", make(chan int), time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode")
}

type cachedBook struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"publishedYear"`
}

func newTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc := NewRedisCache(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rc.Close() })
	require.NoError(t, rc.Connect(context.Background()))
	return rc, mr
}

func TestRedisCache_SetGetRoundTrip(t *testing.T) {
	rc, mr := newTestRedis(t)
	ctx := context.Background()
	want := cachedBook{ID: "b1", Title: "The Final Empire", Year: 2006}

	require.NoError(t, rc.Set(ctx, "book:detail:b1", want, time.Minute))

	raw, err := mr.Get("book:detail:b1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"b1","title":"The Final Empire","publishedYear":2006}`, raw)
	assert.Equal(t, time.Minute, mr.TTL("book:detail:b1"))

	var got cachedBook
	found, err := rc.Get(ctx, "book:detail:b1", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got)
}

func TestRedisCache_MissLeavesDestUntouched(t *testing.T) {
	rc, _ := newTestRedis(t)

	dest := cachedBook{Title: "untouched"}
	found, err := rc.Get(context.Background(), "book:detail:missing", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "untouched", dest.Title)
}

func TestRedisCache_ExpiredEntryIsAMiss(t *testing.T) {
	rc, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "author:detail:a1", cachedBook{ID: "a1"}, time.Second))
	mr.FastForward(2 * time.Second)

	var got cachedBook
	found, err := rc.Get(ctx, "author:detail:a1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_Delete(t *testing.T) {
	rc, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, rc.Set(ctx, "b", 2, time.Minute))

	require.NoError(t, rc.Delete(ctx, "a", "b", "never-set"))
	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))
}

func TestRedisCache_CorruptEntryIsAnError(t *testing.T) {
	rc, mr := newTestRedis(t)
	require.NoError(t, mr.Set("book:detail:bad", "not json"))

	var got cachedBook
	found, err := rc.Get(context.Background(), "book:detail:bad", &got)
	require.Error(t, err)
	assert.False(t, found)
	assert.Contains(t, err.Error(), "decode")
}

func TestRedisCache_Ping(t *testing.T) {
	rc, mr := newTestRedis(t)

	require.NoError(t, rc.Ping(context.Background()))

	mr.Close()
	assert.Error(t, rc.Ping(context.Background()))
}
