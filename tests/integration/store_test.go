package integration

import (
	"testing"
	"time"

	redisadapter "github.com/0xsj/overwatch-finance/internal/adapter/outbound/redis"
)

func TestStore_SetAndGet(t *testing.T) {
	flushRedis(t)
	ctx := getContext()

	store := redisadapter.NewStore(getRedisClient(), testLogger())

	store.Set(ctx, "finance:test:one", []byte("payload"), time.Hour)

	data, ok := store.Get(ctx, "finance:test:one")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(data) != "payload" {
		t.Errorf("value = %q, want %q", data, "payload")
	}
}

func TestStore_GetMiss(t *testing.T) {
	flushRedis(t)
	ctx := getContext()

	store := redisadapter.NewStore(getRedisClient(), testLogger())

	data, ok := store.Get(ctx, "finance:test:missing")
	if ok {
		t.Error("expected cache miss")
	}
	if data != nil {
		t.Error("miss should return nil data")
	}
}

func TestStore_SetWithTTL(t *testing.T) {
	flushRedis(t)
	ctx := getContext()

	store := redisadapter.NewStore(getRedisClient(), testLogger())

	store.Set(ctx, "finance:test:expiring", []byte("soon gone"), 1*time.Second)

	if _, ok := store.Get(ctx, "finance:test:expiring"); !ok {
		t.Error("value should exist immediately after set")
	}

	time.Sleep(2 * time.Second)

	if _, ok := store.Get(ctx, "finance:test:expiring"); ok {
		t.Error("value should be expired")
	}
}

func TestStore_Delete(t *testing.T) {
	flushRedis(t)
	ctx := getContext()

	store := redisadapter.NewStore(getRedisClient(), testLogger())

	store.Set(ctx, "finance:test:doomed", []byte("x"), time.Hour)
	if _, ok := store.Get(ctx, "finance:test:doomed"); !ok {
		t.Fatal("value should exist before delete")
	}

	store.Delete(ctx, "finance:test:doomed")

	if _, ok := store.Get(ctx, "finance:test:doomed"); ok {
		t.Error("value should not exist after delete")
	}
}

func TestStore_DeleteNonExistent(t *testing.T) {
	flushRedis(t)
	ctx := getContext()

	store := redisadapter.NewStore(getRedisClient(), testLogger())

	// No-op, must not panic or poison the connection
	store.Delete(ctx, "finance:test:never-existed")

	store.Set(ctx, "finance:test:after", []byte("x"), time.Hour)
	if _, ok := store.Get(ctx, "finance:test:after"); !ok {
		t.Error("store should still work after deleting a missing key")
	}
}

func TestStore_GetIndex(t *testing.T) {
	flushRedis(t)
	ctx := getContext()

	store := redisadapter.NewStore(getRedisClient(), testLogger())

	store.Set(ctx, "finance:test:a", []byte("A"), time.Hour, "finance:idx:test")
	store.Set(ctx, "finance:test:b", []byte("B"), time.Hour, "finance:idx:test")
	store.Set(ctx, "finance:test:c", []byte("C"), time.Hour, "finance:idx:other")

	values, ok := store.GetIndex(ctx, "finance:idx:test")
	if !ok {
		t.Fatal("expected index hit")
	}
	if len(values) != 2 {
		t.Fatalf("expected 2 members, got %d", len(values))
	}

	seen := map[string]bool{}
	for _, v := range values {
		seen[string(v)] = true
	}
	if !seen["A"] || !seen["B"] {
		t.Errorf("expected members A and B, got %v", seen)
	}
}

func TestStore_GetIndexUnion(t *testing.T) {
	flushRedis(t)
	ctx := getContext()

	store := redisadapter.NewStore(getRedisClient(), testLogger())

	store.Set(ctx, "finance:test:a", []byte("A"), time.Hour, "finance:idx:one")
	store.Set(ctx, "finance:test:b", []byte("B"), time.Hour, "finance:idx:two")

	values, ok := store.GetIndex(ctx, "finance:idx:one", "finance:idx:two")
	if !ok {
		t.Fatal("expected index hit")
	}
	if len(values) != 2 {
		t.Errorf("expected union of 2 members, got %d", len(values))
	}
}

func TestStore_GetIndexEmpty(t *testing.T) {
	flushRedis(t)
	ctx := getContext()

	store := redisadapter.NewStore(getRedisClient(), testLogger())

	if _, ok := store.GetIndex(ctx, "finance:idx:empty"); ok {
		t.Error("empty index should read as a miss")
	}
}

func TestStore_GetIndexPrunesStaleMembers(t *testing.T) {
	flushRedis(t)
	ctx := getContext()

	store := redisadapter.NewStore(getRedisClient(), testLogger())

	store.Set(ctx, "finance:test:stale", []byte("old"), 1*time.Second, "finance:idx:test")
	store.Set(ctx, "finance:test:fresh", []byte("new"), time.Hour, "finance:idx:test")

	// Let the stale value expire while its index membership survives
	time.Sleep(2 * time.Second)

	values, ok := store.GetIndex(ctx, "finance:idx:test")
	if !ok {
		t.Fatal("expected index hit")
	}
	if len(values) != 1 || string(values[0]) != "new" {
		t.Errorf("expected only the fresh member, got %d values", len(values))
	}

	// Stale membership must be gone after the read
	members, err := getRedisClient().SMembers(ctx, "finance:idx:test").Result()
	if err != nil {
		t.Fatalf("SMembers failed: %v", err)
	}
	if len(members) != 1 || members[0] != "finance:test:fresh" {
		t.Errorf("expected stale member pruned, got %v", members)
	}
}

func TestStore_DeleteRemovesIndexMembership(t *testing.T) {
	flushRedis(t)
	ctx := getContext()

	store := redisadapter.NewStore(getRedisClient(), testLogger())

	store.Set(ctx, "finance:test:a", []byte("A"), time.Hour, "finance:idx:test")
	store.Set(ctx, "finance:test:b", []byte("B"), time.Hour, "finance:idx:test")

	store.Delete(ctx, "finance:test:a")

	values, ok := store.GetIndex(ctx, "finance:idx:test")
	if !ok {
		t.Fatal("expected index hit")
	}
	if len(values) != 1 || string(values[0]) != "B" {
		t.Errorf("expected only B after delete, got %d values", len(values))
	}

	// Reverse index bookkeeping goes with the key
	count, err := getRedisClient().Exists(ctx, "finance:keyidx:finance:test:a").Result()
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if count != 0 {
		t.Error("reverse index entry should be deleted with the key")
	}
}

func TestStore_DeleteIndexGroup(t *testing.T) {
	flushRedis(t)
	ctx := getContext()

	store := redisadapter.NewStore(getRedisClient(), testLogger())

	store.Set(ctx, "finance:test:a", []byte("A"), time.Hour, "finance:idx:test")
	store.Set(ctx, "finance:test:b", []byte("B"), time.Hour, "finance:idx:test")
	store.Set(ctx, "finance:test:other", []byte("C"), time.Hour, "finance:idx:other")

	store.DeleteIndexGroup(ctx, "finance:idx:test")

	if _, ok := store.Get(ctx, "finance:test:a"); ok {
		t.Error("member a should be deleted with its index group")
	}
	if _, ok := store.Get(ctx, "finance:test:b"); ok {
		t.Error("member b should be deleted with its index group")
	}
	if _, ok := store.GetIndex(ctx, "finance:idx:test"); ok {
		t.Error("index set itself should be deleted")
	}

	// Other groups stay intact
	if _, ok := store.Get(ctx, "finance:test:other"); !ok {
		t.Error("members of other index groups should survive")
	}
}

func TestStore_Overwrite(t *testing.T) {
	flushRedis(t)
	ctx := getContext()

	store := redisadapter.NewStore(getRedisClient(), testLogger())

	store.Set(ctx, "finance:test:key", []byte("first"), time.Hour)
	store.Set(ctx, "finance:test:key", []byte("second"), time.Hour)

	data, ok := store.Get(ctx, "finance:test:key")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(data) != "second" {
		t.Errorf("value = %q, want %q", data, "second")
	}
}
