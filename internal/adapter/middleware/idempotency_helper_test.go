package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run: %v", err)
	}
	t.Cleanup(mr.Close)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func Test_bodyHash(t *testing.T) {
	data := []byte(`{"load_trip_id":7}`)
	sum := sha256.Sum256(data)
	if got := bodyHash(data); got != hex.EncodeToString(sum[:]) {
		t.Fatalf("bodyHash mismatch: %s", got)
	}
}

func Test_buildKey(t *testing.T) {
	k := buildKey("PUT", "/api/settlements/42/trips", "dispatcher.ana", strings.Repeat("a", 32))
	want := "idemp:ax:put:/api/settlements/42/trips:dispatcher.ana:" + strings.Repeat("a", 32)
	if k != want {
		t.Fatalf("buildKey: got %q want %q", k, want)
	}
}

func Test_validReqID(t *testing.T) {
	cases := map[string]bool{
		"3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88": true,
		strings.Repeat("a", 32):                true,
		"":                                     false,
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8":      false, // 31 chars
		"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz":     false,
		"3f9a6a1b-3d54-9fbe-8b3a-6b3e8d6b2c88": false, // version 9
	}
	for id, want := range cases {
		if got := validReqID(id); got != want {
			t.Fatalf("validReqID(%q) = %v, want %v", id, got, want)
		}
	}
}

func Test_ActorID(t *testing.T) {
	cases := []struct {
		raw    string
		actor  string
		wantOK bool
	}{
		{"", "", true},
		{"   ", "", true},
		{"dispatcher.ana", "dispatcher.ana", true},
		{" ops@reefer.mx ", "ops@reefer.mx", true},
		{"u-42_b", "u-42_b", true},
		{"two words", "", false},
		{"drop;table", "", false},
		{strings.Repeat("x", 65), "", false},
	}
	for _, tc := range cases {
		actor, ok := ActorID(tc.raw)
		if actor != tc.actor || ok != tc.wantOK {
			t.Fatalf("ActorID(%q) = %q,%v want %q,%v", tc.raw, actor, ok, tc.actor, tc.wantOK)
		}
	}
}

func Test_parseAxRequestAt(t *testing.T) {
	sec := time.Now().UTC().Unix()
	ms := time.Now().UTC().UnixMilli()

	ok := map[string]time.Time{
		strconv.FormatInt(sec, 10):  time.Unix(sec, 0).UTC(),
		strconv.FormatInt(ms, 10):   time.UnixMilli(ms).UTC(),
		"2024-03-01T08:00:00-06:00": time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC),
		"2024-03-01T14:00:00Z":      time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC),
	}
	for raw, want := range ok {
		got, err := parseAxRequestAt(raw)
		if err != nil || !got.Equal(want) || got.Location() != time.UTC {
			t.Fatalf("parseAxRequestAt(%q) = %v, %v; want %v", raw, got, err, want)
		}
	}

	for _, raw := range []string{"", "not-a-time", "2024-03-01T08:00:00", "1736123456abc"} {
		if _, err := parseAxRequestAt(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func Test_redisHelpers(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	ctx := context.Background()
	key := buildKey("POST", "/api/settlements", "dispatcher.ana", strings.Repeat("a", 32))

	entry := idempEntry{InProgress: true, BodySHA256: bodyHash([]byte(`{}`)), RequestID: strings.Repeat("a", 32), CreatedAt: nowUTC()}
	if ok, err := provisionalSet(ctx, rdb, key, entry); err != nil || !ok {
		t.Fatalf("provisionalSet 1: ok=%v err=%v", ok, err)
	}
	if ttl := mr.TTL(key); ttl <= 0 || ttl > provisionalLockTTL {
		t.Fatalf("provisional TTL: %v", ttl)
	}
	if ok, err := provisionalSet(ctx, rdb, key, entry); err != nil || ok {
		t.Fatalf("provisionalSet 2 should not acquire: ok=%v err=%v", ok, err)
	}

	final := idempEntry{Code: 201, Body: []byte(`{"settlement_id":"x"}`), BodySHA256: entry.BodySHA256}
	if err := saveFinal(ctx, rdb, key, final, 5*time.Second); err != nil {
		t.Fatalf("saveFinal: %v", err)
	}
	got, err := loadEntry(ctx, rdb, key)
	if err != nil || got.InProgress || got.Code != 201 || string(got.Body) != `{"settlement_id":"x"}` {
		t.Fatalf("loadEntry: %+v, %v", got, err)
	}
	if ttl := mr.TTL(key); ttl <= 0 || ttl > 5*time.Second {
		t.Fatalf("final TTL: %v", ttl)
	}

	if err := releaseLock(ctx, rdb, key); err != nil {
		t.Fatalf("releaseLock: %v", err)
	}
	if mr.Exists(key) {
		t.Fatalf("key should be gone")
	}
	if _, err := loadEntry(ctx, rdb, key); err != redis.Nil {
		t.Fatalf("loadEntry on missing key: want redis.Nil, got %v", err)
	}
}
