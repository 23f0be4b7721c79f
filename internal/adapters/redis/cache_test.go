package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "tonestats/internal/adapters/redis"
	"tonestats/internal/domain"
)

func newCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.New(mr.Addr(), "", 0)
}

func TestCache_SetGetRoundTrip(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	in := []domain.PlatformSatisfaction{{Company: "acme", Tone: "warm", Count: 3}}
	if err := c.Set(ctx, "sat:platform:platform-whole:0", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out []domain.PlatformSatisfaction
	ok, err := c.Get(ctx, "sat:platform:platform-whole:0", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("unexpected value: %+v", out)
	}
}

func TestCache_MissReturnsFalse(t *testing.T) {
	c := newCache(t)

	var out []domain.PlatformSatisfaction
	ok, err := c.Get(context.Background(), "sat:platform:platform-whole:0", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected miss")
	}
}

func TestCache_DelRemovesKey(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", []string{"x"}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	var out []string
	if ok, _ := c.Get(ctx, "k", &out); ok {
		t.Fatal("expected key to be gone")
	}
}
