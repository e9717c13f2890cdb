package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/models"
)

// failingCacheService giả lập L2 hỏng hoàn toàn
type failingCacheService struct{}

var errCacheDown = errors.New("cache backend down")

func (failingCacheService) Get(context.Context, string) (*models.MatchResult, bool, error) {
	return nil, false, errCacheDown
}
func (failingCacheService) Set(context.Context, string, *models.MatchResult) error {
	return errCacheDown
}
func (failingCacheService) Delete(context.Context, string) error { return errCacheDown }
func (failingCacheService) Clear(context.Context) error          { return errCacheDown }
func (failingCacheService) GetStats(context.Context) (*CacheStats, error) {
	return nil, errCacheDown
}
func (failingCacheService) Close() error { return nil }

func TestHybridCachePromotesFromL2(t *testing.T) {
	ctx := context.Background()
	l1 := newTestLRU(t, 10)
	l2 := newTestLRU(t, 10)
	hybrid := NewHybridCacheService(l1, l2, zap.NewNop())

	// Seed only L2, as if another instance populated Redis.
	l2.Set(ctx, "key1", cachedResult("123 Main St"))

	got, ok, err := hybrid.Get(ctx, "key1")
	if err != nil || !ok {
		t.Fatalf("hybrid Get: ok=%v err=%v", ok, err)
	}
	if got.InputAddress != "123 Main St" {
		t.Errorf("InputAddress = %q", got.InputAddress)
	}

	// The hit must have been promoted into L1.
	if _, ok, _ := l1.Get(ctx, "key1"); !ok {
		t.Error("key was not promoted to L1")
	}
}

func TestHybridCacheSetWritesBothTiers(t *testing.T) {
	ctx := context.Background()
	l1 := newTestLRU(t, 10)
	l2 := newTestLRU(t, 10)
	hybrid := NewHybridCacheService(l1, l2, zap.NewNop())

	if err := hybrid.Set(ctx, "key1", cachedResult("a")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := l1.Get(ctx, "key1"); !ok {
		t.Error("key missing from L1")
	}
	if _, ok, _ := l2.Get(ctx, "key1"); !ok {
		t.Error("key missing from L2")
	}

	if err := hybrid.Delete(ctx, "key1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := l2.Get(ctx, "key1"); ok {
		t.Error("key survived Delete in L2")
	}
}

func TestHybridCacheDegradesWhenL2Fails(t *testing.T) {
	// A dead L2 must never surface errors to callers; the hybrid keeps
	// serving from L1.
	ctx := context.Background()
	l1 := newTestLRU(t, 10)
	hybrid := NewHybridCacheService(l1, failingCacheService{}, zap.NewNop())

	if err := hybrid.Set(ctx, "key1", cachedResult("a")); err != nil {
		t.Fatalf("Set with dead L2: %v", err)
	}
	got, ok, err := hybrid.Get(ctx, "key1")
	if err != nil || !ok {
		t.Fatalf("Get with dead L2: ok=%v err=%v", ok, err)
	}
	if got.InputAddress != "a" {
		t.Errorf("InputAddress = %q", got.InputAddress)
	}

	// Miss in L1 plus dead L2 is a plain miss, not an error.
	if _, ok, err := hybrid.Get(ctx, "absent"); ok || err != nil {
		t.Errorf("miss with dead L2: ok=%v err=%v", ok, err)
	}

	stats, err := hybrid.GetStats(ctx)
	if err != nil || stats == nil {
		t.Fatalf("GetStats with dead L2: %v", err)
	}
}
