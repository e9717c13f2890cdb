package services

import (
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/models"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/internal/golden"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/internal/matcher"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/internal/scorer"
)

// goldenRecord keeps the state out of "Full Address" so the composed
// display reads "<street city> FL <zip>" after the default state append.
func goldenRecord(streetCity string, zip int64) models.Record {
	rec := models.Record{golden.ColFullAddress: models.String(streetCity)}
	if zip != 0 {
		rec[golden.ColZipcode] = models.Int(zip)
	}
	return rec
}

func newTestAddressService(t *testing.T, records ...models.Record) *AddressService {
	t.Helper()
	index := golden.BuildIndex(records, "FL")
	m := matcher.NewAddressMatcher(index, scorer.NewWeightedRatio(), matcher.Config{}, nil)
	return NewAddressService(m, index, zap.NewNop())
}

func TestMatchAddress(t *testing.T) {
	svc := newTestAddressService(t, goldenRecord("123 Main St Tampa", 33601))

	result := svc.MatchAddress("123 main st, tampa, fl 33601")
	if result.MatchType != models.MatchTypeExact {
		t.Errorf("MatchType = %q, want exact_match", result.MatchType)
	}

	result = svc.MatchAddress("")
	if result.MatchType != models.MatchTypeNone || result.Confidence != 0 {
		t.Errorf("empty input: %q/%v, want no_match/0", result.MatchType, result.Confidence)
	}
}

func TestMatchBatchPreservesOrder(t *testing.T) {
	records := make([]models.Record, 0, 50)
	for i := 0; i < 50; i++ {
		records = append(records, goldenRecord(fmt.Sprintf("%d Main St Tampa", i+1), 0))
	}
	svc := newTestAddressService(t, records...)

	// More inputs than workers so the fan-out actually interleaves.
	inputs := make([]string, 0, 53)
	for i := 0; i < 50; i++ {
		inputs = append(inputs, fmt.Sprintf("%d main st, tampa, fl", i+1))
	}
	inputs = append(inputs, "", "   ", "qxzv wjkq plmb")

	results := svc.MatchBatch(inputs)
	if len(results) != len(inputs) {
		t.Fatalf("got %d results for %d inputs", len(results), len(inputs))
	}
	for i := 0; i < 50; i++ {
		if results[i] == nil {
			t.Fatalf("results[%d] is nil", i)
		}
		if results[i].InputAddress != inputs[i] {
			t.Errorf("results[%d].InputAddress = %q, want %q", i, results[i].InputAddress, inputs[i])
		}
		if results[i].MatchType != models.MatchTypeExact {
			t.Errorf("results[%d].MatchType = %q, want exact_match", i, results[i].MatchType)
		}
		want := fmt.Sprintf("%d Main St Tampa FL", i+1)
		if results[i].MatchedAddress != want {
			t.Errorf("results[%d].MatchedAddress = %q, want %q", i, results[i].MatchedAddress, want)
		}
	}
	for i := 50; i < 52; i++ {
		if results[i].MatchType != models.MatchTypeNone {
			t.Errorf("results[%d].MatchType = %q, want no_match", i, results[i].MatchType)
		}
	}
}

func TestMatchBatchEmpty(t *testing.T) {
	svc := newTestAddressService(t, goldenRecord("123 Main St Tampa", 0))
	results := svc.MatchBatch(nil)
	if len(results) != 0 {
		t.Errorf("got %d results for empty batch", len(results))
	}
}

func TestIndexSize(t *testing.T) {
	svc := newTestAddressService(t,
		goldenRecord("123 Main St Tampa", 0),
		goldenRecord("456 Oak Ave Largo", 0))
	if got := svc.IndexSize(); got != 2 {
		t.Errorf("IndexSize = %d, want 2", got)
	}
}
