package matcher

import (
	"fmt"
	"testing"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/models"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/internal/golden"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/internal/scorer"
)

// stubScorer trả về điểm cố định cho mọi cặp input
type stubScorer struct {
	score float64
}

func (s stubScorer) Score(a, b string) float64 { return s.score }

// addressRecord builds a golden record whose street line and city live in
// "Full Address" and whose zip rides the Zipcode column, so the composer
// appends the default state between them: "<street city> FL <zip>".
func addressRecord(streetCity string, zip int64) models.Record {
	rec := models.Record{golden.ColFullAddress: models.String(streetCity)}
	if zip != 0 {
		rec[golden.ColZipcode] = models.Int(zip)
	}
	return rec
}

func testIndex(records ...models.Record) *golden.Index {
	return golden.BuildIndex(records, "FL")
}

func TestMatchEmptyInput(t *testing.T) {
	m := NewAddressMatcher(testIndex(addressRecord("123 Main St Tampa", 33601)), scorer.NewWeightedRatio(), Config{}, nil)

	for _, input := range []string{"", "   ", "\t\n"} {
		result := m.Match(input)
		if result.MatchType != models.MatchTypeNone {
			t.Errorf("Match(%q).MatchType = %q, want no_match", input, result.MatchType)
		}
		if result.Confidence != 0 {
			t.Errorf("Match(%q).Confidence = %v, want 0", input, result.Confidence)
		}
		if result.Matches == nil || len(result.Matches) != 0 {
			t.Errorf("Match(%q).Matches = %v, want empty non-nil list", input, result.Matches)
		}
	}
}

func TestMatchNormalizesToNothing(t *testing.T) {
	m := NewAddressMatcher(testIndex(addressRecord("123 Main St Tampa", 33601)), scorer.NewWeightedRatio(), Config{}, nil)

	result := m.Match("!!! --- ???")
	if result.MatchType != models.MatchTypeNone {
		t.Errorf("MatchType = %q, want no_match", result.MatchType)
	}
	if result.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", result.Confidence)
	}
	if result.NormalizedInput != "" {
		t.Errorf("NormalizedInput = %q, want empty", result.NormalizedInput)
	}
}

func TestMatchExact(t *testing.T) {
	m := NewAddressMatcher(testIndex(
		addressRecord("123 Main St Tampa", 33601),
		addressRecord("456 Oak Ave Largo", 33770),
	), scorer.NewWeightedRatio(), Config{}, nil)

	// Case and punctuation differences vanish in normalization, so this is
	// still an exact hit.
	result := m.Match("123 main st, tampa, fl 33601")
	if result.MatchType != models.MatchTypeExact {
		t.Fatalf("MatchType = %q, want exact_match", result.MatchType)
	}
	if result.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", result.Confidence)
	}
	if result.MatchedAddress != "123 Main St Tampa FL 33601" {
		t.Errorf("MatchedAddress = %q", result.MatchedAddress)
	}
	if result.MatchCount != 1 || len(result.Matches) != 1 {
		t.Errorf("MatchCount = %d, Matches = %d, want 1 each", result.MatchCount, len(result.Matches))
	}
	if result.GoldenRecord == nil {
		t.Error("GoldenRecord missing on exact match")
	}
}

func TestMatchExactReflexive(t *testing.T) {
	index := testIndex(
		addressRecord("123 Main St Tampa", 33601),
		addressRecord("456 Oak Ave Largo", 33770),
		addressRecord("77 Ocean Dr Clearwater", 0),
	)
	m := NewAddressMatcher(index, scorer.NewWeightedRatio(), Config{}, nil)

	// Every indexed display address must resolve to itself exactly.
	for _, entry := range index.Entries() {
		result := m.Match(entry.DisplayAddress)
		if result.MatchType != models.MatchTypeExact {
			t.Errorf("Match(%q).MatchType = %q, want exact_match", entry.DisplayAddress, result.MatchType)
		}
		if result.MatchedAddress != entry.DisplayAddress {
			t.Errorf("Match(%q).MatchedAddress = %q", entry.DisplayAddress, result.MatchedAddress)
		}
	}
}

func TestMatchExactDuplicateGroup(t *testing.T) {
	// Two records with the same normalized form: the first-loaded one wins,
	// the whole group is reported as candidates.
	recA := addressRecord("123 Main Street Tampa", 33601)
	recA["ParcelID"] = models.Int(1)
	recB := addressRecord("123 MAIN ST, TAMPA", 33601)
	recB["ParcelID"] = models.Int(2)
	index := testIndex(recA, recB)
	m := NewAddressMatcher(index, scorer.NewWeightedRatio(), Config{}, nil)

	result := m.Match("123 main st tampa fl 33601")
	if result.MatchType != models.MatchTypeExact {
		t.Fatalf("MatchType = %q, want exact_match", result.MatchType)
	}
	if got := result.GoldenRecord.Get("ParcelID").Int64(); got != 1 {
		t.Errorf("matched ParcelID = %d, want first-loaded record 1", got)
	}
	if result.MatchCount != 2 {
		t.Errorf("MatchCount = %d, want 2", result.MatchCount)
	}
}

func TestMatchThresholdInclusive(t *testing.T) {
	index := testIndex(addressRecord("123 Main St Tampa", 33601))

	// A best score exactly at the threshold is accepted.
	at := NewAddressMatcher(index, stubScorer{score: 92}, Config{Threshold: 92}, nil)
	result := at.Match("456 Oak Ave Largo FL")
	if result.MatchType != models.MatchTypeFuzzy {
		t.Errorf("score 92 at threshold 92: MatchType = %q, want fuzzy_match", result.MatchType)
	}
	if result.Confidence != 0.92 {
		t.Errorf("score 92: Confidence = %v, want 0.92", result.Confidence)
	}

	// One below is rejected but still reports the best score.
	below := NewAddressMatcher(index, stubScorer{score: 91}, Config{Threshold: 92}, nil)
	result = below.Match("456 Oak Ave Largo FL")
	if result.MatchType != models.MatchTypeNone {
		t.Errorf("score 91 at threshold 92: MatchType = %q, want no_match", result.MatchType)
	}
	if result.Confidence != 0.91 {
		t.Errorf("score 91: Confidence = %v, want 0.91", result.Confidence)
	}
	if result.MatchedAddress != "" {
		t.Errorf("no_match carries MatchedAddress %q", result.MatchedAddress)
	}
}

func TestMatchExplicitZeroThreshold(t *testing.T) {
	// Threshold 0 is a legal configuration meaning "accept every scanned
	// entry"; it must not be coerced to the default.
	index := testIndex(addressRecord("123 Main St Tampa", 33601))
	m := NewAddressMatcher(index, stubScorer{score: 10}, Config{Threshold: 0, TopK: 5}, nil)
	if m.threshold != 0 {
		t.Fatalf("threshold = %v, want 0", m.threshold)
	}

	result := m.Match("456 Oak Ave Largo FL")
	if result.MatchType != models.MatchTypeFuzzy {
		t.Errorf("MatchType = %q, want fuzzy_match at threshold 0", result.MatchType)
	}
	if result.Confidence != 0.10 {
		t.Errorf("Confidence = %v, want 0.10", result.Confidence)
	}
}

func TestMatchFuzzyReorderedTokens(t *testing.T) {
	index := testIndex(addressRecord("123 Main St Apt 4 Tampa", 33601))
	m := NewAddressMatcher(index, scorer.NewWeightedRatio(), Config{}, nil)

	// Same tokens in a different order: not exact, but well above threshold.
	result := m.Match("apt 4, 123 main st, tampa, fl 33601")
	if result.MatchType != models.MatchTypeFuzzy {
		t.Fatalf("MatchType = %q, want fuzzy_match", result.MatchType)
	}
	if result.Confidence < 0.92 || result.Confidence >= 1.0 {
		t.Errorf("Confidence = %v, want in [0.92, 1.0)", result.Confidence)
	}
	if result.MatchedAddress != "123 Main St Apt 4 Tampa FL 33601" {
		t.Errorf("MatchedAddress = %q", result.MatchedAddress)
	}
	if result.MatchCount < 1 {
		t.Error("fuzzy match reported no candidates")
	}
}

func TestMatchGarbageInput(t *testing.T) {
	index := testIndex(addressRecord("123 Main St Tampa", 33601))
	m := NewAddressMatcher(index, scorer.NewWeightedRatio(), Config{}, nil)

	result := m.Match("qxzv wjkq plmb rrtt 99999")
	if result.MatchType != models.MatchTypeNone {
		t.Fatalf("MatchType = %q, want no_match", result.MatchType)
	}
	if result.Confidence < 0 || result.Confidence >= 0.92 {
		t.Errorf("Confidence = %v, want in [0, 0.92)", result.Confidence)
	}
}

func TestMatchEmptyIndex(t *testing.T) {
	m := NewAddressMatcher(golden.BuildIndex(nil, "FL"), scorer.NewWeightedRatio(), Config{}, nil)

	result := m.Match("123 Main St Tampa FL 33601")
	if result.MatchType != models.MatchTypeNone {
		t.Errorf("MatchType = %q, want no_match", result.MatchType)
	}
	if result.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", result.Confidence)
	}
}

func TestMatchTopKCap(t *testing.T) {
	// Constant scorer makes every entry a hit; the candidate list must be
	// capped at TopK with load order breaking the all-equal scores.
	records := make([]models.Record, 0, 20)
	for i := 0; i < 20; i++ {
		records = append(records, addressRecord(fmt.Sprintf("%d Main St Tampa", i+1), 0))
	}
	index := testIndex(records...)
	m := NewAddressMatcher(index, stubScorer{score: 95}, Config{Threshold: 92, TopK: 5}, nil)

	result := m.Match("unknown place")
	if result.MatchType != models.MatchTypeFuzzy {
		t.Fatalf("MatchType = %q, want fuzzy_match", result.MatchType)
	}
	if result.MatchCount != 5 || len(result.Matches) != 5 {
		t.Fatalf("MatchCount = %d, Matches = %d, want 5 each", result.MatchCount, len(result.Matches))
	}
	if result.MatchedAddress != "1 Main St Tampa FL" {
		t.Errorf("MatchedAddress = %q, want first-loaded entry", result.MatchedAddress)
	}
	for i, c := range result.Matches {
		want := fmt.Sprintf("%d Main St Tampa FL", i+1)
		if c.MatchedAddress != want {
			t.Errorf("Matches[%d] = %q, want %q", i, c.MatchedAddress, want)
		}
	}
}

func TestMatchParallelScanDeterministic(t *testing.T) {
	// Enough entries to trigger the sharded scan. With every score equal the
	// lowest load-order index must win, byte-identical across runs.
	n := shardMinEntries + 500
	records := make([]models.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, addressRecord(fmt.Sprintf("%d Pine St Largo", i+1), int64(33700+i%100)))
	}
	index := testIndex(records...)
	m := NewAddressMatcher(index, stubScorer{score: 93}, Config{Threshold: 92}, nil)

	first := m.Match("somewhere else entirely")
	if first.MatchType != models.MatchTypeFuzzy {
		t.Fatalf("MatchType = %q, want fuzzy_match", first.MatchType)
	}
	if first.MatchedAddress != "1 Pine St Largo FL 33700" {
		t.Fatalf("MatchedAddress = %q, want lowest-index entry", first.MatchedAddress)
	}
	for i := 0; i < 10; i++ {
		again := m.Match("somewhere else entirely")
		if again.MatchedAddress != first.MatchedAddress || again.Confidence != first.Confidence {
			t.Fatalf("run %d diverged: %q %v vs %q %v",
				i, again.MatchedAddress, again.Confidence, first.MatchedAddress, first.Confidence)
		}
		if len(again.Matches) != len(first.Matches) {
			t.Fatalf("run %d candidate count diverged: %d vs %d", i, len(again.Matches), len(first.Matches))
		}
		for j := range again.Matches {
			if again.Matches[j].MatchedAddress != first.Matches[j].MatchedAddress {
				t.Fatalf("run %d candidate %d diverged", i, j)
			}
		}
	}
}

func TestMatchDefaultsApplied(t *testing.T) {
	m := NewAddressMatcher(testIndex(addressRecord("123 Main St Tampa", 0)), scorer.NewWeightedRatio(), Config{}, nil)
	if m.threshold != DefaultThreshold {
		t.Errorf("threshold = %v, want %v", m.threshold, float64(DefaultThreshold))
	}
	if m.topK != DefaultTopK {
		t.Errorf("topK = %d, want %d", m.topK, DefaultTopK)
	}
}
