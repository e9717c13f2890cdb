// Package matcher resolves free-form address input against the golden
// index: normalize, exact lookup, fuzzy scan, threshold decision.
package matcher

import (
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/models"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/internal/golden"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/internal/normalizer"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/internal/scorer"
)

const (
	// DefaultThreshold điểm fuzzy tối thiểu (inclusive) để chấp nhận match
	DefaultThreshold = 92
	// DefaultTopK số candidates tối đa trả về
	DefaultTopK = 5

	// Below this index size the sharded scan is not worth the goroutine
	// overhead.
	shardMinEntries = 2048
)

// Config cấu hình cho AddressMatcher. The zero value selects the
// defaults.
type Config struct {
	// Threshold thang điểm nguyên 0-100, mặc định 92, inclusive.
	// An explicit 0 is honored and accepts every scanned entry.
	Threshold int
	// TopK giới hạn danh sách candidates trong kết quả
	TopK int
}

// AddressMatcher service resolve địa chỉ input về golden record.
//
// Every call is independent; the only shared state is the read-only index,
// so Match is safe for any number of concurrent callers.
type AddressMatcher struct {
	index     *golden.Index
	scorer    scorer.Scorer
	threshold float64
	topK      int
	logger    *zap.Logger
}

// NewAddressMatcher tạo mới AddressMatcher
func NewAddressMatcher(index *golden.Index, sc scorer.Scorer, cfg Config, logger *zap.Logger) *AddressMatcher {
	if cfg == (Config{}) {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.Threshold < 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	return &AddressMatcher{
		index:     index,
		scorer:    sc,
		threshold: float64(cfg.Threshold),
		topK:      cfg.TopK,
		logger:    logger,
	}
}

// Match resolve một địa chỉ input, không bao giờ fail với input bất kỳ.
//
// Empty or whitespace-only input and input that normalizes to nothing
// yield no_match with confidence 0. An exact hit on the normalized form
// returns the first-loaded entry of its group at confidence 1.0. Otherwise
// the input is scored against every indexed entry; the best score decides
// fuzzy_match vs no_match at the inclusive threshold, with confidence
// reported as score/100 either way.
func (m *AddressMatcher) Match(input string) models.MatchResult {
	start := time.Now()

	if strings.TrimSpace(input) == "" {
		return noMatch(input, "", 0)
	}
	normalized := normalizer.Normalize(input)
	if normalized == "" {
		return noMatch(input, "", 0)
	}

	if entry, ok := m.index.Exact(normalized); ok {
		result := models.MatchResult{
			MatchType:       models.MatchTypeExact,
			Confidence:      1.0,
			InputAddress:    input,
			NormalizedInput: normalized,
			MatchedAddress:  entry.DisplayAddress,
			GoldenRecord:    entry.Record,
			Matches:         m.exactCandidates(normalized),
		}
		result.MatchCount = len(result.Matches)
		m.logMatch(input, result, time.Since(start))
		return result
	}

	entries := m.index.Entries()
	if len(entries) == 0 {
		return noMatch(input, normalized, 0)
	}

	bestIdx, bestScore, hits := m.scan(normalized, entries)
	if bestScore < m.threshold {
		result := noMatch(input, normalized, bestScore/100.0)
		m.logMatch(input, result, time.Since(start))
		return result
	}

	best := entries[bestIdx]
	result := models.MatchResult{
		MatchType:       models.MatchTypeFuzzy,
		Confidence:      bestScore / 100.0,
		InputAddress:    input,
		NormalizedInput: normalized,
		MatchedAddress:  best.DisplayAddress,
		GoldenRecord:    best.Record,
		Matches:         m.fuzzyCandidates(entries, hits),
	}
	result.MatchCount = len(result.Matches)
	m.logMatch(input, result, time.Since(start))
	return result
}

// scored một entry vượt threshold trong fuzzy scan
type scored struct {
	idx   int
	score float64
}

// scan scores the normalized input against every entry. Large indexes are
// sharded across goroutines; the reduction keeps (max score, lowest index)
// so the outcome is byte-identical to a sequential scan.
func (m *AddressMatcher) scan(normalized string, entries []*golden.Entry) (int, float64, []scored) {
	if len(entries) < shardMinEntries {
		return m.scanRange(normalized, entries, 0)
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(entries) {
		workers = len(entries)
	}
	chunk := (len(entries) + workers - 1) / workers

	type shardResult struct {
		bestIdx   int
		bestScore float64
		hits      []scored
	}
	results := make([]shardResult, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(entries) {
			hi = len(entries)
		}
		if lo >= hi {
			results[w] = shardResult{bestIdx: -1}
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			idx, score, hits := m.scanRange(normalized, entries[lo:hi], lo)
			results[w] = shardResult{bestIdx: idx, bestScore: score, hits: hits}
		}(w, lo, hi)
	}
	wg.Wait()

	bestIdx, bestScore := -1, -1.0
	var hits []scored
	for _, r := range results {
		if r.bestIdx < 0 {
			continue
		}
		if r.bestScore > bestScore || (r.bestScore == bestScore && r.bestIdx < bestIdx) {
			bestIdx, bestScore = r.bestIdx, r.bestScore
		}
		hits = append(hits, r.hits...)
	}
	return bestIdx, bestScore, hits
}

// scanRange sequential scan over a slice of entries; base offsets local
// indices back to index order. Strictly-greater comparison keeps the
// first-encountered entry on score ties.
func (m *AddressMatcher) scanRange(normalized string, entries []*golden.Entry, base int) (int, float64, []scored) {
	bestIdx, bestScore := -1, -1.0
	var hits []scored
	for i, entry := range entries {
		score := m.scorer.Score(normalized, entry.Normalized)
		if score > bestScore {
			bestIdx, bestScore = base+i, score
		}
		if score >= m.threshold {
			hits = append(hits, scored{idx: base + i, score: score})
		}
	}
	return bestIdx, bestScore, hits
}

// exactCandidates toàn bộ group trùng normalized form, confidence 1.0
func (m *AddressMatcher) exactCandidates(normalized string) []models.Candidate {
	group := m.index.ExactGroup(normalized)
	n := len(group)
	if n > m.topK {
		n = m.topK
	}
	candidates := make([]models.Candidate, 0, n)
	for _, entry := range group[:n] {
		candidates = append(candidates, models.Candidate{
			MatchedAddress: entry.DisplayAddress,
			Confidence:     1.0,
			GoldenRecord:   entry.Record,
		})
	}
	return candidates
}

// fuzzyCandidates mọi entry đạt threshold, sắp theo score giảm dần rồi
// load order, giới hạn topK.
func (m *AddressMatcher) fuzzyCandidates(entries []*golden.Entry, hits []scored) []models.Candidate {
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].idx < hits[j].idx
	})
	if len(hits) > m.topK {
		hits = hits[:m.topK]
	}
	candidates := make([]models.Candidate, 0, len(hits))
	for _, h := range hits {
		entry := entries[h.idx]
		candidates = append(candidates, models.Candidate{
			MatchedAddress: entry.DisplayAddress,
			Confidence:     h.score / 100.0,
			GoldenRecord:   entry.Record,
		})
	}
	return candidates
}

func noMatch(input, normalized string, confidence float64) models.MatchResult {
	return models.MatchResult{
		MatchType:       models.MatchTypeNone,
		Confidence:      confidence,
		InputAddress:    input,
		NormalizedInput: normalized,
		Matches:         []models.Candidate{},
	}
}

func (m *AddressMatcher) logMatch(input string, result models.MatchResult, duration time.Duration) {
	if m.logger == nil {
		return
	}
	m.logger.Debug("address matched",
		zap.String("input", input),
		zap.String("match_type", string(result.MatchType)),
		zap.Float64("confidence", result.Confidence),
		zap.Int("match_count", result.MatchCount),
		zap.Duration("duration", duration))
}
