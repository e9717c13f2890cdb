// Package scorer computes bounded similarity scores between normalized
// address strings.
package scorer

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
)

// Scorer chấm điểm độ tương đồng giữa hai chuỗi đã normalize.
//
// Scores are in [0, 100], deterministic, and 100 for identical inputs.
// The resolver depends only on this contract, not on any particular
// algorithm.
type Scorer interface {
	Score(a, b string) float64
}

// WeightedRatio is the default Scorer: a weighted-ratio combination of
// whole-string, token-order-insensitive and length-imbalance-aware partial
// comparisons, so reordered address fields still score highly and a short
// exact fragment against a long string is not unduly penalized.
type WeightedRatio struct{}

// NewWeightedRatio tạo mới scorer mặc định
func NewWeightedRatio() WeightedRatio { return WeightedRatio{} }

// Score chấm điểm a so với b, kết quả trong [0, 100]
func (WeightedRatio) Score(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}

	base := ratio(a, b)
	la, lb := len([]rune(a)), len([]rune(b))
	longer, shorter := la, lb
	if lb > la {
		longer, shorter = lb, la
	}
	lenRatio := float64(longer) / float64(shorter)

	// Scales follow the standard weighted-ratio recipe: token variants at
	// 0.95, partial variants kick in once lengths diverge by 1.5x and are
	// discounted harder past 8x.
	const tokenScale = 0.95
	sortedA, sortedB := tokenSort(a), tokenSort(b)

	if lenRatio < 1.5 {
		best := base
		best = maxf(best, ratio(sortedA, sortedB)*tokenScale)
		best = maxf(best, tokenSetRatio(a, b)*tokenScale)
		return clamp(best)
	}

	partialScale := 0.90
	if lenRatio > 8 {
		partialScale = 0.60
	}
	best := base
	best = maxf(best, partialRatio(a, b)*partialScale)
	best = maxf(best, partialRatio(sortedA, sortedB)*tokenScale*partialScale)
	return clamp(best)
}

// ratio whole-string similarity: levenshtein-based ratio blended with
// Jaro-Winkler, keeping whichever is stronger.
func ratio(a, b string) float64 {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	dist := levenshtein.ComputeDistance(a, b)
	lev := 100 * (1 - float64(dist)/float64(maxLen))

	jw := smetrics.JaroWinkler(a, b, 0.7, 4) * 100
	return maxf(lev, jw)
}

// partialRatio best ratio of the shorter string against every window of
// the same rune length in the longer one.
func partialRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return 0
	}
	if len(ra) == len(rb) {
		return ratio(string(ra), string(rb))
	}

	shorter := string(ra)
	best := 0.0
	for i := 0; i+len(ra) <= len(rb); i++ {
		window := string(rb[i : i+len(ra)])
		if score := ratio(shorter, window); score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

// tokenSort sắp xếp tokens theo alphabet rồi join lại
func tokenSort(s string) string {
	fields := strings.Fields(s)
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

// tokenSetRatio compares the sorted token intersection against each
// side's remainder, so shared tokens dominate regardless of order.
func tokenSetRatio(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	var inter, diffA, diffB []string
	for tok := range setA {
		if setB[tok] {
			inter = append(inter, tok)
		} else {
			diffA = append(diffA, tok)
		}
	}
	for tok := range setB {
		if !setA[tok] {
			diffB = append(diffB, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(diffA)
	sort.Strings(diffB)

	base := strings.Join(inter, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(diffA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(diffB, " "))

	best := ratio(base, combinedA)
	best = maxf(best, ratio(base, combinedB))
	best = maxf(best, ratio(combinedA, combinedB))
	return best
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
