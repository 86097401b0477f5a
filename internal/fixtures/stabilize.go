package fixtures

import "strings"

// dummyCount replaces every numeric value found in a count context so
// that view/comment/like counters never churn between generations.
const dummyCount = 1

// Rule describes how a volatile field is replaced.
//
// Pattern is compared against the field name: exact match by default,
// case-insensitive substring match when PartialMatch is set.
type Rule struct {
	Pattern      string
	Replacement  any
	PartialMatch bool
}

// Matches reports whether this rule applies to the given field name.
func (r Rule) Matches(field string) bool {
	if r.PartialMatch {
		return strings.Contains(strings.ToLower(field), strings.ToLower(r.Pattern))
	}
	return r.Pattern == field
}

// defaultRules is the centralized replacement table for volatile fields.
var defaultRules = []Rule{
	// Exact matches
	{Pattern: "searchId", Replacement: "dummy-search-id-for-testing"},
	{Pattern: "lastViewedAt", Replacement: "2025-01-01T00:00:00+09:00"},
	{Pattern: "serverTime", Replacement: "2025-01-01T00:00:00+09:00"},
	{Pattern: "registeredAt", Replacement: "2025-01-01T00:00:00+09:00"},
	{Pattern: "createdAt", Replacement: "2025-01-01T00:00:00+09:00"},
	{Pattern: "addedAt", Replacement: "2025-01-01T00:00:00+09:00"},
	{Pattern: "likedAt", Replacement: "2025-01-01T00:00:00+09:00"},
	{Pattern: "nicosid", Replacement: "dummy_nicosid_for_testing"},
	{Pattern: "watchTrackId", Replacement: "dummy_track_id_for_testing"},
	{Pattern: "isPeakTime", Replacement: false},
	{Pattern: "thumbnailUrl", Replacement: "https://resource.video.nimg.jp/web/img/series/no_thumbnail.png"},
	{Pattern: "playbackPosition", Replacement: 0.0},
	{Pattern: "hls_url", Replacement: "https://dummy.hls.url/for/testing"},
	{Pattern: "domand_bid", Replacement: "dummy_domand_bid_for_testing"},
	{Pattern: "hls_playlist_text", Replacement: "dummy_hls_playlist_text_for_testing"},
	{Pattern: "threadKey", Replacement: "dummy.jwt.token.for.testing"},
	{Pattern: "accessRightKey", Replacement: "dummy.jwt.token.for.testing"},
	{Pattern: "editKey", Replacement: "dummy.jwt.token.for.testing"},
	{Pattern: "views", Replacement: dummyCount},
	// Partial matches
	{Pattern: "description", Replacement: "This is a dummy description for testing purposes.", PartialMatch: true},
}

// Stabilizer replaces volatile fields in decoded JSON so repeated
// generations produce byte-identical fixtures.
type Stabilizer struct {
	rules []Rule
}

// NewStabilizer creates a Stabilizer with the default rule table.
func NewStabilizer() *Stabilizer {
	return &Stabilizer{rules: defaultRules}
}

// Stabilize returns a copy of data with all volatile fields replaced.
//
// data must be a decoded JSON value (map[string]any, []any, or primitive).
func (s *Stabilizer) Stabilize(data any) any {
	return s.stabilizeValue("", data, false)
}

// stabilizeValue applies rules to a single value.
//
// Rule lookup happens on the field name under which the value is stored,
// before recursing, so a rule on an object-valued field replaces the
// whole object. Numeric values inside any field whose name contains
// "count" collapse to dummyCount.
func (s *Stabilizer) stabilizeValue(key string, value any, inCountContext bool) any {
	for _, rule := range s.rules {
		if rule.Matches(key) {
			return rule.Replacement
		}
	}

	switch v := value.(type) {
	case map[string]any:
		return s.stabilizeMap(v, inCountContext)
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = s.stabilizeValue(key, item, inCountContext)
		}
		return items
	case float64:
		if inCountContext {
			return float64(dummyCount)
		}
	case int:
		if inCountContext {
			return dummyCount
		}
	}

	return value
}

func (s *Stabilizer) stabilizeMap(data map[string]any, parentIsCount bool) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = s.stabilizeValue(k, v, parentIsCount || strings.Contains(strings.ToLower(k), "count"))
	}
	return out
}
