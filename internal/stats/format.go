package stats

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// NoData is rendered in place of an average when there are no ratings.
const NoData = "-"

// Score tiers used by the admin views to colour averages.
const (
	TierExcellent = "excellent"
	TierGood      = "good"
	TierFair      = "fair"
	TierPoor      = "poor"
	TierNone      = "none"
)

// FormatAverage renders avg with one decimal, or NoData.
func FormatAverage(avg float64, ok bool) string {
	if !ok {
		return NoData
	}
	return strconv.FormatFloat(avg, 'f', 1, 64)
}

// FormatAveragePtr is FormatAverage for the nil-sentinel form.
func FormatAveragePtr(avg *float64) string {
	if avg == nil {
		return NoData
	}
	return FormatAverage(*avg, true)
}

// ScoreTier classifies an average.
func ScoreTier(avg float64, ok bool) string {
	switch {
	case !ok || avg <= 0:
		return TierNone
	case avg >= 4.5:
		return TierExcellent
	case avg >= 3.5:
		return TierGood
	case avg >= 2.5:
		return TierFair
	default:
		return TierPoor
	}
}

var nonDigits = regexp.MustCompile(`\D`)

func classNumber(name string) int {
	n, err := strconv.Atoi(nonDigits.ReplaceAllString(name, ""))
	if err != nil {
		return 0
	}
	return n
}

// SortClassNames orders classes by their grade number, then lexically, so 5A
// precedes 10A.
func SortClassNames(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		ni, nj := classNumber(names[i]), classNumber(names[j])
		if ni != nj {
			return ni < nj
		}
		return names[i] < names[j]
	})
}

// FilterNames keeps names containing search, case-insensitively.
func FilterNames(names []string, search string) []string {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		out := make([]string, len(names))
		copy(out, names)
		return out
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), search) {
			out = append(out, name)
		}
	}
	return out
}
