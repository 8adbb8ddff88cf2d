package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAverage(t *testing.T) {
	assert.Equal(t, "4.7", FormatAverage(4.666, true))
	assert.Equal(t, "5.0", FormatAverage(5, true))
	assert.Equal(t, NoData, FormatAverage(0, false))
	assert.Equal(t, NoData, FormatAveragePtr(nil))
}

func TestScoreTier(t *testing.T) {
	cases := []struct {
		avg  float64
		ok   bool
		want string
	}{
		{4.5, true, TierExcellent},
		{4.49, true, TierGood},
		{3.5, true, TierGood},
		{2.5, true, TierFair},
		{1.2, true, TierPoor},
		{0, false, TierNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ScoreTier(tc.avg, tc.ok), tc.avg)
	}
}

func TestSortClassNames(t *testing.T) {
	names := []string{"10A", "7V", "5A", "11B", "7A", "Staff", "9D"}
	SortClassNames(names)
	assert.Equal(t, []string{"Staff", "5A", "7A", "7V", "9D", "10A", "11B"}, names)
}

func TestFilterNames(t *testing.T) {
	names := []string{"Aziza Karimova", "Bobur Aliyev", "Karim Tursunov"}
	assert.Equal(t, []string{"Aziza Karimova", "Karim Tursunov"}, FilterNames(names, " KARIM"))
	assert.Equal(t, names, FilterNames(names, ""))
	assert.Empty(t, FilterNames(names, "zz"))
}
