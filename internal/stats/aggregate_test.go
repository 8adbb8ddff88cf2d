package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/teacher-eval-api/internal/models"
)

func strPtr(s string) *string { return &s }

func rating(id, teacherID string, score int, ts time.Time, comment *string) models.Rating {
	return models.Rating{ID: id, TeacherID: teacherID, ClassName: "7A", Score: score, Timestamp: ts, Comment: comment}
}

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestComputeTeacherStats(t *testing.T) {
	teachers := []models.Teacher{
		{ID: "t1", Name: "Aziza Karimova", Subject: "Math"},
		{ID: "t2", Name: "Bobur Aliyev", Subject: "Physics"},
		{ID: "t3", Name: "Dilnoza Rahimova", Subject: "History"},
	}
	now := at(2024, time.May, 10)
	ratings := []models.Rating{
		rating("r1", "t1", 5, now, strPtr("great")),
		rating("r2", "t1", 4, now.Add(-time.Hour), nil),
		rating("r3", "t2", 3, now, strPtr("")),
		rating("r4", "t1", 3, now.Add(-2*time.Hour), strPtr("ok")),
		rating("r5", "ghost", 1, now, nil),
	}

	stats := ComputeTeacherStats(ratings, teachers)

	require.Len(t, stats, 3)
	t1 := stats["t1"]
	require.NotNil(t, t1.Average)
	assert.InDelta(t, 4.0, *t1.Average, 1e-9)
	assert.Equal(t, 3, t1.Count)
	require.Len(t, t1.Comments, 2)
	assert.Equal(t, "r1", t1.Comments[0].ID)
	assert.Equal(t, "r4", t1.Comments[1].ID)

	t2 := stats["t2"]
	assert.Equal(t, 1, t2.Count)
	assert.Empty(t, t2.Comments)

	t3 := stats["t3"]
	assert.Nil(t, t3.Average)
	assert.Zero(t, t3.Count)
	assert.NotNil(t, t3.Comments)
	assert.Equal(t, NoData, FormatAveragePtr(t3.Average))
}

func TestAverageBounds(t *testing.T) {
	cases := [][]int{{1}, {5}, {1, 5}, {2, 3, 4, 4}, {5, 5, 5, 1}}
	for _, scores := range cases {
		var ratings []models.Rating
		sum := 0
		for i, s := range scores {
			ratings = append(ratings, rating(string(rune('a'+i)), "t1", s, at(2024, 1, 1), nil))
			sum += s
		}
		avg, ok := Average(ratings)
		require.True(t, ok)
		assert.InDelta(t, float64(sum)/float64(len(scores)), avg, 1e-9)
		assert.GreaterOrEqual(t, avg, 1.0)
		assert.LessOrEqual(t, avg, 5.0)
	}

	_, ok := Average(nil)
	assert.False(t, ok)
}

func TestRankTeachers(t *testing.T) {
	teachers := []models.Teacher{
		{ID: "a", Name: "Zarina"},
		{ID: "b", Name: "Anvar"},
		{ID: "c", Name: "Malika"},
		{ID: "d", Name: "Nodira"},
		{ID: "e", Name: "Bekzod"},
	}
	avg := func(v float64) *float64 { return &v }
	stats := map[string]models.TeacherStats{
		"a": {Teacher: teachers[0], Average: avg(4.2)},
		"b": {Teacher: teachers[1], Average: avg(4.8)},
		"c": {Teacher: teachers[2], Average: avg(3.0)},
		"d": {Teacher: teachers[3]},
		"e": {Teacher: teachers[4], Average: avg(4.2)},
	}

	ranked := RankTeachers(teachers, stats)

	var order []string
	for _, s := range ranked {
		order = append(order, s.ID)
	}
	assert.Equal(t, []string{"b", "e", "a", "c", "d"}, order)
}

func TestComputeMonthlyStatsWeightedYear(t *testing.T) {
	byClass := models.TeachersByClass{
		"7A": {{ID: "t1", Name: "Aziza"}, {ID: "t2", Name: "Bobur"}},
		"8B": {{ID: "t1", Name: "Aziza"}, {ID: "t3", Name: "Sardor"}},
	}
	ratings := []models.Rating{
		rating("r1", "t1", 5, at(2024, time.January, 3), nil),
		rating("r2", "t1", 5, at(2024, time.January, 20), nil),
		rating("r3", "t1", 1, at(2024, time.February, 2), nil),
		rating("r4", "t1", 4, at(2023, time.December, 31), nil),
		rating("r5", "t2", 3, at(2024, time.December, 1), nil),
		rating("r6", "unknown", 5, at(2024, time.March, 1), nil),
	}

	monthly := ComputeMonthlyStats(ratings, byClass, 2024, time.UTC)

	require.Len(t, monthly, 3)
	aziza := monthly["Aziza"]
	assert.Equal(t, models.MonthBucket{Sum: 10, Count: 2}, aziza[0])
	assert.Equal(t, models.MonthBucket{Sum: 1, Count: 1}, aziza[1])

	total := YearTotal(aziza)
	assert.Equal(t, 3, total.Count)
	yearly, ok := total.Average()
	require.True(t, ok)
	assert.InDelta(t, 11.0/3.0, yearly, 1e-9)
	assert.Equal(t, "3.7", FormatAverage(yearly, ok))

	sardor := monthly["Sardor"]
	assert.Zero(t, YearTotal(sardor).Count)
	_, ok = YearTotal(sardor).Average()
	assert.False(t, ok)

	assert.Equal(t, 1, monthly["Bobur"][11].Count)
}

func TestMonthlyStatsCountsEveryRatingOnce(t *testing.T) {
	names := []string{"Aziza"}
	idToName := map[string]string{"t1": "Aziza"}
	var ratings []models.Rating
	for m := 1; m <= 12; m++ {
		for d := 1; d <= m; d++ {
			ratings = append(ratings, rating("r", "t1", (d%5)+1, at(2024, time.Month(m), d), nil))
		}
	}
	ratings = append(ratings, rating("old", "t1", 5, at(2023, time.June, 1), nil))

	monthly := MonthlyStatsForNames(ratings, names, idToName, 2024, time.UTC)

	assert.Equal(t, 78, YearTotal(monthly["Aziza"]).Count)
	for m, bucket := range monthly["Aziza"] {
		assert.Equal(t, m+1, bucket.Count)
	}
}

func TestMonthlyStatsUsesLocation(t *testing.T) {
	tashkent := time.FixedZone("UZT", 5*3600)
	idToName := map[string]string{"t1": "Aziza"}
	ratings := []models.Rating{
		rating("r1", "t1", 4, time.Date(2023, time.December, 31, 20, 0, 0, 0, time.UTC), nil),
	}

	inUTC := MonthlyStatsForNames(ratings, []string{"Aziza"}, idToName, 2024, time.UTC)
	inTashkent := MonthlyStatsForNames(ratings, []string{"Aziza"}, idToName, 2024, tashkent)

	assert.Zero(t, YearTotal(inUTC["Aziza"]).Count)
	assert.Equal(t, 1, inTashkent["Aziza"][0].Count)
}

func TestUniqueTeacherNames(t *testing.T) {
	byClass := models.TeachersByClass{
		"7A": {{ID: "t2", Name: "Bobur"}, {ID: "t1", Name: "Aziza"}},
		"8B": {{ID: "t1", Name: "Aziza"}},
	}
	assert.Equal(t, []string{"Aziza", "Bobur"}, UniqueTeacherNames(byClass))
}
