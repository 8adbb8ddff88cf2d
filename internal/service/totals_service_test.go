package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/teacher-eval-api/internal/dto"
	"github.com/noah-isme/teacher-eval-api/internal/models"
	appErrors "github.com/noah-isme/teacher-eval-api/pkg/errors"
)

type fakeYearRatings struct {
	ratings []models.Rating
	years   []int
}

func (f *fakeYearRatings) YearRatings(_ context.Context, year int) []models.Rating {
	f.years = append(f.years, year)
	return f.ratings
}

type fakeAssignments struct {
	byClass models.TeachersByClass
}

func (f *fakeAssignments) TeachersByClassMap(context.Context) models.TeachersByClass {
	return f.byClass
}

func totalsFixture(t *testing.T) (*TotalsService, *fakeYearRatings) {
	at := func(m time.Month, d int) time.Time { return time.Date(2024, m, d, 10, 0, 0, 0, time.UTC) }
	ratings := &fakeYearRatings{ratings: []models.Rating{
		{ID: "r1", TeacherID: "t1", Score: 5, Timestamp: at(time.January, 5)},
		{ID: "r2", TeacherID: "t1", Score: 5, Timestamp: at(time.January, 9)},
		{ID: "r3", TeacherID: "t1", Score: 1, Timestamp: at(time.February, 1)},
		{ID: "r4", TeacherID: "t2", Score: 4, Timestamp: at(time.May, 3)},
		{ID: "r5", TeacherID: "ghost", Score: 2, Timestamp: at(time.May, 3)},
	}}
	directory := &fakeAssignments{byClass: models.TeachersByClass{
		"7A": {{ID: "t1", Name: "Aziza Karimova"}, {ID: "t2", Name: "Bobur Aliyev"}},
		"8B": {{ID: "t1", Name: "Aziza Karimova"}, {ID: "t3", Name: "Sardor Qodirov"}},
	}}
	svc := NewTotalsService(TotalsServiceParams{
		Ratings:    ratings,
		Directory:  directory,
		Translator: newCatalog(t),
		Location:   time.UTC,
	})
	svc.now = func() time.Time { return time.Date(2024, time.May, 15, 8, 0, 0, 0, time.UTC) }
	return svc, ratings
}

func TestTotalsServiceAllMonths(t *testing.T) {
	svc, _ := totalsFixture(t)

	grid, hit, err := svc.Yearly(context.Background(), dto.TotalsQuery{Year: 2024, Month: "all", Language: "en"})
	require.NoError(t, err)
	assert.False(t, hit)
	require.Len(t, grid.Months, 12)
	assert.Equal(t, "January", grid.Months[0].Label)
	require.Len(t, grid.Rows, 3)

	aziza := grid.Rows[0]
	assert.Equal(t, "Aziza Karimova", aziza.Teacher)
	require.Len(t, aziza.Cells, 12)
	assert.Equal(t, "5.0", aziza.Cells[0].Display)
	assert.Equal(t, 2, aziza.Cells[0].Count)
	assert.Equal(t, "1.0", aziza.Cells[1].Display)
	assert.Equal(t, "-", aziza.Cells[2].Display)
	assert.Equal(t, 3, aziza.Yearly.Count)
	assert.Equal(t, "3.7", aziza.Yearly.Display)
	require.NotNil(t, aziza.Yearly.Average)
	assert.InDelta(t, 11.0/3.0, *aziza.Yearly.Average, 1e-9)

	sardor := grid.Rows[2]
	assert.Equal(t, "Sardor Qodirov", sardor.Teacher)
	assert.Equal(t, "-", sardor.Yearly.Display)
	assert.Nil(t, sardor.Yearly.Average)
	assert.Equal(t, "Overall results", grid.Labels["admin_totals_title"])
}

func TestTotalsServiceDefaultsAndSingleMonth(t *testing.T) {
	svc, ratings := totalsFixture(t)

	grid, _, err := svc.Yearly(context.Background(), dto.TotalsQuery{Search: "bob"})
	require.NoError(t, err)
	assert.Equal(t, 2024, grid.Year)
	assert.Equal(t, "4", grid.Month)
	assert.Equal(t, "uz", grid.Language)
	require.Len(t, grid.Months, 1)
	assert.Equal(t, "May", grid.Months[0].Label)
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, "Bobur Aliyev", grid.Rows[0].Teacher)
	assert.Equal(t, "4.0", grid.Rows[0].Cells[0].Display)
	assert.Equal(t, []int{2024}, ratings.years)
}

func TestTotalsServiceValidation(t *testing.T) {
	svc, _ := totalsFixture(t)
	cases := []dto.TotalsQuery{
		{Year: 1800},
		{Year: 2024, Month: "12"},
		{Year: 2024, Month: "-1"},
		{Year: 2024, Month: "may"},
	}
	for _, q := range cases {
		_, _, err := svc.Yearly(context.Background(), q)
		var appErr *appErrors.Error
		require.ErrorAs(t, err, &appErr, q)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	}
}

func TestTotalsServiceNoSearchResults(t *testing.T) {
	svc, _ := totalsFixture(t)
	grid, _, err := svc.Yearly(context.Background(), dto.TotalsQuery{Year: 2024, Month: "all", Search: "zzz"})
	require.NoError(t, err)
	assert.NotNil(t, grid.Rows)
	assert.Empty(t, grid.Rows)
}

func TestTotalsServiceExport(t *testing.T) {
	svc, _ := totalsFixture(t)
	ctx := context.Background()

	file, err := svc.Export(ctx, dto.TotalsQuery{Year: 2024, Month: "all", Language: "en"}, "csv")
	require.NoError(t, err)
	assert.Equal(t, "teacher-totals-2024-all.csv", file.Filename)
	assert.True(t, strings.HasPrefix(file.ContentType, "text/csv"))
	body := string(bytes.TrimPrefix(file.Payload, []byte("\ufeff")))
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Teacher,January,February,March,April,May,June,July,August,September,October,November,December,Year", strings.TrimSpace(lines[0]))
	assert.True(t, strings.HasPrefix(lines[1], "Aziza Karimova,5.0,1.0,-"))

	file, err = svc.Export(ctx, dto.TotalsQuery{Year: 2024, Month: "1", Language: "en"}, "XLSX")
	require.NoError(t, err)
	assert.Equal(t, "teacher-totals-2024-1.xlsx", file.Filename)
	assert.NotEmpty(t, file.Payload)

	file, err = svc.Export(ctx, dto.TotalsQuery{Year: 2024, Month: "all"}, "pdf")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(file.Payload, []byte("%PDF")))

	_, err = svc.Export(ctx, dto.TotalsQuery{Year: 2024}, "docx")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
