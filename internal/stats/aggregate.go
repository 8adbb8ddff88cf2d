// Package stats turns raw rating rows into display-ready teacher statistics.
// Every function here is pure; callers fetch a fresh snapshot per request.
package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/noah-isme/teacher-eval-api/internal/models"
)

// Average returns the mean score of ratings and false when there are none.
func Average(ratings []models.Rating) (float64, bool) {
	if len(ratings) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	return float64(sum) / float64(len(ratings)), true
}

// ComputeTeacherStats groups ratings by teacher. Comments keep input order, which
// the gateway guarantees to be most-recent-first.
func ComputeTeacherStats(ratings []models.Rating, teachers []models.Teacher) map[string]models.TeacherStats {
	byTeacher := make(map[string][]models.Rating, len(teachers))
	for _, r := range ratings {
		byTeacher[r.TeacherID] = append(byTeacher[r.TeacherID], r)
	}

	out := make(map[string]models.TeacherStats, len(teachers))
	for _, t := range teachers {
		own := byTeacher[t.ID]
		entry := models.TeacherStats{Teacher: t, Count: len(own), Comments: []models.Rating{}}
		if avg, ok := Average(own); ok {
			entry.Average = &avg
		}
		for _, r := range own {
			if r.HasComment() {
				entry.Comments = append(entry.Comments, r)
			}
		}
		out[t.ID] = entry
	}
	return out
}

// RankTeachers orders the stats of teachers for a leaderboard: highest average
// first, teachers without ratings last, ties broken by name and then id.
func RankTeachers(teachers []models.Teacher, stats map[string]models.TeacherStats) []models.TeacherStats {
	ranked := make([]models.TeacherStats, 0, len(teachers))
	for _, t := range teachers {
		if s, ok := stats[t.ID]; ok {
			ranked = append(ranked, s)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		switch {
		case a.Average == nil && b.Average != nil:
			return false
		case a.Average != nil && b.Average == nil:
			return true
		case a.Average != nil && b.Average != nil && *a.Average != *b.Average:
			return *a.Average > *b.Average
		}
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn
		}
		return a.ID < b.ID
	})
	return ranked
}

// UniqueTeacherNames collects distinct teacher names across all classes, sorted.
func UniqueTeacherNames(byClass models.TeachersByClass) []string {
	set := make(map[string]struct{})
	for _, teachers := range byClass {
		for _, t := range teachers {
			set[t.Name] = struct{}{}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ComputeMonthlyStats buckets ratings of year by teacher name and month using the
// class directory to resolve names.
func ComputeMonthlyStats(ratings []models.Rating, byClass models.TeachersByClass, year int, loc *time.Location) models.MonthlyStats {
	return MonthlyStatsForNames(ratings, UniqueTeacherNames(byClass), byClass.IDToName(), year, loc)
}

// MonthlyStatsForNames pre-initialises twelve empty buckets per name, then adds
// every rating whose timestamp falls in year (evaluated in loc). Ratings whose
// teacher id does not resolve to one of names are dropped.
func MonthlyStatsForNames(ratings []models.Rating, names []string, idToName map[string]string, year int, loc *time.Location) models.MonthlyStats {
	if loc == nil {
		loc = time.Local
	}
	out := make(models.MonthlyStats, len(names))
	for _, name := range names {
		out[name] = [12]models.MonthBucket{}
	}

	for _, r := range ratings {
		ts := r.Timestamp.In(loc)
		if ts.Year() != year {
			continue
		}
		name, ok := idToName[r.TeacherID]
		if !ok {
			continue
		}
		buckets, ok := out[name]
		if !ok {
			continue
		}
		month := int(ts.Month()) - 1
		buckets[month].Sum += r.Score
		buckets[month].Count++
		out[name] = buckets
	}
	return out
}

// YearTotal sums the twelve buckets; its Average is the vote-weighted yearly mean.
func YearTotal(buckets [12]models.MonthBucket) models.MonthBucket {
	var total models.MonthBucket
	for _, b := range buckets {
		total.Sum += b.Sum
		total.Count += b.Count
	}
	return total
}
