package models

// TeacherStats is the per-teacher aggregation output. Average is nil when the
// teacher has no ratings, which can never collide with a real average (scores are >= 1).
type TeacherStats struct {
	Teacher
	Average  *float64 `json:"average"`
	Count    int      `json:"count"`
	Comments []Rating `json:"comments"`
}

// MonthBucket holds the score sum and vote count of one calendar month.
type MonthBucket struct {
	Sum   int `json:"sum"`
	Count int `json:"count"`
}

// Average returns Sum/Count and false for an empty bucket.
func (b MonthBucket) Average() (float64, bool) {
	if b.Count == 0 {
		return 0, false
	}
	return float64(b.Sum) / float64(b.Count), true
}

// MonthlyStats maps a teacher display name to its twelve month buckets (January = 0).
type MonthlyStats map[string][12]MonthBucket
