package schema

// MaterializeDayOfWeek converts the fixed 7-slot weekday bucket into labeled
// display entries. The result always has exactly 7 entries, Sunday first.
func MaterializeDayOfWeek(buckets [7]int) []DayCount {
	data := make([]DayCount, 7)
	for i, count := range buckets {
		data[i] = DayCount{Day: DayNames[i], Commits: count}
	}
	return data
}

// TotalCommits sums the per-day activity counts.
func TotalCommits(records []ActivityRecord) int {
	total := 0
	for _, rec := range records {
		total += rec.Count
	}
	return total
}
