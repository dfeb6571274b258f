package core

import (
	"math"
	"sort"
	"time"

	"github.com/gitwrap/gitwrap/schema"
)

// consistencyThreshold splits consistent from burst-driven coding seasons
// on the stdDev/mean ratio.
const consistencyThreshold = 0.5

// aggregateTemporal buckets the per-day activity records by day of week and
// by calendar month and derives the work-life and coding-season metrics.
func aggregateTemporal(records []schema.ActivityRecord) (schema.WorkLifeBalance, schema.CodingSeason) {
	var dayBuckets [7]int
	months := make(map[string]int)
	weekday, weekend := 0, 0

	for _, rec := range records {
		dow := int(rec.Date.Weekday())
		dayBuckets[dow] += rec.Count
		months[rec.Date.Format("2006-01")] += rec.Count
		if dow == int(time.Sunday) || dow == int(time.Saturday) {
			weekend += rec.Count
		} else {
			weekday += rec.Count
		}
	}

	return schema.WorkLifeBalance{
		Weekday:          weekday,
		Weekend:          weekend,
		Score:            workLifeScore(weekday, weekend),
		Label:            balanceLabel(workLifeScore(weekday, weekend)),
		WeekendDeviation: weekendDeviation(dayBuckets),
		DayOfWeekData:    schema.MaterializeDayOfWeek(dayBuckets),
	}, codingSeason(months)
}

// workLifeScore is the weekday share of all activity in [0,100]. The divisor
// is substituted with 1 when there is no activity at all, so the score is 0
// rather than undefined.
func workLifeScore(weekday, weekend int) int {
	total := weekday + weekend
	if total == 0 {
		total = 1
	}
	return int(math.Round(100 * float64(weekday) / float64(total)))
}

func balanceLabel(score int) schema.BalanceLabel {
	if score > 90 {
		return schema.NineToFivePro
	}
	return schema.WeekendWarrior
}

// weekendDeviation is the ratio of average weekend-day activity to average
// weekday activity. It is 0, never NaN or Inf, when the weekday average is 0.
func weekendDeviation(dayBuckets [7]int) float64 {
	avgWeekday := float64(dayBuckets[1]+dayBuckets[2]+dayBuckets[3]+dayBuckets[4]+dayBuckets[5]) / 5
	avgWeekend := float64(dayBuckets[0]+dayBuckets[6]) / 2
	if avgWeekday == 0 {
		return 0
	}
	return avgWeekend / avgWeekday
}

// codingSeason materializes the sparse month buckets chronologically and
// computes their mean and population standard deviation. A zero mean makes
// the consistency ratio non-computable: variability stays 0 and the label
// is NoSeason.
func codingSeason(months map[string]int) schema.CodingSeason {
	keys := make([]string, 0, len(months))
	for key := range months {
		keys = append(keys, key)
	}
	sort.Strings(keys) // YYYY-MM keys sort chronologically

	monthly := make([]schema.MonthCount, 0, len(keys))
	values := make([]float64, 0, len(keys))
	for _, key := range keys {
		monthly = append(monthly, schema.MonthCount{Month: key, Commits: months[key]})
		values = append(values, float64(months[key]))
	}

	mean, stdDev := meanStdDev(values)
	season := schema.CodingSeason{
		MonthlyData: monthly,
		Mean:        mean,
		StdDev:      stdDev,
		Label:       schema.NoSeason,
	}
	if mean > 0 {
		season.Variability = stdDev / mean
		season.Label = schema.BurstSeason
		if season.Variability < consistencyThreshold {
			season.Label = schema.ConsistentSeason
		}
	}
	return season
}

// meanStdDev returns the arithmetic mean and population standard deviation
// (divide by N, not N-1) of values. Both are 0 for an empty input.
func meanStdDev(values []float64) (mean, stdDev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(len(values))

	sumSq := 0.0
	for _, v := range values {
		sumSq += (v - mean) * (v - mean)
	}
	stdDev = math.Sqrt(sumSq / float64(len(values)))
	return mean, stdDev
}
