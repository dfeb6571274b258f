package core

import (
	"testing"
	"time"

	"github.com/gitwrap/gitwrap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// day builds a record for a UTC calendar day in January 2026.
// Jan 1, 2026 is a Thursday.
func day(dayOfMonth, count int) schema.ActivityRecord {
	return schema.ActivityRecord{
		Date:  time.Date(2026, time.January, dayOfMonth, 0, 0, 0, 0, time.UTC),
		Count: count,
	}
}

func TestAggregateTemporal(t *testing.T) {
	// Jan 3 is a Saturday, Jan 4 a Sunday, Jan 5 a Monday.
	records := []schema.ActivityRecord{
		day(3, 2),
		day(4, 1),
		day(5, 6),
		day(6, 3),
	}

	balance, season := aggregateTemporal(records)

	assert.Equal(t, 9, balance.Weekday)
	assert.Equal(t, 3, balance.Weekend)
	assert.Equal(t, 75, balance.Score) // 100 * 9/12
	assert.Equal(t, schema.WeekendWarrior, balance.Label)

	// Weekday buckets: Mon=6, Tue=3, rest 0. Weekend: Sat=2, Sun=1.
	assert.InDelta(t, (3.0/2)/(9.0/5), balance.WeekendDeviation, 1e-9)

	require.Len(t, balance.DayOfWeekData, 7)
	assert.Equal(t, schema.DayCount{Day: "Sun", Commits: 1}, balance.DayOfWeekData[0])
	assert.Equal(t, schema.DayCount{Day: "Mon", Commits: 6}, balance.DayOfWeekData[1])
	assert.Equal(t, schema.DayCount{Day: "Sat", Commits: 2}, balance.DayOfWeekData[6])

	require.Len(t, season.MonthlyData, 1)
	assert.Equal(t, schema.MonthCount{Month: "2026-01", Commits: 12}, season.MonthlyData[0])
}

func TestAggregateTemporalNoActivity(t *testing.T) {
	balance, season := aggregateTemporal(nil)

	assert.Equal(t, 0, balance.Score)
	assert.Equal(t, schema.WeekendWarrior, balance.Label)
	assert.Zero(t, balance.WeekendDeviation)
	require.Len(t, balance.DayOfWeekData, 7)
	for _, entry := range balance.DayOfWeekData {
		assert.Zero(t, entry.Commits)
	}

	assert.Empty(t, season.MonthlyData)
	assert.Zero(t, season.Mean)
	assert.Zero(t, season.Variability)
	assert.Equal(t, schema.NoSeason, season.Label)
}

func TestWorkLifeScore(t *testing.T) {
	tests := []struct {
		name     string
		weekday  int
		weekend  int
		expected int
	}{
		{"no activity", 0, 0, 0},
		{"weekday only", 10, 0, 100},
		{"weekend only", 0, 10, 0},
		{"even split", 5, 5, 50},
		{"rounded up", 2, 1, 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, workLifeScore(tt.weekday, tt.weekend))
		})
	}
}

func TestBalanceLabelThreshold(t *testing.T) {
	// The boundary is strict: exactly 90 is still Weekend Warrior.
	assert.Equal(t, schema.WeekendWarrior, balanceLabel(90))
	assert.Equal(t, schema.NineToFivePro, balanceLabel(91))
}

func TestCodingSeasonLabels(t *testing.T) {
	tests := []struct {
		name     string
		months   map[string]int
		expected schema.SeasonLabel
	}{
		{"steady months", map[string]int{"2026-01": 10, "2026-02": 10, "2026-03": 12}, schema.ConsistentSeason},
		{"spiky months", map[string]int{"2026-01": 1, "2026-02": 20}, schema.BurstSeason},
		{"no months", map[string]int{}, schema.NoSeason},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, codingSeason(tt.months).Label)
		})
	}
}

func TestCodingSeasonChronologicalOrder(t *testing.T) {
	season := codingSeason(map[string]int{
		"2026-11": 3,
		"2026-02": 5,
		"2026-07": 1,
	})

	require.Len(t, season.MonthlyData, 3)
	assert.Equal(t, "2026-02", season.MonthlyData[0].Month)
	assert.Equal(t, "2026-07", season.MonthlyData[1].Month)
	assert.Equal(t, "2026-11", season.MonthlyData[2].Month)
}

func TestCodingSeasonVariability(t *testing.T) {
	season := codingSeason(map[string]int{"2026-01": 1, "2026-02": 20})

	assert.InDelta(t, 10.5, season.Mean, 1e-9)
	assert.InDelta(t, 9.5, season.StdDev, 1e-9)
	assert.InDelta(t, 9.5/10.5, season.Variability, 1e-9)
}

func TestMeanStdDev(t *testing.T) {
	// Population standard deviation, dividing by N.
	mean, stdDev := meanStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, mean, 1e-9)
	assert.InDelta(t, 2.0, stdDev, 1e-9)

	mean, stdDev = meanStdDev(nil)
	assert.Zero(t, mean)
	assert.Zero(t, stdDev)
}
