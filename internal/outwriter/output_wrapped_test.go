package outwriter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gitwrap/gitwrap/internal/contract"
	"github.com/gitwrap/gitwrap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStats() *schema.WrappedStats {
	var buckets [7]int
	buckets[1] = 8
	buckets[6] = 2

	return &schema.WrappedStats{
		Year:         2026,
		User:         schema.UserProfile{Login: "octocat", Name: "The Octocat"},
		TotalCommits: 10,
		WorkLifeBalance: schema.WorkLifeBalance{
			Weekday:          8,
			Weekend:          2,
			Score:            80,
			Label:            schema.WeekendWarrior,
			WeekendDeviation: 0.625,
			DayOfWeekData:    schema.MaterializeDayOfWeek(buckets),
		},
		Persona: schema.Persona{
			Title:          schema.TheArchitect,
			Description:    schema.PersonaDescription(schema.TheArchitect),
			MessageLengths: []int{20, 24},
			AvgLength:      22,
			MedianLength:   20,
		},
		CodingSeason: schema.CodingSeason{
			MonthlyData: []schema.MonthCount{{Month: "2026-03", Commits: 10}},
			Mean:        10,
			Label:       schema.ConsistentSeason,
		},
		TopDependency:      "react",
		Dependencies:       []schema.DependencyCount{{Name: "react", Count: 3}},
		DependencyVariance: 0.5,
		ForgottenRepo: &schema.ForgottenRepo{
			Name:            "dusty",
			CreatedAt:       "Apr 1, 2022",
			LastUpdated:     "Apr 1, 2023",
			DaysSinceUpdate: 1246,
		},
	}
}

func plainConfig() *contract.Config {
	return &contract.Config{
		Output:    schema.TextOut,
		Precision: 1,
		Width:     80,
	}
}

func TestWriteWrappedText(t *testing.T) {
	var buf bytes.Buffer
	err := writeWrappedText(&buf, sampleStats(), plainConfig(), 125*time.Millisecond)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "The Octocat's 2026 in code")
	assert.Contains(t, out, "Total commits: 10")
	assert.Contains(t, out, "Work-life balance: 80/100 (Weekend Warrior)")
	assert.Contains(t, out, "Commit persona: The Architect - Clean, structured, reliable.")
	assert.Contains(t, out, "Coding season: Consistent")
	assert.Contains(t, out, "Top dependency: react")
	assert.Contains(t, out, "untouched for 1246 days")
	assert.Contains(t, out, "Computed in 125ms")
	// Emojis are off in this config.
	assert.NotContains(t, out, "🎁")
}

func TestWriteWrappedTextNoForgottenRepo(t *testing.T) {
	stats := sampleStats()
	stats.ForgottenRepo = nil

	var buf bytes.Buffer
	require.NoError(t, writeWrappedText(&buf, stats, plainConfig(), time.Millisecond))
	assert.Contains(t, buf.String(), "The one that got away: None")
}

func TestWriteWrappedTextFallsBackToLogin(t *testing.T) {
	stats := sampleStats()
	stats.User.Name = ""

	var buf bytes.Buffer
	require.NoError(t, writeWrappedText(&buf, stats, plainConfig(), time.Millisecond))
	assert.Contains(t, buf.String(), "octocat's 2026 in code")
}

func TestWriteWrappedCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeWrappedCSV(&buf, sampleStats(), plainConfig()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"section", "field", "value"}, rows[0])
	assert.Contains(t, rows, []string{"user", "login", "octocat"})
	assert.Contains(t, rows, []string{"user", "totalCommits", "10"})
	assert.Contains(t, rows, []string{"workLifeBalance", "score", "80"})
	assert.Contains(t, rows, []string{"persona", "title", "The Architect"})
	assert.Contains(t, rows, []string{"dayOfWeek", "Mon", "8"})
	assert.Contains(t, rows, []string{"monthly", "2026-03", "10"})
	assert.Contains(t, rows, []string{"dependency", "react", "3"})
	assert.Contains(t, rows, []string{"forgottenRepo", "name", "dusty"})
}

func TestWriteWrappedCSVNoForgottenRepo(t *testing.T) {
	stats := sampleStats()
	stats.ForgottenRepo = nil

	var buf bytes.Buffer
	require.NoError(t, writeWrappedCSV(&buf, stats, plainConfig()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Contains(t, rows, []string{"forgottenRepo", "name", "None"})
}

func TestWriteWrappedResultsJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrapped.json")
	cfg := plainConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = path

	require.NoError(t, WriteWrappedResults(sampleStats(), cfg, time.Second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"login": "octocat"`)
	assert.Contains(t, string(data), `"topDependency": "react"`)
}
