package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gitwrap/gitwrap/internal/contract"
	"github.com/gitwrap/gitwrap/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteWrappedResults outputs the wrapped statistics, dispatching based on
// the output format configured.
func WriteWrappedResults(stats *schema.WrappedStats, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, stats)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWrappedCSV(w, stats, cfg)
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWrappedText(w, stats, cfg, duration)
		}, "text")
	}
}

// writeWrappedText renders the human-readable report: a header, one section
// per analyzer, then a footer with timing.
func writeWrappedText(w io.Writer, stats *schema.WrappedStats, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFloatFormatter(cfg.Precision)
	header := func(emoji, title string) string {
		if cfg.UseEmojis {
			return fmt.Sprintf("%s %s", emoji, title)
		}
		return title
	}

	who := stats.User.Login
	if stats.User.Name != "" {
		who = stats.User.Name
	}
	if _, err := fmt.Fprintf(w, "%s\n", header("🎁", fmt.Sprintf("%s's %d in code", who, stats.Year))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total commits: %d\n\n", stats.TotalCommits); err != nil {
		return err
	}

	// --- Work-life balance ---
	wlb := stats.WorkLifeBalance
	if _, err := fmt.Fprintf(w, "%s: %d/100 (%s)\n",
		header("⚖️ ", "Work-life balance"), wlb.Score,
		contract.GetBalanceLabel(wlb.Label, cfg.UseColors)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Weekday commits: %d  Weekend commits: %d  Weekend deviation: %s\n",
		wlb.Weekday, wlb.Weekend, fmtFloat(wlb.WeekendDeviation)); err != nil {
		return err
	}
	if err := writeDayOfWeekTable(w, wlb.DayOfWeekData); err != nil {
		return err
	}

	// --- Persona ---
	persona := stats.Persona
	if _, err := fmt.Fprintf(w, "%s: %s - %s\n",
		header("🪪", "Commit persona"),
		contract.GetPersonaTitle(persona.Title, cfg.UseColors), persona.Description); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Messages: %d  Avg length: %s  Median length: %d\n",
		len(persona.MessageLengths), fmtFloat(persona.AvgLength), persona.MedianLength); err != nil {
		return err
	}

	// --- Coding season ---
	season := stats.CodingSeason
	if _, err := fmt.Fprintf(w, "%s: %s (mean %s/mo, stddev %s)\n",
		header("📅", "Coding season"),
		contract.GetSeasonLabel(season.Label, cfg.UseColors),
		fmtFloat(season.Mean), fmtFloat(season.StdDev)); err != nil {
		return err
	}
	if len(season.MonthlyData) > 0 {
		if err := writeMonthlyTable(w, season.MonthlyData); err != nil {
			return err
		}
	}

	// --- Dependencies ---
	if _, err := fmt.Fprintf(w, "%s: %s (variance %s)\n",
		header("📦", "Top dependency"), stats.TopDependency,
		fmtFloat(stats.DependencyVariance)); err != nil {
		return err
	}
	if len(stats.Dependencies) > 0 {
		if err := writeDependencyTable(w, stats.Dependencies, cfg); err != nil {
			return err
		}
	}

	// --- Forgotten repo ---
	if repo := stats.ForgottenRepo; repo != nil {
		if _, err := fmt.Fprintf(w, "%s: %s - untouched for %d days (created %s, last updated %s)\n",
			header("🕸️ ", "The one that got away"), repo.Name,
			repo.DaysSinceUpdate, repo.CreatedAt, repo.LastUpdated); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%s: None\n",
			header("🕸️ ", "The one that got away")); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nComputed in %v\n", duration.Round(time.Millisecond))
	return err
}

// writeDayOfWeekTable renders the fixed 7-row weekday table.
func writeDayOfWeekTable(w io.Writer, days []schema.DayCount) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Day", "Commits"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, day := range days {
		data = append(data, []string{day.Day, strconv.Itoa(day.Commits)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeMonthlyTable renders the chronological month table.
func writeMonthlyTable(w io.Writer, months []schema.MonthCount) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Month", "Commits"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, month := range months {
		data = append(data, []string{month.Month, strconv.Itoa(month.Commits)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeDependencyTable renders the ranked dependency table.
func writeDependencyTable(w io.Writer, deps []schema.DependencyCount, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Package", "Repos"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for i, dep := range deps {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			truncateName(dep.Name, maxWidth),
			strconv.Itoa(dep.Count),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeWrappedCSV flattens the report into section/field/value rows so a
// single file carries the scalars plus the tabular sections.
func writeWrappedCSV(w io.Writer, stats *schema.WrappedStats, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	rows := [][]string{
		{"user", "login", stats.User.Login},
		{"user", "year", strconv.Itoa(stats.Year)},
		{"user", "totalCommits", strconv.Itoa(stats.TotalCommits)},
		{"workLifeBalance", "weekday", strconv.Itoa(stats.WorkLifeBalance.Weekday)},
		{"workLifeBalance", "weekend", strconv.Itoa(stats.WorkLifeBalance.Weekend)},
		{"workLifeBalance", "score", strconv.Itoa(stats.WorkLifeBalance.Score)},
		{"workLifeBalance", "label", string(stats.WorkLifeBalance.Label)},
		{"workLifeBalance", "weekendDeviation", fmtFloat(stats.WorkLifeBalance.WeekendDeviation)},
		{"persona", "title", string(stats.Persona.Title)},
		{"persona", "avgLength", fmtFloat(stats.Persona.AvgLength)},
		{"persona", "medianLength", strconv.Itoa(stats.Persona.MedianLength)},
		{"codingSeason", "mean", fmtFloat(stats.CodingSeason.Mean)},
		{"codingSeason", "stdDev", fmtFloat(stats.CodingSeason.StdDev)},
		{"codingSeason", "label", string(stats.CodingSeason.Label)},
		{"dependencies", "topDependency", stats.TopDependency},
		{"dependencies", "variance", fmtFloat(stats.DependencyVariance)},
	}
	for _, day := range stats.WorkLifeBalance.DayOfWeekData {
		rows = append(rows, []string{"dayOfWeek", day.Day, strconv.Itoa(day.Commits)})
	}
	for _, month := range stats.CodingSeason.MonthlyData {
		rows = append(rows, []string{"monthly", month.Month, strconv.Itoa(month.Commits)})
	}
	for _, dep := range stats.Dependencies {
		rows = append(rows, []string{"dependency", dep.Name, strconv.Itoa(dep.Count)})
	}
	if repo := stats.ForgottenRepo; repo != nil {
		rows = append(rows,
			[]string{"forgottenRepo", "name", repo.Name},
			[]string{"forgottenRepo", "createdAt", repo.CreatedAt},
			[]string{"forgottenRepo", "lastUpdated", repo.LastUpdated},
			[]string{"forgottenRepo", "daysSinceUpdate", strconv.Itoa(repo.DaysSinceUpdate)},
		)
	} else {
		rows = append(rows, []string{"forgottenRepo", "name", "None"})
	}

	return writeCSVRows(w, []string{"section", "field", "value"}, rows)
}
