// Package schema has configs, models and global variables for all parts of gitwrap.
package schema

import "time"

// ActivityRecord is one day of push activity inside the analysis window.
// There is at most one record per distinct date and counts are never negative.
type ActivityRecord struct {
	Date  time.Time // Calendar day at UTC midnight
	Count int       // Commits pushed on that day
}

// Event is one normalized entry from the account's public event feed.
// Push payload fields are populated only for push-type events.
type Event struct {
	Type        string    // Raw event type, e.g. "PushEvent"
	CreatedAt   time.Time // Event timestamp as reported by the source
	CommitCount int       // Push size reported by the payload
	Messages    []string  // Commit messages carried by the push payload
}

// Repository describes one owned repository as supplied by the source.
// It is input only and never mutated.
type Repository struct {
	Name      string
	FullName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserProfile is the authenticated account's basic profile.
type UserProfile struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatarUrl"`
	PublicRepos int    `json:"publicRepos"`
	Followers   int    `json:"followers"`
}

// DayCount pairs a weekday name with its summed commit count.
type DayCount struct {
	Day     string `json:"day"`
	Commits int    `json:"commits"`
}

// MonthCount pairs a "YYYY-MM" key with its summed commit count.
type MonthCount struct {
	Month   string `json:"month"`
	Commits int    `json:"commits"`
}

// DependencyCount pairs a package name with the number of distinct scanned
// repositories declaring it.
type DependencyCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// WorkLifeBalance holds the weekday/weekend split and its derived metrics.
// DayOfWeekData always has exactly 7 entries, Sunday through Saturday,
// no matter how sparse the underlying activity is.
type WorkLifeBalance struct {
	Weekday          int          `json:"weekday"`
	Weekend          int          `json:"weekend"`
	Score            int          `json:"score"`
	Label            BalanceLabel `json:"label"`
	WeekendDeviation float64      `json:"weekendDeviation"`
	DayOfWeekData    []DayCount   `json:"dayOfWeekData"`
}

// Persona holds commit-message length statistics and the style classification.
// Message text is reduced to lengths during classification and never retained.
type Persona struct {
	Title          PersonaTitle `json:"title"`
	Description    string       `json:"description"`
	MessageLengths []int        `json:"messageLengths"`
	AvgLength      float64      `json:"avgLength"`
	MedianLength   int          `json:"medianLength"`
}

// CodingSeason holds monthly activity buckets in chronological order plus
// their mean and population standard deviation. Variability is StdDev/Mean
// and stays 0 whenever the mean is 0.
type CodingSeason struct {
	MonthlyData []MonthCount `json:"monthlyData"`
	Mean        float64      `json:"mean"`
	StdDev      float64      `json:"stdDev"`
	Variability float64      `json:"variability"`
	Label       SeasonLabel  `json:"label"`
}

// ForgottenRepo is the first repository, in source order, whose creation and
// last update both precede the six-calendar-month cutoff. All fields are
// computed once at selection time and never change afterwards. The raw
// timestamps are Unix milliseconds for proportional timeline rendering.
type ForgottenRepo struct {
	Name               string `json:"name"`
	CreatedAt          string `json:"createdAt"`
	LastUpdated        string `json:"lastUpdated"`
	DaysSinceUpdate    int    `json:"daysSinceUpdate"`
	CreatedAtTimestamp int64  `json:"createdAtTimestamp"`
	UpdatedAtTimestamp int64  `json:"updatedAtTimestamp"`
}

// WrappedStats is the terminal aggregate for one account-year. Every scalar
// field is populated even when an upstream analyzer found no data; only
// ForgottenRepo may be nil.
type WrappedStats struct {
	Year               int               `json:"year"`
	User               UserProfile       `json:"user"`
	TotalCommits       int               `json:"totalCommits"`
	WorkLifeBalance    WorkLifeBalance   `json:"workLifeBalance"`
	Persona            Persona           `json:"persona"`
	CodingSeason       CodingSeason      `json:"codingSeason"`
	TopDependency      string            `json:"topDependency"`
	Dependencies       []DependencyCount `json:"dependencies"`
	DependencyVariance float64           `json:"dependencyVariance"`
	ForgottenRepo      *ForgottenRepo    `json:"forgottenRepo"`
}
