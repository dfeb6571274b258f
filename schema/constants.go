package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// PersonaTitle represents the commit-message style classification.
	PersonaTitle string

	// BalanceLabel represents the work-life balance classification.
	BalanceLabel string

	// SeasonLabel represents the monthly-consistency classification.
	SeasonLabel string
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
	CSVOut  OutputMode = "csv"
)

// All persona titles, in classification priority order.
const (
	TheMinimalist  PersonaTitle = "The Minimalist"
	TheChaosTheory PersonaTitle = "The Chaos Theory"
	ThePoet        PersonaTitle = "The Poet"
	TheArchitect   PersonaTitle = "The Architect" // default
)

// The two work-life balance labels. The threshold is binary; there is no
// third tier.
const (
	NineToFivePro  BalanceLabel = "9-to-5 Pro"
	WeekendWarrior BalanceLabel = "Weekend Warrior"
)

// All season labels supported. NoSeason is used when the monthly mean is 0
// and the consistency ratio is not computable.
const (
	ConsistentSeason SeasonLabel = "Consistent"
	BurstSeason      SeasonLabel = "Burst-Driven"
	NoSeason         SeasonLabel = "None"
)

// PushEventType is the source event type that carries commit activity.
const PushEventType = "PushEvent"

// DefaultTopDependency is reported when no manifest yielded any package name.
const DefaultTopDependency = "Vanilla JS"

// DayNames maps weekday index (0=Sunday..6=Saturday) to its display name.
var DayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	CSVOut:  {},
}

// PersonaDescription returns the one-line description shown with a title.
func PersonaDescription(title PersonaTitle) string {
	switch title {
	case TheMinimalist:
		return "Short, sharp, gone."
	case TheChaosTheory:
		return "You embrace entropy."
	case ThePoet:
		return "Your commit messages are novels."
	default: // TheArchitect
		return "Clean, structured, reliable."
	}
}
