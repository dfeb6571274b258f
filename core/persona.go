package core

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gitwrap/gitwrap/schema"
)

// chaosKeywords are the casual/urgency words that mark a message as chaotic.
// Matching is substring-based on the lowercased message.
var chaosKeywords = []string{"fix", "bug", "oops", "wip", "broken", "idk", "temp"}

// Classification thresholds.
const (
	minimalistMaxAvg   = 10  // Minimalist: average length below this...
	minimalistMinCount = 5   // ...and strictly more messages than this
	chaosRatio         = 0.3 // Chaos Theory: keyword'd share above this
	poetMinAvg         = 50  // Poet: average length above this
)

// classifyPersona reduces commit messages to length statistics and a style
// title. Each message is lowercased for keyword scanning and measured in
// characters; the original text is not retained past this pass.
//
// The rules are checked in fixed priority order and the first match wins:
// Minimalist, then Chaos Theory, then Poet, then the Architect default.
func classifyPersona(messages []string) schema.Persona {
	lengths := make([]int, 0, len(messages))
	totalLength := 0
	keyworded := 0

	for _, msg := range messages {
		lower := strings.ToLower(msg)
		n := utf8.RuneCountInString(lower)
		lengths = append(lengths, n)
		totalLength += n
		for _, kw := range chaosKeywords {
			if strings.Contains(lower, kw) {
				keyworded++
				break
			}
		}
	}

	count := len(lengths)
	var avg float64
	if count > 0 {
		avg = float64(totalLength) / float64(count)
	}

	var title schema.PersonaTitle
	switch {
	case avg < minimalistMaxAvg && count > minimalistMinCount:
		title = schema.TheMinimalist
	case float64(keyworded) > chaosRatio*float64(count) && count > 0:
		title = schema.TheChaosTheory
	case avg > poetMinAvg:
		title = schema.ThePoet
	default:
		title = schema.TheArchitect
	}

	return schema.Persona{
		Title:          title,
		Description:    schema.PersonaDescription(title),
		MessageLengths: lengths,
		AvgLength:      avg,
		MedianLength:   lowerMedian(lengths),
	}
}

// lowerMedian returns the lower-middle element of the sorted values, with no
// interpolation for even-sized inputs, and 0 for an empty input.
func lowerMedian(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)
	return sorted[(len(sorted)-1)/2]
}
