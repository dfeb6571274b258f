package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gitwrap/gitwrap/schema"
)

// Colors applied to classification labels in table output.
var (
	ProColor        = color.New(color.FgGreen)
	WarriorColor    = color.New(color.FgMagenta)
	ConsistentColor = color.New(color.FgCyan)
	BurstColor      = color.New(color.FgYellow)
	PersonaColor    = color.New(color.FgHiWhite, color.Bold)
)

// GetBalanceLabel returns the balance label, colored for console output
// when useColors is set.
func GetBalanceLabel(label schema.BalanceLabel, useColors bool) string {
	if !useColors {
		return string(label)
	}
	if label == schema.NineToFivePro {
		return ProColor.Sprint(string(label))
	}
	return WarriorColor.Sprint(string(label))
}

// GetSeasonLabel returns the season label, colored for console output
// when useColors is set.
func GetSeasonLabel(label schema.SeasonLabel, useColors bool) string {
	if !useColors {
		return string(label)
	}
	switch label {
	case schema.ConsistentSeason:
		return ConsistentColor.Sprint(string(label))
	case schema.BurstSeason:
		return BurstColor.Sprint(string(label))
	default:
		return string(label)
	}
}

// GetPersonaTitle returns the persona title, bolded for console output
// when useColors is set.
func GetPersonaTitle(title schema.PersonaTitle, useColors bool) string {
	if !useColors {
		return string(title)
	}
	return PersonaColor.Sprint(string(title))
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
