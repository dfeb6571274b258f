package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gitwrap/gitwrap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBalanceLabelPlain(t *testing.T) {
	assert.Equal(t, "9-to-5 Pro", GetBalanceLabel(schema.NineToFivePro, false))
	assert.Equal(t, "Weekend Warrior", GetBalanceLabel(schema.WeekendWarrior, false))
}

func TestGetSeasonLabelPlain(t *testing.T) {
	assert.Equal(t, "Consistent", GetSeasonLabel(schema.ConsistentSeason, false))
	assert.Equal(t, "Burst-Driven", GetSeasonLabel(schema.BurstSeason, false))
	assert.Equal(t, "None", GetSeasonLabel(schema.NoSeason, false))
}

func TestGetPersonaTitlePlain(t *testing.T) {
	assert.Equal(t, "The Architect", GetPersonaTitle(schema.TheArchitect, false))
}

func TestSelectOutputFileStdout(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Same(t, os.Stdout, f)
}

func TestSelectOutputFileCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	f, err := SelectOutputFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, path, f.Name())
}
