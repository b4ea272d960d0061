package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/gitscore/lib/workspace"
)

func TestAnalyzeFromLogFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logFile := filepath.Join(dir, "commits.log")
	log := "\x1e" +
		"aaa\tAlice\talice@example.com\t2024-03-01T10:00:00+00:00\t\x1f" +
		"Fix crash on startup\x1f\n" +
		"12\t3\tlib/app.go\n" +
		"\x1e" +
		"bbb\tBob\tbob@example.com\t2024-03-02T10:00:00+00:00\taaa\x1f" +
		"Add settings page\x1f\n" +
		"40\t0\tlib/settings.go\n" +
		"5\t1\tdocs/settings.md\n" +
		"\x1e" +
		"ccc\tBad\t\tnot-a-date\t\x1f" +
		"Broken entry\x1f\n"
	require.NoError(t, os.WriteFile(logFile, []byte(log), 0o600))

	ws, err := workspace.NewWorkspace(":memory:")
	require.NoError(t, err)
	defer ws.Close()

	result, err := ws.Analyze(&workspace.AnalyzeOptions{LogFile: logFile})
	require.NoError(t, err)

	require.Len(t, result.Scorecards, 2)
	assert.Equal(t, 1, result.ParseFailures)

	keys := []string{
		result.Scorecards[0].Contributor.Key,
		result.Scorecards[1].Contributor.Key,
	}
	assert.Contains(t, keys, "alice@example.com")
	assert.Contains(t, keys, "bob@example.com")

	for _, card := range result.Scorecards {
		assert.GreaterOrEqual(t, card.Overall, 0.0)
		assert.LessOrEqual(t, card.Overall, 1.0)
		assert.False(t, card.Satisfaction.Measured)
	}
}

func TestAnalyzeWithMappingAndSurvey(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	logFile := filepath.Join(dir, "commits.log")
	log := "\x1e" +
		"aaa\tAlice\talice@example.com\t2024-03-01T10:00:00+00:00\t\x1f" +
		"Add feature\x1f\n" +
		"10\t0\ta.go\n" +
		"\x1e" +
		"bbb\tA. Smith\tasmith@work.com\t2024-03-02T10:00:00+00:00\taaa\x1f" +
		"More work\x1f\n" +
		"10\t0\tb.go\n"
	require.NoError(t, os.WriteFile(logFile, []byte(log), 0o600))

	mappingFile := filepath.Join(dir, "mapping.csv")
	mapping := "email,name\n" +
		"alice@example.com,Alice Smith\n" +
		"asmith@work.com,Alice Smith\n"
	require.NoError(t, os.WriteFile(mappingFile, []byte(mapping), 0o600))

	surveyFile := filepath.Join(dir, "survey.csv")
	survey := "alice@example.com,4,4,4,4,4,2,4,2,4,4,4,4,4,4\n"
	require.NoError(t, os.WriteFile(surveyFile, []byte(survey), 0o600))

	ws, err := workspace.NewWorkspace(":memory:")
	require.NoError(t, err)
	defer ws.Close()

	result, err := ws.Analyze(&workspace.AnalyzeOptions{
		LogFile:     logFile,
		MappingFile: mappingFile,
		SurveyFile:  surveyFile,
	})
	require.NoError(t, err)

	require.Len(t, result.Scorecards, 1)

	card := result.Scorecards[0]
	assert.Equal(t, "Alice Smith", card.Contributor.Key)
	assert.Equal(t, 2, card.Contributor.CommitsTotal())
	assert.True(t, card.Satisfaction.Measured)
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logFile := filepath.Join(dir, "commits.log")
	log := "\x1e" +
		"aaa\tAlice\talice@example.com\t2024-03-01T10:00:00+00:00\t\x1f" +
		"Add feature\x1f\n" +
		"10\t0\ta.go\n"
	require.NoError(t, os.WriteFile(logFile, []byte(log), 0o600))

	ws, err := workspace.NewWorkspace(":memory:")
	require.NoError(t, err)
	defer ws.Close()

	result, err := ws.Analyze(&workspace.AnalyzeOptions{LogFile: logFile})
	require.NoError(t, err)

	csvFile := filepath.Join(dir, "out.csv")
	require.NoError(t, ws.WriteCSV(csvFile, result.Scorecards))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "overall_score")
	assert.Contains(t, string(data), "alice@example.com")
}

func TestNewWorkspaceRejectsUnknownStorage(t *testing.T) {
	t.Parallel()

	_, err := workspace.NewWorkspace("data.json")

	assert.Error(t, err)
}
