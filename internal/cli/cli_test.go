package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/gopatterns/internal/catalog"
	"github.com/mmr-tortoise/gopatterns/internal/model"
)

// execute runs a fresh root command with the given arguments and returns
// captured stdout. The global flag variables are reset around each call
// because cobra binds them to package-level state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	jsonOutput = false
	verbose = false
	t.Cleanup(func() {
		jsonOutput = false
		verbose = false
	})

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// TestListCommand verifies the text table contains every pattern.
func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	for _, name := range []string{
		"adapter", "bridge", "builder", "composite", "decorator", "facade",
		"factory", "memento", "observer", "prototype", "proxy", "singleton",
	} {
		assert.Contains(t, out, name)
	}
}

// TestListCommand_CategoryFilter verifies --category narrows the table.
func TestListCommand_CategoryFilter(t *testing.T) {
	out, err := execute(t, "list", "--category", "behavioral")
	require.NoError(t, err)
	assert.Contains(t, out, "memento")
	assert.Contains(t, out, "observer")
	assert.NotContains(t, out, "decorator")
}

// TestListCommand_InvalidCategory verifies the error carries the general
// exit code.
func TestListCommand_InvalidCategory(t *testing.T) {
	_, err := execute(t, "list", "--category", "functional")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
}

// TestListCommand_JSON verifies the JSON shape: a "patterns" array with
// name/category/summary per entry.
func TestListCommand_JSON(t *testing.T) {
	out, err := execute(t, "list", "--json")
	require.NoError(t, err)

	var result struct {
		Patterns []struct {
			Name     string `json:"name"`
			Category string `json:"category"`
			Summary  string `json:"summary"`
		} `json:"patterns"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Patterns, 12)
	assert.Equal(t, "adapter", result.Patterns[0].Name)
	assert.NotEmpty(t, result.Patterns[0].Summary)
}

// TestRunCommand verifies a single named demo prints its transcript under a
// header.
func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "decorator")
	require.NoError(t, err)
	assert.Contains(t, out, "=== decorator (structural) ===")
	assert.Contains(t, out, "espresso")
}

// TestRunCommand_Multiple verifies several demos run in argument order.
func TestRunCommand_Multiple(t *testing.T) {
	out, err := execute(t, "run", "memento", "singleton")
	require.NoError(t, err)

	mem := bytes.Index([]byte(out), []byte("=== memento"))
	single := bytes.Index([]byte(out), []byte("=== singleton"))
	require.GreaterOrEqual(t, mem, 0)
	require.GreaterOrEqual(t, single, 0)
	assert.Less(t, mem, single)
}

// TestRunCommand_All verifies --all runs the whole catalog.
func TestRunCommand_All(t *testing.T) {
	out, err := execute(t, "run", "--all")
	require.NoError(t, err)
	assert.Equal(t, 12, bytes.Count([]byte(out), []byte("=== ")))
}

// TestRunCommand_Unknown verifies the pattern-not-found exit code.
func TestRunCommand_Unknown(t *testing.T) {
	_, err := execute(t, "run", "flyweight")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitPatternNotFound, cliErr.Code)
}

// TestRunCommand_NoSelection verifies running without arguments or flags is
// rejected with a hint.
func TestRunCommand_NoSelection(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err)
	assert.ErrorContains(t, err, "nothing to run")
}

// TestRunCommand_ConflictingSelection verifies --all excludes other
// selection mechanisms.
func TestRunCommand_ConflictingSelection(t *testing.T) {
	_, err := execute(t, "run", "--all", "decorator")
	require.Error(t, err)
	assert.ErrorContains(t, err, "--all")
}

// TestRunCommand_JSON verifies the structured result shape.
func TestRunCommand_JSON(t *testing.T) {
	out, err := execute(t, "run", "facade", "--json")
	require.NoError(t, err)

	var result struct {
		Results []struct {
			Name       string `json:"name"`
			Transcript string `json:"transcript"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Results, 1)
	assert.Equal(t, "facade", result.Results[0].Name)
	assert.Contains(t, result.Results[0].Transcript, "produced ")
}

// TestInfoCommand verifies the text rendering of one entry.
func TestInfoCommand(t *testing.T) {
	out, err := execute(t, "info", "memento")
	require.NoError(t, err)
	assert.Contains(t, out, "memento (behavioral)")
	assert.Contains(t, out, "properties:")
	assert.Contains(t, out, "round-trip")
}

// TestInfoCommand_Unknown verifies the pattern-not-found exit code.
func TestInfoCommand_Unknown(t *testing.T) {
	_, err := execute(t, "info", "visitor")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitPatternNotFound, cliErr.Code)
}

// TestResolveSelection_CategoryOrder verifies category selection preserves
// catalog name order.
func TestResolveSelection_CategoryOrder(t *testing.T) {
	patterns := catalog.Default()
	entries, err := resolveSelection(patterns, &runFlags{category: "structural"}, nil)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"adapter", "bridge", "composite", "decorator", "facade", "proxy"}, names)
}

// TestResolveSelection_FailsFast verifies one unknown name rejects the whole
// selection before anything runs.
func TestResolveSelection_FailsFast(t *testing.T) {
	patterns := catalog.Default()
	_, err := resolveSelection(patterns, &runFlags{}, []string{"decorator", "nope"})
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*model.CLIError)))
}
