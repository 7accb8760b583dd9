package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SALARYWATCH_CONFIG_DIR", t.TempDir())

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestProjectCommand(t *testing.T) {
	out, err := executeCmd(t, "project", "20")

	require.NoError(t, err)
	assert.Contains(t, out, "$20.00/hr")
	assert.Contains(t, out, "Daily (8 hours):")
	assert.Contains(t, out, "$160.00")
	assert.Contains(t, out, "Weekly (40 hours):")
	assert.Contains(t, out, "$800.00")
	assert.Contains(t, out, "Monthly (173 hours):")
	assert.Contains(t, out, "$3,464.00")
}

func TestProjectCommandRejectsBadWage(t *testing.T) {
	for _, arg := range []string{"abc", "0", "-4"} {
		_, err := executeCmd(t, "project", "--", arg)
		assert.ErrorIs(t, err, ErrInvalidWage, "arg %q", arg)
	}
}

func TestProjectCommandRequiresArgument(t *testing.T) {
	_, err := executeCmd(t, "project")

	assert.Error(t, err)
}

func TestProjectCommandUsesCurrencySymbol(t *testing.T) {
	t.Setenv("SALARYWATCH_CURRENCY_SYMBOL", "€")

	out, err := executeCmd(t, "project", "10", "--dark=false")

	require.NoError(t, err)
	assert.Contains(t, out, "€80.00")
}

func TestRootHelpListsEnvironment(t *testing.T) {
	out, err := executeCmd(t, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "SALARYWATCH_LOCALE")
	assert.Contains(t, out, "tui")
	assert.Contains(t, out, "project")
}
