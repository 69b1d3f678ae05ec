package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iryswiki/iryswiki/internal/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"--env", t.TempDir()}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "thread", "profile", "tx", "requirement", "balance", "stats", "wipe"}, names)
}

func TestRequirementCmd(t *testing.T) {
	out, err := execute(t, "requirement", "thread")
	require.NoError(t, err)
	assert.Contains(t, out, `"amount": "0.0003"`)
	assert.Contains(t, out, `"action": "THREAD"`)

	_, err = execute(t, "requirement", "like")
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
}

func TestCategoriesCmd(t *testing.T) {
	out, err := execute(t, "thread", "categories")
	require.NoError(t, err)
	assert.Contains(t, out, `"announcements"`)
}

func TestArgumentValidation(t *testing.T) {
	_, err := execute(t, "wipe")
	assert.EqualError(t, err, "refusing to wipe without --yes")

	_, err = execute(t, "thread", "list", "--category", "memes")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "profile", "get", "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "thread", "show")
	assert.Error(t, err)
}
