package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-clients/internal/adapters/storage/memory"
	"pet-clients/internal/domain/clients"
)

func openShared(repo clients.Repository) openRepoFunc {
	return func(context.Context) (clients.Repository, func() error, error) {
		return repo, func() error { return nil }, nil
	}
}

func run(t *testing.T, open openRepoFunc, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(open)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_AddThenList(t *testing.T) {
	repo := memory.NewClientsRepo()
	open := openShared(repo)

	_, err := run(t, open, "add", "cat")
	require.NoError(t, err)
	out, err := run(t, open, "add", "puppy")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "puppy")
	assert.Contains(t, lines[1], "cat")

	out, err = run(t, open, "list", "--search", "CA")
	require.NoError(t, err)
	assert.Contains(t, out, "🐱")
	assert.NotContains(t, out, "🐕")
}

func TestCLI_ListEmpty(t *testing.T) {
	out, err := run(t, openShared(memory.NewClientsRepo()), "list")
	require.NoError(t, err)
	assert.Equal(t, "no clients\n", out)
}

func TestCLI_AddRejectsBlank(t *testing.T) {
	_, err := run(t, openShared(memory.NewClientsRepo()), "add", "  ")
	assert.ErrorIs(t, err, clients.ErrInvalidInput)
}

func TestCLI_Animals(t *testing.T) {
	out, err := run(t, openShared(memory.NewClientsRepo()), "animals")
	require.NoError(t, err)
	assert.Equal(t, "🐕 puppy\n🐢 turtle\n🐱 cat\n", out)
}

func TestCLI_OpenError(t *testing.T) {
	boom := errors.New("no store")
	open := func(context.Context) (clients.Repository, func() error, error) {
		return nil, func() error { return nil }, boom
	}

	_, err := run(t, open, "list")
	assert.ErrorIs(t, err, boom)
}
