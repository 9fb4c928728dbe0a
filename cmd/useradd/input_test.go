//go:build unit

package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTerminal(t *testing.T, terminal bool, answers ...string) {
	t.Helper()
	origRead, origTerm := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = origRead, origTerm })

	isTerminal = func(int) bool { return terminal }
	readPassword = func(int) ([]byte, error) {
		require.NotEmpty(t, answers, "unexpected prompt")
		a := answers[0]
		answers = answers[1:]
		return []byte(a), nil
	}
}

func pipeWith(t *testing.T, content string) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestPromptPassword(t *testing.T) {
	t.Run("terminal asks twice", func(t *testing.T) {
		stubTerminal(t, true, "s3creto!", "s3creto!")
		var out bytes.Buffer

		pw, err := promptPassword(os.Stdin, &out)
		require.NoError(t, err)
		assert.Equal(t, "s3creto!", pw)
		assert.Contains(t, out.String(), "Repeat password: ")
	})

	t.Run("terminal mismatch", func(t *testing.T) {
		stubTerminal(t, true, "uno", "dos")
		_, err := promptPassword(os.Stdin, &bytes.Buffer{})
		assert.ErrorIs(t, err, errPasswordMismatch)
	})

	t.Run("piped input uses the first line", func(t *testing.T) {
		stubTerminal(t, false)
		pw, err := promptPassword(pipeWith(t, "desde-pipe\r\nignored\n"), &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "desde-pipe", pw)
	})

	t.Run("piped input without newline", func(t *testing.T) {
		stubTerminal(t, false)
		pw, err := promptPassword(pipeWith(t, "sin-salto"), &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "sin-salto", pw)
	})
}

func TestParseArgs(t *testing.T) {
	in, err := parseArgs([]string{"-username", "laura", "-branch", "Centro", "-role", "gerente", "-phone", "114444"})
	require.NoError(t, err)
	assert.Equal(t, "laura", in.Username)
	assert.Equal(t, "Centro", in.Branch)
	assert.Equal(t, "gerente", in.Role)
	assert.Equal(t, "114444", in.BranchPhone)

	_, err = parseArgs([]string{"-username", "laura"})
	assert.Error(t, err)
}
