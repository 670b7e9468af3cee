package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/shellexpr/internal/config"
	"github.com/funvibe/shellexpr/internal/logger"
	"github.com/funvibe/shellexpr/internal/source"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(config.EnvColor, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunSingleCase(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		code   int
		output string
	}{
		{"contains", []string{"hello world", "=~", "wor"}, config.ExitOK, "true\n"},
		{"not contains", []string{"hello world", "!~", "wor"}, config.ExitOK, "false\n"},
		{"case sensitive", []string{"ABC", "=~", "b"}, config.ExitOK, "false\n"},
		{"in", []string{"3", "in", "[1, 2, 3]"}, config.ExitOK, "true\n"},
		{"in alias", []string{"4", "in:", "[1, 2, 3]"}, config.ExitOK, "false\n"},
		{"arithmetic", []string{"7", "/", "2"}, config.ExitOK, "3.5\n"},
		{"filesize", []string{"!filesize 60", "+", "!filesize 40"}, config.ExitOK, "100 B\n"},
		{"or", []string{"true", "||", "false"}, config.ExitOK, "true\n"},
		{"mismatch", []string{"3", "=~", "a"}, config.ExitFailure, "cannot apply '=~' to integer and string\n"},
		{"not a table", []string{"3", "in", "3"}, config.ExitFailure, "cannot apply 'in' to integer and integer\n"},
		{"division by zero", []string{"1", "/", "0"}, config.ExitFailure, "cannot apply '/': division by zero\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(t, tt.args...)
			assert.Equal(t, tt.code, code, "stderr: %s", stderr)
			assert.Equal(t, tt.output, stdout)
		})
	}
}

func TestRunUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"1", "+"},
		{"1", "<>", "2"},
		{"[1", "+", "2"},
		{"--bogus"},
		{"-f", "cases.yaml", "extra"},
		{"--right-sqlite", "x.db", "1", "in"},
		{"--color", "sometimes", "1", "+", "2"},
		{"1", "in", "&a [*a]"},
	} {
		code, stdout, _ := run(t, args...)
		assert.Equal(t, config.ExitUsage, code, "args %q", args)
		assert.Empty(t, stdout, "args %q", args)
	}
}

func TestRunCaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: contains
  left: hello world
  op: "=~"
  right: wor
- name: line
  left: !line abc
  op: "!~"
  right: b
- name: member
  left: 3
  op: in
  right: [1, 2, 3]
- name: logic
  left: true
  op: "&&"
  right: x
- left: 7
  op: /
  right: 2
`), 0o644))

	code, stdout, stderr := run(t, "-f", path)
	assert.Equal(t, config.ExitFailure, code, "stderr: %s", stderr)
	assert.Equal(t, strings.Join([]string{
		"contains: true",
		"line: false",
		"member: true",
		"logic: cannot apply '&&' to boolean and string",
		"case 5: 3.5",
		"",
	}, "\n"), stdout)
}

func TestRunCaseFileErrors(t *testing.T) {
	dir := t.TempDir()

	code, _, stderr := run(t, "-f", filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, config.ExitUsage, code)
	assert.Contains(t, stderr, "missing.yaml")

	txt := filepath.Join(dir, "cases.txt")
	require.NoError(t, os.WriteFile(txt, []byte("[]"), 0o644))
	code, _, stderr = run(t, "-f", txt)
	assert.Equal(t, config.ExitUsage, code)
	assert.Contains(t, stderr, "case files must end in")

	badOp := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badOp, []byte("- {name: x, left: 1, op: '<>', right: 2}\n"), 0o644))
	code, _, stderr = run(t, "-f", badOp)
	assert.Equal(t, config.ExitUsage, code)
	assert.Contains(t, stderr, `x: unknown operator: "<>"`)
}

func TestRunRightSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")
	src, err := source.OpenSQLite(context.Background(), path, logger.Discard())
	require.NoError(t, err)
	_, err = src.DB().Exec("CREATE TABLE users (name TEXT); INSERT INTO users VALUES ('ana'), ('bo')")
	require.NoError(t, err)
	require.NoError(t, src.Close())

	code, stdout, stderr := run(t, "--right-sqlite", path, "--right-query", "SELECT name FROM users", "bo", "in")
	assert.Equal(t, config.ExitOK, code, "stderr: %s", stderr)
	assert.Equal(t, "true\n", stdout)

	code, stdout, _ = run(t, "--right-sqlite", path, "--right-query", "SELECT name FROM users", "cy", "in")
	assert.Equal(t, config.ExitOK, code)
	assert.Equal(t, "false\n", stdout)
}

func TestRunColorAndLogging(t *testing.T) {
	code, stdout, stderr := run(t, "--color", "always", "--log-level", "debug", "--log-format", "json", "1", "<", "2")
	assert.Equal(t, config.ExitOK, code)
	assert.Equal(t, ansiGreen+"true"+ansiReset+"\n", stdout)
	assert.Contains(t, stderr, `"msg":"case applied"`)
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: always\n"), 0o644))

	code, stdout, _ := run(t, "--config", path, "1", "+", "1")
	assert.Equal(t, config.ExitOK, code)
	assert.Equal(t, ansiGreen+"2"+ansiReset+"\n", stdout)

	code, stdout, _ = run(t, "--config", path, "--color", "never", "1", "+", "1")
	assert.Equal(t, config.ExitOK, code)
	assert.Equal(t, "2\n", stdout)

	code, _, _ = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "1", "+", "1")
	assert.Equal(t, config.ExitUsage, code)
}

func TestParseCasesDefaultsMissingOperands(t *testing.T) {
	cases, err := ParseCases([]byte("- op: '=='\n"))
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "case 1", cases[0].Name)
	assert.Equal(t, "nothing", cases[0].Left.Kind().String())
	assert.Equal(t, "nothing", cases[0].Right.Kind().String())
}
