package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/masthead/internal/catalog"
	"github.com/mesh-intelligence/masthead/pkg/types"
)

// run executes the command tree with args against an isolated config
// directory and returns stdout.
func run(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MASTHEAD_SEED", "")
	t.Setenv("MASTHEAD_OUTPUT", "")
	t.Setenv("MASTHEAD_LOG_LEVEL", "")

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config-dir", configDir}, args...))

	err := root.Execute()
	return stdout.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "masthead v")
	assert.Contains(t, out, "github.com/mesh-intelligence/masthead")
}

func TestDemoText(t *testing.T) {
	out, err := run(t, t.TempDir(), "demo")
	require.NoError(t, err)

	for _, want := range []string{
		"Articles by Mark Goldbrigde:\nThe Art of code\nThe Science of Storytelling\n",
		"Magazines Mark Goldbrigde has written for:",
		"Articles in London post:\nThe Art of code\nLondon is blue\n",
		"Contributors to London post:",
		"Topic areas by Mark Goldbrigde:",
		"Magazine with the most articles:\nLondon post\n",
	} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "Big think")
	assert.Contains(t, out, "Mark Twain")
	assert.Contains(t, out, "Science")
}

func TestDemoJSON(t *testing.T) {
	out, err := run(t, t.TempDir(), "--json", "demo")
	require.NoError(t, err)

	var r catalog.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "London post", r.TopPublisher)
	assert.Equal(t, []string{"The Art of code", "The Science of Storytelling"}, r.AuthorArticles)
	assert.ElementsMatch(t, []string{"sports", "Science"}, r.AuthorTopicAreas)
	assert.ElementsMatch(t, []string{"Mark Goldbrigde", "Mark Twain"}, r.MagazineContributors)
}

func TestDemoOtherSubjects(t *testing.T) {
	out, err := run(t, t.TempDir(), "demo", "--author", "Mark Twain", "--magazine", "Big think")
	require.NoError(t, err)
	assert.Contains(t, out, "Articles by Mark Twain:\nLondon is blue\n")
	assert.Contains(t, out, "Articles in Big think:\nThe Science of Storytelling\n")
}

func TestAuthorQueries(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "author", "articles", "Mark Goldbrigde")
	require.NoError(t, err)
	assert.Equal(t, "The Art of code\nThe Science of Storytelling\n", out)

	out, err = run(t, dir, "--json", "author", "magazines", "Mark Goldbrigde")
	require.NoError(t, err)
	var mags []string
	require.NoError(t, json.Unmarshal([]byte(out), &mags))
	assert.ElementsMatch(t, []string{"London post", "Big think"}, mags)

	out, err = run(t, dir, "author", "topics", "Mark Twain")
	require.NoError(t, err)
	assert.Equal(t, "sports\n", out)
}

func TestMagazineQueries(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "magazine", "titles", "London post")
	require.NoError(t, err)
	assert.Equal(t, "The Art of code\nLondon is blue\n", out)

	out, err = run(t, dir, "--json", "magazine", "contributors", "Big think")
	require.NoError(t, err)
	var authors []string
	require.NoError(t, json.Unmarshal([]byte(out), &authors))
	assert.Equal(t, []string{"Mark Goldbrigde"}, authors)
}

func TestListings(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "--json", "magazines")
	require.NoError(t, err)
	var mags []catalog.MagazineSummary
	require.NoError(t, json.Unmarshal([]byte(out), &mags))
	require.Len(t, mags, 2)
	assert.Equal(t, "London post", mags[0].Name)
	assert.Equal(t, 2, mags[0].Articles)

	out, err = run(t, dir, "authors")
	require.NoError(t, err)
	assert.Contains(t, out, "Mark Goldbrigde\t2 articles")
	assert.Contains(t, out, "Mark Twain\t1 articles")
}

func TestTop(t *testing.T) {
	out, err := run(t, t.TempDir(), "top")
	require.NoError(t, err)
	assert.Equal(t, "London post\t2 articles\n", out)
}

func TestTopEmptySeed(t *testing.T) {
	dir := t.TempDir()
	seed := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(""), 0o644))

	out, err := run(t, dir, "--seed", seed, "top")
	require.NoError(t, err)
	assert.Equal(t, "No magazines\n", out)
}

func TestSeedFromConfig(t *testing.T) {
	dir := t.TempDir()
	seed := "authors:\n  - name: Ada\nmagazines:\n  - name: Engines\n    category: computing\n  - name: Looms\n    category: textiles\n" +
		"articles:\n  - author: Ada\n    magazine: Looms\n    title: Notes on patterns\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.yaml"), []byte(seed), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("seed_file: mine.yaml\n"), 0o644))

	out, err := run(t, dir, "top")
	require.NoError(t, err)
	assert.Equal(t, "Looms\t1 articles\n", out)
}

func TestOutputFromConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output: json\n"), 0o644))

	out, err := run(t, dir, "magazine", "titles", "Big think")
	require.NoError(t, err)
	assert.JSONEq(t, `["The Science of Storytelling"]`, out)
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	out, err := run(t, dir, "init", "--sample-seed")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "config.yaml"))
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))
	assert.FileExists(t, filepath.Join(dir, "seed.yaml"))

	out, err = run(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Config already exists")

	// The written config points at the sample seed, which reproduces the demo.
	out, err = run(t, dir, "top")
	require.NoError(t, err)
	assert.Equal(t, "London post\t2 articles\n", out)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  error
		wantCode int
	}{
		{
			name:     "unknown author",
			args:     []string{"author", "articles", "Nobody"},
			wantErr:  catalog.ErrAuthorNotFound,
			wantCode: exitUserError,
		},
		{
			name:     "unknown magazine",
			args:     []string{"magazine", "titles", "Nowhere"},
			wantErr:  catalog.ErrMagazineNotFound,
			wantCode: exitUserError,
		},
		{
			name:     "missing argument",
			args:     []string{"author", "articles"},
			wantErr:  errUsage,
			wantCode: exitUserError,
		},
		{
			name:     "unknown log level",
			args:     []string{"--log-level", "loud", "top"},
			wantErr:  types.ErrLogLevelUnknown,
			wantCode: exitUserError,
		},
		{
			name:     "missing seed file",
			args:     []string{"--seed", "/nonexistent/masthead/seed.yaml", "top"},
			wantErr:  os.ErrNotExist,
			wantCode: exitSysError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, t.TempDir(), tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, exitCode(err))
		})
	}
}

func TestInvalidSeedIsUserError(t *testing.T) {
	dir := t.TempDir()
	seed := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(seed, []byte("magazines:\n  - name: X\n    category: c\n"), 0o644))

	_, err := run(t, dir, "--seed", seed, "magazines")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidName)
	assert.True(t, strings.Contains(err.Error(), "magazines[0]"), err.Error())
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitSysError, exitCode(errors.New("disk on fire")))
	assert.Equal(t, exitUserError, exitCode(fmt.Errorf("wrapped: %w", types.ErrInvalidTitle)))
}
