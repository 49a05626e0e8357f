package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.cli")
	defer teardown()
	//
	T, err := loadTables(filepath.Join("testdata", "expr.ebnf"))
	require.NoError(t, err)
	assert.Equal(t, "Expr'", T.G.Start().Name)
	assert.NoError(t, parse(T, "1 + 2 * (3 - 4)"))
	assert.Error(t, parse(T, "1 + "))
	assert.False(t, eval(T, ":tables"))
	assert.True(t, eval(T, ":quit"))
	var buf bytes.Buffer
	require.NoError(t, T.WriteJSON(&buf))
	assert.Contains(t, buf.String(), `"method": "LR(1)"`)
}

func TestConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.cli")
	defer teardown()
	//
	_, err := loadTables(filepath.Join("testdata", "dangling.ebnf"))
	assert.Error(t, err)
	_, err = loadTables(filepath.Join("testdata", "missing.ebnf"))
	assert.Error(t, err)
}

func TestExecuteReportsError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.cli")
	defer teardown()
	//
	var buf bytes.Buffer
	errorOutput = &buf
	defer func() {
		errorOutput = os.Stderr
		rootCmd.SetArgs(nil)
	}()
	rootCmd.SetArgs([]string{"tables", "-q", filepath.Join("testdata", "missing.ebnf")})
	err := Execute()
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "cannot open grammar file"))
}
