package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unitFile = `
version: black-eng
mac: 00:09:bf:0a:1b:2c
from: 2011-03-06T10:00:00Z
to: 2011-03-06T10:00:00Z
buttons: [none]
timer0: {low: 0xc79, high: 0xc79}
vcount: {low: 0x60, high: 0x60}
vframe: {low: 5, high: 5}
frames: {min: 0, max: 4}
tid: 12345
sid: 54321
`

func writeCriteria(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "criteria.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func decodeRecords(t *testing.T, s string) []resultRecord {
	t.Helper()
	var recs []resultRecord
	sc := bufio.NewScanner(bytes.NewBufferString(s))
	for sc.Scan() {
		var r resultRecord
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
		recs = append(recs, r)
	}
	return recs
}

func TestSearchWritesJSONLines(t *testing.T) {
	path := writeCriteria(t, unitFile)

	stdout, stderr, err := run(t, "search", "-c", path, "--workers", "1", "--log-json")
	require.NoError(t, err)

	recs := decodeRecords(t, stdout)
	require.Len(t, recs, 5)
	for i, r := range recs {
		assert.Equal(t, uint64(i), r.Frame)
		assert.Equal(t, "C79", r.Timer0)
		assert.Equal(t, "None", r.Buttons)
		assert.Equal(t, "2011-03-06 10:00:00", r.Time)
		assert.Len(t, r.Seed, 16)
	}
	assert.Contains(t, stderr, `"msg":"search finished"`)
	assert.Contains(t, stderr, `"run_id"`)
}

func TestSearchLimit(t *testing.T) {
	path := writeCriteria(t, unitFile)

	stdout, _, err := run(t, "search", "-c", path, "--limit", "2")
	require.NoError(t, err)
	assert.Len(t, decodeRecords(t, stdout), 2)
}

func TestSearchServesMetrics(t *testing.T) {
	path := writeCriteria(t, unitFile)

	_, stderr, err := run(t, "search", "-c", path, "--metrics-addr", "127.0.0.1:0")
	require.NoError(t, err)
	assert.Contains(t, stderr, "serving metrics")
}

func TestEstimate(t *testing.T) {
	path := writeCriteria(t, unitFile)

	stdout, _, err := run(t, "estimate", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "seeds:            1\n")
	assert.Contains(t, stdout, "frames per seed:  5\n")
	assert.Contains(t, stdout, "expected results: 5\n")
}

func TestEnvironmentAndFlags(t *testing.T) {
	path := writeCriteria(t, unitFile)
	t.Setenv("SEEDSEARCH_LOG_LEVEL", "error")

	_, stderr, err := run(t, "search", "-c", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, stderr, err = run(t, "search", "-c", path, "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, stderr, "search finished")
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "search")
	assert.ErrorContains(t, err, "--criteria")

	_, _, err = run(t, "estimate", "-c", writeCriteria(t, "version: red\n"))
	assert.Error(t, err)

	_, _, err = run(t, "search", "-c", writeCriteria(t, unitFile), "--workers=-1")
	assert.Error(t, err)

	_, _, err = run(t, "search", "-c", writeCriteria(t, unitFile), "--log-level", "loud")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "seedsearch dev\n", stdout)
}
