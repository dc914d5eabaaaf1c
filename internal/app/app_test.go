package app

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"ringron/pkg/api"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// configFile points the catalog at the INI test methods.
func configFile(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs("../method/testdata")
	require.NoError(t, err)
	body := "data_dir: " + dir + "\nmethods: [plain_bob_minimus.mcf, plain_bob_minor.mcf]\n"
	path := filepath.Join(t.TempDir(), "ringron.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	argv := append([]string{"--config", configFile(t)}, args...)
	code := RunContext(context.Background(), argv, &out, &errb)
	return code, out.String(), errb.String()
}

func TestVersion(t *testing.T) {
	var out, errb bytes.Buffer
	code := RunContext(context.Background(), []string{"version"}, &out, &errb)
	assert.Equal(t, ExitOK, code)
	assert.True(t, strings.HasPrefix(out.String(), "ringron version "), out.String())
}

func TestNoArgsPrintsHelp(t *testing.T) {
	var out, errb bytes.Buffer
	code := RunContext(context.Background(), nil, &out, &errb)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out.String(), "Available Commands")
}

func TestMethods(t *testing.T) {
	code, out, errs := run(t, "methods")
	require.Equal(t, ExitOK, code, errs)
	assert.Contains(t, out, "Plain Bob Minimus (4 bells, coverable)")
	assert.Contains(t, out, "  3\tMutable Touch\t120\tpppbs - ppspb\tmutable\n")

	code, out, errs = run(t, "methods", "-o", "json")
	require.Equal(t, ExitOK, code, errs)
	var ms []api.MethodV1
	require.NoError(t, json.Unmarshal([]byte(out), &ms))
	assert.Len(t, ms, 2)
}

func TestExtentText(t *testing.T) {
	code, out, errs := run(t, "extent", "plain bob minimus", "1")
	require.Equal(t, ExitOK, code, errs)

	want, err := os.ReadFile("../output/testdata/minimus_plain_course.golden")
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func TestExtentJSONLSeeded(t *testing.T) {
	_, a, _ := run(t, "extent", "Plain Bob Minor", "3", "--seed", "9", "-o", "jsonl")
	code, b, errs := run(t, "extent", "Plain Bob Minor", "3", "--seed", "9", "-o", "jsonl")
	require.Equal(t, ExitOK, code, errs)
	assert.Equal(t, a, b, "same seed must give the same extent")

	lines := strings.Split(strings.TrimSpace(b), "\n")
	var first api.RowV1
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, first.Bells)
	assert.Equal(t, "hand", first.Stroke)
	assert.Zero(t, len(lines)%2, "extents have an even row count")
}

func TestExtentCoverFromEnv(t *testing.T) {
	t.Setenv("RINGRON_COVER", "true")
	code, out, errs := run(t, "extent", "Plain Bob Minimus", "2", "-o", "json")
	require.Equal(t, ExitOK, code, errs)

	var x api.ExtentV1
	require.NoError(t, json.Unmarshal([]byte(out), &x))
	assert.True(t, x.Cover)
	assert.Equal(t, 5, x.Bells)
	assert.Equal(t, 5*len(x.Rows), x.Size)

	// An explicit flag beats the environment.
	code, out, errs = run(t, "extent", "Plain Bob Minimus", "2", "-o", "json", "--cover=false")
	require.Equal(t, ExitOK, code, errs)
	require.NoError(t, json.Unmarshal([]byte(out), &x))
	assert.False(t, x.Cover)
}

func TestRing(t *testing.T) {
	code, out, errs := run(t, "ring", "Plain Bob Minimus", "1", "--assigned", "2")
	require.Equal(t, ExitOK, code, errs)

	sc := bufio.NewScanner(strings.NewReader(out))
	strikes, calls := 0, []string{}
	for sc.Scan() {
		var ev api.EventV1
		require.NoError(t, json.Unmarshal(sc.Bytes(), &ev))
		switch ev.Type {
		case "strike":
			assert.NotEqual(t, 2, ev.Bell)
			strikes++
		case "call":
			calls = append(calls, ev.Call)
		}
	}
	assert.Equal(t, 28*3, strikes)
	assert.Equal(t, []string{"Go", "That's all", "Stand next"}, calls)
}

func TestRingCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errb bytes.Buffer
	code := RunContext(ctx, []string{"--config", configFile(t), "ring", "Plain Bob Minimus", "1"}, &out, &errb)
	assert.Equal(t, ExitInterrupted, code)
	assert.Empty(t, out.String())
}

func TestExitCodes(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"unknown command", []string{"peal"}, ExitUsage, "unknown command"},
		{"unknown flag", []string{"extent", "--loud"}, ExitUsage, "unknown flag"},
		{"missing args", []string{"extent", "Plain Bob Minor"}, ExitUsage, "want <method> <extent-id>"},
		{"bad id", []string{"extent", "Plain Bob Minor", "first"}, ExitUsage, `extent id "first"`},
		{"unknown method", []string{"extent", "Stedman Triples", "1"}, ExitUsage, `unknown method "Stedman Triples"`},
		{"unknown extent", []string{"extent", "Plain Bob Minor", "9"}, ExitUsage, `unknown extent (have 1 "Plain Course", 2 "Bobbed Touch", 3 "Mutable Touch")`},
		{"bad courses", []string{"extent", "Plain Bob Minor", "1", "--courses", "0"}, ExitUsage, "--courses"},
		{"bad output", []string{"extent", "Plain Bob Minor", "1", "-o", "xml"}, ExitUsage, `invalid --output "xml"`},
		{"bad assigned", []string{"ring", "Plain Bob Minor", "1", "--assigned", "1,x"}, ExitUsage, `"x" is not a bell number`},
		{"assigned out of range", []string{"ring", "Plain Bob Minor", "1", "--assigned", "7"}, ExitUsage, "assigned bell 7 not in 1..6"},
		{"methods args", []string{"methods", "extra"}, ExitUsage, "takes no arguments"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errs := run(t, tc.args...)
			assert.Equal(t, tc.code, code)
			assert.Contains(t, errs, tc.msg)
		})
	}
}

func TestBadDataDirIsRuntimeError(t *testing.T) {
	var out, errb bytes.Buffer
	cfg := filepath.Join(t.TempDir(), "none.yaml")
	code := RunContext(context.Background(),
		[]string{"--config", cfg, "--data-dir", filepath.Join(t.TempDir(), "absent"), "methods"}, &out, &errb)
	assert.Equal(t, ExitRuntime, code)
	assert.Contains(t, errb.String(), "data dir")
}
