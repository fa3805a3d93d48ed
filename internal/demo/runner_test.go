package demo

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"idioms/internal/config"
	"idioms/internal/logging"
	"idioms/internal/text"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func plainConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Output.Styled = false
	return cfg
}

func fixedClock() func() time.Time {
	t0 := time.Date(2020, 12, 15, 0, 0, 0, 0, time.UTC)
	calls := 0
	return func() time.Time {
		calls++
		return t0.Add(time.Duration(calls) * 50 * time.Millisecond)
	}
}

func run(t *testing.T, cfg *config.Config, names ...string) string {
	t.Helper()
	var buf bytes.Buffer
	r := NewRunner(cfg, WithClock(fixedClock()))
	require.NoError(t, r.Run(context.Background(), &buf, names...))
	return buf.String()
}

func TestRun_Data(t *testing.T) {
	want := `
  -- data operations --
  -- integer ops --
  x = 42, y = 40
  after copy assign: x = y
  x = 40, y = 40

  -- growable sequence ops --
  v = [1, 2, 4]
  after move: w := v.Move()
  w = [1, 2, 4]
  now v is invalid (moved: true)

  after clone: x := w.Clone()
  w = [1, 2, 4]
  x = [1, 2, 4]
  after x.Set(0, 99); x.Push(8):
  w = [1, 2, 4]
  x = [99, 2, 4, 8]

  That's all Folks!
`
	if diff := cmp.Diff(want, run(t, plainConfig(), "data")); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_DataDoesNotAliasConfig(t *testing.T) {
	cfg := plainConfig()
	run(t, cfg, "data")
	assert.Equal(t, []int32{1, 2, 4}, cfg.Inputs.Growable)
}

func TestRun_Object(t *testing.T) {
	got := run(t, plainConfig(), "object")
	assert.Contains(t, got, `  instance name is "Frank"`+"\n")
	assert.Contains(t, got, `  name of clone is "Frank"`+"\n")
	assert.Contains(t, got, `original "Frank", clone "Frank (clone)"`)
}

func TestRun_Bytes(t *testing.T) {
	want := `
  -- byte array iteration --
  bytes from byte array, index style:
  [1, 2, 3, 4, 5]
  bytes from byte array, range style:
  [1, 2, 3, 4, 5]
  identical output: true

  idiomatic bytes from byte slice:
  length of byte slice: 5
  [5, 4, 3, 2, 1]
  printing slice with implicit iteration:
  [5 4 3 2 1]
`
	cfg := plainConfig()
	cfg.Output.Footer = ""
	if diff := cmp.Diff(want, run(t, cfg, "bytes")); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Strings(t *testing.T) {
	got := run(t, plainConfig(), "strings")
	assert.Contains(t, got, "  utf8 characters from \"a test string\":\n  a   t e s t   s t r i n g\n")
	assert.Contains(t, got, "  a n o t h e r   t e s t   s t r i n g\n")
	assert.Contains(t, got, `  at index 1 char of "another test string" is n`)
	assert.Contains(t, got, "  index 19 out of range\n")
	assert.Contains(t, got, `"héllo wörld 👋🏽": bytes 22, chars 14, graphemes 13`)
}

func TestRun_StringsMultiByte(t *testing.T) {
	cfg := plainConfig()
	cfg.Inputs.PullString = "日本"
	cfg.Inputs.RangeString = "äö"
	cfg.Inputs.LookupIndex = 5
	got := run(t, cfg, "strings")
	assert.Contains(t, got, "  日 本\n")
	assert.Contains(t, got, "  ä ö\n")
	assert.Contains(t, got, "  index 5 out of range\n")
	assert.Contains(t, got, "  index 2 out of range\n")
}

func TestRun_Adapters(t *testing.T) {
	want := `
  -- string iteration adapters --
  "abc123" is alphabetic   false
  "abc123" is alphanumeric true
  "abc123" is numeric      false
  "abc123" is ascii        true
  chars [2, 4) of "abc123" are: c1
  numeric chars of "abc123" are: "123"
`
	cfg := plainConfig()
	cfg.Output.Footer = ""
	if diff := cmp.Diff(want, run(t, cfg, "adapters")); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_AdaptersInvalidBounds(t *testing.T) {
	for _, bounds := range [][2]int{{4, 2}, {-1, 2}, {2, 7}} {
		cfg := plainConfig()
		cfg.Inputs.SliceMin, cfg.Inputs.SliceMax = bounds[0], bounds[1]
		got := run(t, cfg, "adapters")
		assert.Contains(t, got, "are invalid for \"abc123\"", "bounds %v", bounds)
		assert.NotContains(t, got, "chars [")
		assert.Contains(t, got, `numeric chars of "abc123" are: "123"`)
	}
}

func TestDescribeSlice(t *testing.T) {
	assert.Equal(t, `chars [2, 4) of "abc123" are: c1`, describeSlice("abc123", 2, 4, "c1", nil))
	assert.Equal(t, `slice bounds 4 and 2 are invalid for "abc123"`,
		describeSlice("abc123", 4, 2, "", &text.BoundsError{Min: 4, Max: 2, Len: 6}))
	assert.Equal(t, "slice failed: boom", describeSlice("abc123", 0, 1, "", errors.New("boom")))
}

func TestRun_Generic(t *testing.T) {
	got := run(t, plainConfig(), "generic")
	assert.Contains(t, got, "  byte array: [1, 2, 3, 4, 5]\n")
	assert.Contains(t, got, "  words:      [another, test, string]\n")
	assert.Contains(t, got, "  halves:     [0.5, 0.25, 0.125]\n")
}

func TestRun_DIP(t *testing.T) {
	got := run(t, plainConfig(), "dip")
	assert.Contains(t, got, "  Demo with id 1 here\n  First here with id = 1\n")
	assert.Contains(t, got, "  Demo with id 2 here\n  Second here with id = 2\n")
	assert.Contains(t, got, "  int:     2 plus 3 = 5\n")
	assert.Contains(t, got, "  int:     2 times 3 = 6\n")
	assert.Contains(t, got, "  float64: 1.5 plus 2.5 = 4\n")
	assert.Contains(t, got, "  float64: 1.5 times 2.5 = 3.75\n")
}

func TestRun_Timer(t *testing.T) {
	got := run(t, plainConfig(), "timer")
	assert.Contains(t, got, "  work result = 3.0100\n")
	assert.Contains(t, got, "  RunTime 00:00:00.05\n")
}

func TestRun_Hello(t *testing.T) {
	got := run(t, plainConfig(), "hello")
	assert.Contains(t, got, "  Hello, new dev - this is idioms with helper string\n")
}

func TestRun_AllInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	got := run(t, plainConfig())
	last := -1
	for _, s := range Builtin() {
		idx := strings.Index(got, "-- "+s.Title+" --")
		require.GreaterOrEqual(t, idx, 0, "missing section %s", s.Name)
		assert.Greater(t, idx, last, "section %s out of order", s.Name)
		last = idx
	}
	assert.Equal(t, 1, strings.Count(got, "That's all Folks!"))
	assert.True(t, strings.HasSuffix(got, "\n  That's all Folks!\n"))
}

func TestRun_Deterministic(t *testing.T) {
	cfg := plainConfig()
	first := run(t, cfg)
	second := run(t, cfg)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("runs differ (-first +second):\n%s", diff)
	}
}

func TestRun_UnknownScenarioWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(plainConfig())
	err := r.Run(context.Background(), &buf, "data", "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownScenario))
	assert.Contains(t, err.Error(), `"nope"`)
	assert.Empty(t, buf.String())
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewRunner(plainConfig()).Run(ctx, &buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.NotContains(t, buf.String(), "That's all Folks!")
}

func TestRun_StyledOutputIsPlainOffTerminal(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")
	styled := config.DefaultConfig()
	styled.Output.Styled = true
	assert.Equal(t, run(t, plainConfig(), "hello"), run(t, styled, "hello"))
}

func TestRun_CustomIndentAndFooter(t *testing.T) {
	cfg := plainConfig()
	cfg.Output.Indent = "> "
	cfg.Output.Footer = "done"
	got := run(t, cfg, "hello")
	assert.Equal(t, "\n> -- console app --\n> Hello, new dev - this is idioms with helper string\n\n> done\n", got)
}

func TestRun_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewRunner(plainConfig(), WithLoggers(logging.Wrap(zap.New(core), config.LoggingConfig{})))

	var buf bytes.Buffer
	require.NoError(t, r.Run(context.Background(), &buf, "data", "timer"))

	started := logs.FilterMessage("scenario starting").All()
	require.Len(t, started, 2)
	assert.Equal(t, "data", started[0].ContextMap()["scenario"])
	assert.NotEmpty(t, started[0].ContextMap()["run_id"])
	assert.Equal(t, 1, logs.FilterMessage("sequence moved").Len())
	assert.Equal(t, 1, logs.FilterMessage("work timed").Len())
}

func TestRunner_ListAndLookup(t *testing.T) {
	r := NewRunner(nil)
	names := make([]string, 0)
	for _, s := range r.List() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"data", "object", "bytes", "strings", "adapters", "generic", "dip", "timer", "hello"}, names)

	s, ok := r.Lookup("bytes")
	require.True(t, ok)
	assert.Equal(t, "byte array iteration", s.Title)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRunner_WithScenarios(t *testing.T) {
	custom := Scenario{Name: "one", Title: "just one", Run: func(env *Env) { env.P.Line("ran") }}
	r := NewRunner(plainConfig(), WithScenarios(custom))

	var buf bytes.Buffer
	require.NoError(t, r.Run(context.Background(), &buf))
	assert.Equal(t, "\n  -- just one --\n  ran\n\n  That's all Folks!\n", buf.String())
}
