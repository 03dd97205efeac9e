package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeisme/dcolor/pkg/ansi"
	"github.com/yeisme/dcolor/pkg/palette"
)

func baseOptions() Options {
	return Options{Start: -1, End: -1}
}

func run(t *testing.T, opts Options, stdin string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	r, err := NewRunner(opts, strings.NewReader(stdin), &out, &errOut)
	require.NoError(t, err)
	require.NoError(t, r.Run(context.Background()))
	return out.String(), errOut.String()
}

func TestRun_TextOutput(t *testing.T) {
	opts := baseOptions()
	opts.Args = []string{"hello", "world"}
	opts.Start, opts.End = 0, 5

	out, errOut := run(t, opts, "")
	assert.Equal(t, "```ansi\n\x1b[37;40mhello\x1b[0m world\n```\n", out)
	assert.Empty(t, errOut)
}

func TestRun_NamedColorsAndSelect(t *testing.T) {
	opts := baseOptions()
	opts.Args = []string{"x marks the spot"}
	opts.Select = "spot"
	opts.Foreground = "red"
	opts.Background = "Indigo"
	opts.Bold = true
	opts.Underline = true

	out, _ := run(t, opts, "")
	assert.Equal(t, "```ansi\nx marks the \x1b[1;4;31;45mspot\x1b[0m\n```\n", out)
}

func TestRun_Stdin(t *testing.T) {
	opts := baseOptions()
	opts.Foreground = "#DC322F"
	opts.Bold = true

	out, _ := run(t, opts, "x\n")
	assert.Equal(t, "```ansi\n\x1b[1;31;40mx\x1b[0m\n```\n", out)
}

func TestRun_UnknownHexFallsBack(t *testing.T) {
	opts := baseOptions()
	opts.Args = []string{"abc"}
	opts.Foreground = "#123456"

	out, _ := run(t, opts, "")
	assert.Equal(t, "```ansi\n\x1b[37;40mabc\x1b[0m\n```\n", out)
}

func TestRun_JSONOutput(t *testing.T) {
	opts := baseOptions()
	opts.Args = []string{"hello world"}
	opts.Start = 6
	opts.Profile = "bright"
	opts.Foreground = "cyan"
	opts.Underline = true
	opts.Output = "json"

	out, _ := run(t, opts, "")
	var got Output
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "bright", got.Profile)
	assert.Equal(t, ansi.Span{Start: 6, End: 11}, got.Span)
	assert.Equal(t, "96;40", got.Codes)
	assert.False(t, got.Style.Underline)
	assert.Equal(t, "```ansi\nhello \x1b[96;40mworld\x1b[0m\n```", got.ANSI)
	require.Len(t, got.Segments, 2)
	assert.Equal(t, "world", got.Segments[1].Text)
}

func TestRun_StructuredFormats(t *testing.T) {
	for _, format := range []string{"yaml", "toml", OutputSegments} {
		opts := baseOptions()
		opts.Args = []string{"hi"}
		opts.Output = format
		out, _ := run(t, opts, "")
		assert.Contains(t, out, "hi", format)
	}
}

func TestRun_Preview(t *testing.T) {
	opts := baseOptions()
	opts.Args = []string{"preview me"}
	opts.Preview = true

	out, errOut := run(t, opts, "")
	assert.True(t, strings.HasPrefix(out, ansi.FenceOpen))
	assert.Contains(t, ansi.Strip(errOut), "preview me")
}

func TestRun_FileInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg.txt")
	require.NoError(t, os.WriteFile(path, []byte("line1\nline2\n"), 0o644))

	opts := baseOptions()
	opts.File = path
	opts.Start, opts.End = 6, 11

	out, _ := run(t, opts, "ignored")
	assert.Equal(t, "```ansi\nline1\n\x1b[37;40mline2\x1b[0m\n```\n", out)
}

func TestNewRunner_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
		is     error
	}{
		{"unknown profile", func(o *Options) { o.Profile = "neon" }, palette.ErrUnknownProfile},
		{"unknown color", func(o *Options) { o.Foreground = "purple" }, ErrUnknownColor},
		{"ambiguous color", func(o *Options) { o.Background = "gy" }, nil},
		{"select and start", func(o *Options) { o.Select = "a"; o.Start = 1 }, nil},
		{"watch without file", func(o *Options) { o.Watch = true }, nil},
		{"bad output", func(o *Options) { o.Output = "xml" }, nil},
		{"pick unavailable", func(o *Options) { o.Foreground = PickQuery }, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts := baseOptions()
			opts.Args = []string{"a"}
			c.mutate(&opts)
			_, err := NewRunner(opts, nil, &bytes.Buffer{}, &bytes.Buffer{})
			require.Error(t, err)
			if c.is != nil {
				assert.True(t, errors.Is(err, c.is), "got %v", err)
			}
		})
	}
}

func TestRun_InputErrors(t *testing.T) {
	opts := baseOptions()
	r, err := NewRunner(opts, nil, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.ErrorIs(t, r.Run(context.Background()), ErrNoInput)

	opts.Args = []string{"abc"}
	opts.Select = "zzz"
	r, err = NewRunner(opts, nil, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.ErrorIs(t, r.Run(context.Background()), ErrSelectionNotFound)
}

func TestResolveSpan(t *testing.T) {
	opts := baseOptions()
	span, err := ResolveSpan("abc", opts)
	require.NoError(t, err)
	assert.True(t, span.Empty())

	opts.End = 2
	span, _ = ResolveSpan("abc", opts)
	assert.Equal(t, ansi.Span{Start: 0, End: 2}, span)

	opts = baseOptions()
	opts.Start = 1
	span, _ = ResolveSpan("äbc", opts)
	assert.Equal(t, ansi.Span{Start: 1, End: 3}, span)

	opts = baseOptions()
	opts.Select = "ö"
	span, _ = ResolveSpan("hällö", opts)
	assert.Equal(t, ansi.Span{Start: 4, End: 5}, span)
}

func TestResolveColor(t *testing.T) {
	fg := palette.Classic.Foreground

	hex, err := ResolveColor(fg, "", nil)
	require.NoError(t, err)
	assert.Empty(t, hex)

	hex, _ = ResolveColor(fg, " blue ", nil)
	assert.Equal(t, "#268bd2", hex)

	hex, _ = ResolveColor(fg, "#ABCDEF", nil)
	assert.Equal(t, "#ABCDEF", hex)

	picked := func(role palette.Role, entries []palette.Entry) (palette.Entry, error) {
		assert.Equal(t, palette.Foreground, role)
		return entries[2], nil
	}
	hex, err = ResolveColor(fg, "?", picked)
	require.NoError(t, err)
	assert.Equal(t, "#859900", hex)
}

func TestRun_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	opts := baseOptions()
	opts.File = path
	opts.Watch = true
	opts.Debounce = 20 * time.Millisecond

	out := &syncBuffer{}
	r, err := NewRunner(opts, nil, out, &bytes.Buffer{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "\x1b[37;40mtwo")
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Contains(t, out.String(), "\x1b[37;40mone")
}
