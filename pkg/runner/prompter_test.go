package runner

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quickstart/pkg/domain"
	"github.com/aretw0/quickstart/pkg/ports"
)

func TestParseChoice(t *testing.T) {
	labels := []string{"bar (default)", "qux", "None"}

	tests := []struct {
		name   string
		answer string
		def    int
		multi  bool
		want   []int
		err    string
	}{
		{name: "index", answer: "1", def: 0, want: []int{1}},
		{name: "label", answer: "qux", def: 0, want: []int{1}},
		{name: "empty takes default", answer: "", def: 2, want: []int{2}},
		{name: "empty without default", answer: "  ", def: -1, err: `Value "" is invalid`},
		{name: "out of range", answer: "3", def: 0, err: `Value "3" is invalid`},
		{name: "non canonical index", answer: "01", def: 0, err: `Value "01" is invalid`},
		{name: "unknown label", answer: "bar", def: 0, err: `Value "bar" is invalid`},
		{name: "comma in single", answer: "0,1", def: 0, err: `Value "0,1" is invalid`},
		{name: "multi", answer: "1, 0", multi: true, def: -1, want: []int{1, 0}},
		{name: "multi dedup", answer: "qux,1", multi: true, def: -1, want: []int{1}},
		{name: "multi bad token", answer: "0,x", multi: true, def: -1, err: `Value "x" is invalid`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChoice(tt.answer, labels, tt.def, tt.multi)
			if tt.err != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidChoice)
				assert.Equal(t, tt.err, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextPrompter_AskChoice(t *testing.T) {
	var out bytes.Buffer
	p := NewTextPrompter(strings.NewReader("quuux\n2\n"), &out)

	got, err := p.AskChoice(context.Background(), "Please select DESCRIPTION: ", []string{"bar", "qux"}, -1, false)
	require.Error(t, err, "first answer is invalid and the second is out of range")
	assert.ErrorIs(t, err, domain.ErrInputAborted)
	assert.Nil(t, got)

	block := "Please select DESCRIPTION: \n  [0] bar\n  [1] qux\n > "
	assert.Equal(t,
		block+"Value \"quuux\" is invalid\n"+block+"Value \"2\" is invalid\n"+block,
		out.String())
}

func TestTextPrompter_AskChoice_Default(t *testing.T) {
	var out bytes.Buffer
	p := NewTextPrompter(strings.NewReader("\n"), &out)

	got, err := p.AskChoice(context.Background(), "Pick: ", []string{"a", "b (default)"}, 1, false)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)
}

func TestTextPrompter_AskText(t *testing.T) {
	var out bytes.Buffer
	p := NewTextPrompter(strings.NewReader("  typed  \n\n"), &out)
	ctx := context.Background()

	answer, err := p.AskText(ctx, "Please enter name: ", "prefill")
	require.NoError(t, err)
	assert.Equal(t, "typed", answer)

	answer, err = p.AskText(ctx, "Please enter name: ", "prefill")
	require.NoError(t, err)
	assert.Equal(t, "prefill", answer)

	_, err = p.AskText(ctx, "Please enter name: ", "")
	assert.ErrorIs(t, err, domain.ErrInputAborted)
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, strings.Repeat("Please enter name: ", 3), out.String())
}

func TestTextPrompter_Cancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := NewTextPrompter(r, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.AskText(ctx, "never answered: ", "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTextPrompter_CloseReleasesReader(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := NewTextPrompter(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.AskText(ctx, "abandoned: ", "")
	require.ErrorIs(t, err, context.Canceled)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	// The late line is consumed and dropped instead of blocking the reader.
	_, err = io.WriteString(w, "late\n")
	require.NoError(t, err)

	select {
	case _, ok := <-p.lines:
		assert.False(t, ok, "no line is delivered after Close")
	case <-time.After(time.Second):
		t.Fatal("background reader did not exit after Close")
	}

	_, err = p.AskText(context.Background(), "closed: ", "")
	assert.ErrorIs(t, err, domain.ErrInputAborted)
}

func TestTextPrompter_Announce(t *testing.T) {
	var out bytes.Buffer
	p := NewTextPrompter(strings.NewReader(""), &out)
	require.NoError(t, p.Announce(context.Background(), "PHP"))
	require.NoError(t, p.Notify(context.Background(), "Invalid answer, please try again"))
	assert.Equal(t, "\nPHP\n===\n\nInvalid answer, please try again\n", out.String())

	out.Reset()
	rendered := NewTextPrompter(strings.NewReader(""), &out, WithTextRenderer(func(s string) (string, error) {
		return "<" + s + ">\n\n", nil
	}))
	require.NoError(t, rendered.Announce(context.Background(), "PHP"))
	assert.Equal(t, "<# PHP>\n", out.String())
}

func TestScriptedPrompter(t *testing.T) {
	ctx := context.Background()
	p := NewScriptedPrompter("nope", "1", "")

	got, err := p.AskChoice(ctx, "Pick: ", []string{"a", "b"}, -1, false)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	answer, err := p.AskText(ctx, "Name: ", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", answer)

	_, err = p.AskText(ctx, "Again: ", "")
	assert.ErrorIs(t, err, ErrScriptExhausted)

	assert.Equal(t, []string{"Pick: ", `Value "nope" is invalid`, "Name: ", "Again: "}, p.Transcript())
	assert.Equal(t, 0, p.Remaining())
}

func TestDefaultsPrompter(t *testing.T) {
	ctx := context.Background()
	p := NewDefaultsPrompter()

	answer, err := p.AskText(ctx, "Name: ", "demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", answer)

	got, err := p.AskChoice(ctx, "Pick: ", []string{"a", "b"}, 0, false)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got)

	// A choice without default is rejected once, then the script gives up.
	_, err = p.AskChoice(ctx, "Pick: ", []string{"a", "b"}, -1, false)
	assert.ErrorIs(t, err, ErrScriptExhausted)

	// A rejection notice stops the default loop for the next ask.
	p = NewDefaultsPrompter()
	require.NoError(t, p.Notify(ctx, "Invalid answer, please try again"))
	_, err = p.AskText(ctx, "Name: ", "")
	assert.ErrorIs(t, err, ErrScriptExhausted)
}

func TestChain(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var order []string
	tag := func(name string) Middleware {
		return func(next ports.Prompter) ports.Prompter {
			order = append(order, name)
			return next
		}
	}

	inner := NewScriptedPrompter("demo")
	p := Chain(inner, tag("outer"), LoggingMiddleware(logger), tag("inner"))
	assert.Equal(t, []string{"inner", "outer"}, order)

	answer, err := p.AskText(context.Background(), "Name: ", "")
	require.NoError(t, err)
	assert.Equal(t, "demo", answer)
	assert.Contains(t, logs.String(), "text answered")
	assert.Contains(t, logs.String(), "answer=demo")
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()
	for answer, want := range map[string]bool{"y": true, "YES": true, "n": false, "": false, "maybe": false} {
		ok, err := Confirm(ctx, NewScriptedPrompter(answer), "Save?")
		require.NoError(t, err)
		assert.Equal(t, want, ok, answer)
	}

	p := NewScriptedPrompter("y")
	_, _ = Confirm(ctx, p, "Save?")
	assert.Equal(t, []string{"Save? [y/N] "}, p.Transcript())
}
