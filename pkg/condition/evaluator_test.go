package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quickstart/pkg/document"
)

func sampleDoc() *document.Document {
	return document.New(map[string]any{
		"foo": "bar",
		"baz": []any{"qux", "quux"},
		"guide": map[string]any{
			"to":     "the",
			"galaxy": 42,
		},
		"php": map[string]any{
			"enabled": true,
			"version": "8.2",
		},
		"quote": "it's",
	})
}

func TestEvaluate_SimpleReturn(t *testing.T) {
	doc := document.New(nil)

	ok, err := Evaluate("true", doc)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Evaluate("false", doc)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluate_DocumentPlaceholders(t *testing.T) {
	doc := sampleDoc()

	tests := []struct {
		cond string
		want bool
	}{
		{"#foo# === 'bar'", true},
		{"#guide.to# === 'the'", true},
		{"#guide.galaxy# === 42", true},
		{"#guide.galaxy# === '42'", false},
		{"#guide.galaxy# == '42'", true},
		{"in_array('qux', #baz#)", true},
		{"in_array('quuux', #baz#)", false},
		{"in_array('qux', #missing#)", false},
		{"#missing# === null", true},
		{"#php.enabled# === true && #php.version# === '8.2'", true},
		{"#php.enabled# === false || #foo# !== 'bar'", false},
		{"!(#foo# === 'bar')", false},
		{"!in_array('x', #baz#) && #guide.galaxy# >= 40", true},
		{"#guide.galaxy# < 10", false},
		{"#php.version# > '8.1'", true},
		{"#quote# === 'it\\'s'", true},
		{"empty(#missing#)", true},
		{"count(#baz#) === 2", true},
		{"#baz# === ['qux', 'quux']", true},
		{"#guide# == {'galaxy': 42, 'to': 'the'}", true},
		{"#foo#", true},
		{"#missing#", false},
	}

	for _, tt := range tests {
		t.Run(tt.cond, func(t *testing.T) {
			got, err := Evaluate(tt.cond, doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_MatchesDocumentEquality(t *testing.T) {
	for _, value := range []any{"bar", "baz", 1, nil, true} {
		doc := document.New(map[string]any{"foo": value})
		got, err := Evaluate("#foo# === 'bar'", doc)
		require.NoError(t, err)
		assert.Equal(t, value == "bar", got)
	}
}

func TestEvaluate_Errors(t *testing.T) {
	doc := sampleDoc()

	_, err := Evaluate("#foo# ===", doc)
	var syntaxErr *SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)

	_, err = Evaluate("system('rm -rf /')", doc)
	assert.ErrorIs(t, err, ErrUnknownFunction)

	_, err = Evaluate("#baz# < 3", doc)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Evaluate("phpinfo", doc)
	assert.ErrorAs(t, err, &syntaxErr)

	_, err = Evaluate("'unterminated", doc)
	assert.ErrorAs(t, err, &syntaxErr)

	_, err = Evaluate("1; 2", doc)
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestSubstitute(t *testing.T) {
	doc := sampleDoc()
	assert.Equal(t, "'bar' === 'bar'", Substitute("#foo# === 'bar'", doc))
	assert.Equal(t, "in_array('x', ['qux', 'quux'])", Substitute("in_array('x', #baz#)", doc))
	assert.Equal(t, "null", Substitute("#nope#", doc))
	assert.Equal(t, "'it\\'s'", Substitute("#quote#", doc))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, []string{"a.b", "c"}, Placeholders("#a.b# === 1 && in_array(2, #c#)"))
	assert.Nil(t, Placeholders("true"))
}

func TestParse_Precedence(t *testing.T) {
	n, err := Parse("true || false && false")
	require.NoError(t, err)
	v, err := Eval(n)
	require.NoError(t, err)
	assert.Equal(t, true, v)

	n, err = Parse("(true || false) && false")
	require.NoError(t, err)
	v, err = Eval(n)
	require.NoError(t, err)
	assert.Equal(t, false, v)
}

func TestParse_NotBindsTighterThanComparison(t *testing.T) {
	tests := []struct {
		cond string
		want bool
	}{
		{"!'foo' === 'bar'", false},
		{"!false === true", true},
		{"!true === false", true},
		{"!0 == true", true},
		{"!!'foo' === true", true},
		{"!(true === false)", true},
		{"!#missing# && true", true},
		{"!true === false && !false", true},
		{"true === !false", true},
	}

	for _, tt := range tests {
		t.Run(tt.cond, func(t *testing.T) {
			got, err := Evaluate(tt.cond, document.New(nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	n, err := Parse("!'foo' === 'bar'")
	require.NoError(t, err)
	b, ok := n.(Binary)
	require.True(t, ok, "got %T", n)
	assert.Equal(t, "===", b.Op)
	assert.IsType(t, Not{}, b.Left)
}

func TestLooseEqual_NonFiniteStringsCompareAsText(t *testing.T) {
	assert.False(t, LooseEqual("Infinity", "inf"))
	assert.False(t, LooseEqual("NaN", "nan"))
	assert.True(t, LooseEqual("NaN", "NaN"))

	tests := []struct {
		cond string
		want bool
	}{
		{"'Infinity' == 'inf'", false},
		{"'NaN' == 'NaN'", true},
		{"'1e3' == 1000", true},
	}
	for _, tt := range tests {
		t.Run(tt.cond, func(t *testing.T) {
			got, err := Evaluate(tt.cond, document.New(nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLooseEqual(t *testing.T) {
	assert.True(t, LooseEqual(nil, false))
	assert.True(t, LooseEqual(nil, ""))
	assert.True(t, LooseEqual("1.0", 1))
	assert.False(t, LooseEqual("abc", 0))
	assert.False(t, LooseEqual([]any{"a"}, "a"))
}
