package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quickstart/pkg/domain"
)

func TestBuilder(t *testing.T) {
	c, err := New().
		List("fruit", Opt("apple", "Apple"), Opt("pear", "Pear")).
		Banner("banner.general", "General").
		String("project.name", "the project name").Mandatory().DefaultExpr("basename(cwd())").
		SelectSingle("lunch", "your lunch").OptionsFrom("fruit").Default("pear").
		On("apple").ShowIf("#hungry# == true").Set("dessert", nil).
		SelectMulti("os.packages", "packages").PathOverride("packages").Options(Opt("git", "Git")).Final().
		Build()
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())

	qs := c.Questions()
	assert.Equal(t, domain.QuestionBanner, qs[0].Type)
	assert.Equal(t, "General", qs[0].Description)

	name := qs[1]
	assert.True(t, name.Mandatory)
	assert.True(t, name.DefaultEval)
	assert.Equal(t, "basename(cwd())", name.Default)

	lunch := qs[2]
	assert.Equal(t, []domain.Option{Opt("apple", "Apple"), Opt("pear", "Pear")}, lunch.Options)
	assert.Equal(t, "pear", lunch.Default)
	assert.Equal(t, domain.OptionConfig{
		If:  "#hungry# == true",
		Set: []domain.Effect{{Path: "dessert", Value: nil}},
	}, lunch.OptionsConfiguration["apple"])

	pkgs := qs[3]
	assert.Equal(t, "packages", pkgs.Target())
	assert.True(t, pkgs.Final)
}

func TestBuilder_Errors(t *testing.T) {
	_, err := New().String("a..b", "broken").Build()
	assert.Error(t, err)

	_, err = New().SelectSingle("a", "a").OptionsFrom("missing").Build()
	assert.Error(t, err)
}
