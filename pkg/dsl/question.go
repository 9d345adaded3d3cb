package dsl

import "github.com/aretw0/quickstart/pkg/domain"

// QuestionBuilder configures the most recently added question. It embeds the
// Builder so the next question can be chained directly.
type QuestionBuilder struct {
	*Builder
	question domain.Question
	option   string
}

// If sets the visibility condition.
func (q *QuestionBuilder) If(condition string) *QuestionBuilder {
	q.question.If = condition
	return q
}

// Mandatory requires an answer.
func (q *QuestionBuilder) Mandatory() *QuestionBuilder {
	q.question.Mandatory = true
	return q
}

// Final locks the value once set.
func (q *QuestionBuilder) Final() *QuestionBuilder {
	q.question.Final = true
	return q
}

// PathOverride redirects reads and writes to path.
func (q *QuestionBuilder) PathOverride(path string) *QuestionBuilder {
	q.question.PathOverride = path
	return q
}

// Default sets a literal default.
func (q *QuestionBuilder) Default(value any) *QuestionBuilder {
	q.question.Default = value
	q.question.DefaultEval = false
	return q
}

// DefaultExpr sets a default computed by an expression.
func (q *QuestionBuilder) DefaultExpr(expression string) *QuestionBuilder {
	q.question.Default = expression
	q.question.DefaultEval = true
	return q
}

// DefaultDescription sets the text shown in place of the default.
func (q *QuestionBuilder) DefaultDescription(text string) *QuestionBuilder {
	q.question.DefaultDescription = text
	return q
}

// Options appends inline options.
func (q *QuestionBuilder) Options(options ...domain.Option) *QuestionBuilder {
	q.question.Options = append(q.question.Options, options...)
	return q
}

// OptionsFrom refers to a named list.
func (q *QuestionBuilder) OptionsFrom(list string) *QuestionBuilder {
	q.question.OptionsRef = list
	return q
}

// On selects the option the following ShowIf, DefaultIf and Set calls configure.
func (q *QuestionBuilder) On(value string) *QuestionBuilder {
	q.option = value
	return q
}

func (q *QuestionBuilder) update(fn func(*domain.OptionConfig)) *QuestionBuilder {
	if q.question.OptionsConfiguration == nil {
		q.question.OptionsConfiguration = make(map[string]domain.OptionConfig)
	}
	cfg := q.question.OptionsConfiguration[q.option]
	fn(&cfg)
	q.question.OptionsConfiguration[q.option] = cfg
	return q
}

// ShowIf hides the current option unless condition holds.
func (q *QuestionBuilder) ShowIf(condition string) *QuestionBuilder {
	return q.update(func(c *domain.OptionConfig) { c.If = condition })
}

// DefaultIf makes the current option the default when condition holds.
func (q *QuestionBuilder) DefaultIf(condition string) *QuestionBuilder {
	return q.update(func(c *domain.OptionConfig) { c.DefaultIf = condition })
}

// Set adds a side effect to the current option. A nil value removes path.
func (q *QuestionBuilder) Set(path string, value any) *QuestionBuilder {
	return q.update(func(c *domain.OptionConfig) {
		c.Set = append(c.Set, domain.Effect{Path: path, Value: value})
	})
}

// Question returns the question built so far.
func (q *QuestionBuilder) Question() domain.Question {
	return q.question
}
