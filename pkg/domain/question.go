package domain

// QuestionType selects the decision procedure used for a question.
type QuestionType string

const (
	// QuestionBanner prints a title and never touches the document.
	QuestionBanner QuestionType = "banner"
	// QuestionString asks for free text.
	QuestionString QuestionType = "string"
	// QuestionSelectSingle asks for exactly one option.
	QuestionSelectSingle QuestionType = "select_single"
	// QuestionSelectMulti asks for any number of options, appended to the current value.
	QuestionSelectMulti QuestionType = "select_multi"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionBanner, QuestionString, QuestionSelectSingle, QuestionSelectMulti:
		return true
	}
	return false
}

// IsSelect reports whether t offers a list of options.
func (t QuestionType) IsSelect() bool {
	return t == QuestionSelectSingle || t == QuestionSelectMulti
}

// Question is the declarative specification of one wizard prompt.
// Path is the nominal document path; PathOverride, when set, redirects reads and writes.
type Question struct {
	Path               string       `json:"path" yaml:"-"`
	Type               QuestionType `json:"type" yaml:"type"`
	Description        string       `json:"description" yaml:"description"`
	If                 string       `json:"if,omitempty" yaml:"if,omitempty"`
	Mandatory          bool         `json:"mandatory,omitempty" yaml:"mandatory,omitempty"`
	Final              bool         `json:"final,omitempty" yaml:"final,omitempty"`
	PathOverride       string       `json:"pathOverride,omitempty" yaml:"pathOverride,omitempty"`
	Default            any          `json:"default,omitempty" yaml:"default,omitempty"`
	DefaultEval        bool         `json:"defaultEval,omitempty" yaml:"defaultEval,omitempty"`
	DefaultDescription string       `json:"defaultDescription,omitempty" yaml:"defaultDescription,omitempty"`

	// Options is always inlined. OptionsRef names the external list it was
	// resolved from, if any.
	Options    []Option `json:"options,omitempty" yaml:"options,omitempty"`
	OptionsRef string   `json:"optionsRef,omitempty" yaml:"-"`

	OptionsConfiguration map[string]OptionConfig `json:"optionsConfiguration,omitempty" yaml:"optionsConfiguration,omitempty"`
}

// Target returns the path answers are read from and written to.
func (q Question) Target() string {
	if q.PathOverride != "" {
		return q.PathOverride
	}
	return q.Path
}

// Option looks up an option by value.
func (q Question) Option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// Option is one selectable answer of a select question.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// OptionConfig holds per-option behavior.
type OptionConfig struct {
	// If hides the option when it evaluates to false.
	If string `json:"if,omitempty" yaml:"if,omitempty"`
	// DefaultIf makes the option the default when it evaluates to true.
	DefaultIf string `json:"default_if,omitempty" yaml:"default_if,omitempty"`
	// Set lists the side effects applied when the option is chosen, in order.
	Set []Effect `json:"set,omitempty" yaml:"set,omitempty"`
}

// Effect is a literal document mutation. A nil Value removes Path.
type Effect struct {
	Path  string `json:"path" yaml:"path"`
	Value any    `json:"value" yaml:"value"`
}

// IsUnset reports whether the effect removes its path.
func (e Effect) IsUnset() bool {
	return e.Value == nil
}
