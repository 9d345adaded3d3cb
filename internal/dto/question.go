package dto

// QuestionAttributes holds the scalar attributes of a catalog question.
// Options and option configurations are decoded separately to keep their order.
type QuestionAttributes struct {
	Type               string `mapstructure:"type"`
	Description        string `mapstructure:"description"`
	If                 string `mapstructure:"if"`
	Mandatory          bool   `mapstructure:"mandatory"`
	Final              bool   `mapstructure:"final"`
	PathOverride       string `mapstructure:"pathOverride"`
	Default            any    `mapstructure:"default"`
	DefaultEval        bool   `mapstructure:"defaultEval"`
	DefaultDescription string `mapstructure:"defaultDescription"`
}

// OptionAttributes holds the scalar attributes of one optionsConfiguration entry.
type OptionAttributes struct {
	If        string `mapstructure:"if"`
	DefaultIf string `mapstructure:"default_if"`
}

// ListEntry is the long form of an external list entry: `key: {name: Label}`.
type ListEntry struct {
	Name string `mapstructure:"name"`
}
