package domain

// Labels and values used when rendering select questions.
const (
	// NoneValue is the synthetic option value that resolves to "no answer".
	NoneValue = "_none"
	// NoneLabel labels the synthetic option.
	NoneLabel = "None"
	// DefaultSuffix marks the default option or the synthetic option when it is the default.
	DefaultSuffix = " (default)"
)

// DefaultConfigFile is the file name the configuration document is stored under.
const DefaultConfigFile = ".quickstart.yml"
