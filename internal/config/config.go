package config

// Config represents the complete parser-catalog configuration.
// It can be loaded from parser-catalog.yml with environment variable overrides.
type Config struct {
	// Source is the directory containing the JavaScript parser modules.
	Source string `yaml:"source" mapstructure:"source"`

	// Output is the path of the JSON catalog written at the end of a run.
	Output string `yaml:"output" mapstructure:"output"`

	// Patterns are glob patterns selecting candidate files, relative to
	// Source. The default matches the corpus layout: a flat directory of
	// .js files.
	Patterns []string `yaml:"patterns" mapstructure:"patterns"`

	// Ignore are glob patterns for files to skip.
	Ignore []string `yaml:"ignore" mapstructure:"ignore"`
}

// Default returns a configuration with the conventional WebToEpub layout.
func Default() *Config {
	return &Config{
		Source:   "webtoepub_js_parsers",
		Output:   "parsers_data.json",
		Patterns: []string{"*.js"},
		Ignore:   []string{},
	}
}
