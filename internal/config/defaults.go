package config

const (
	defaultLanguage  = "en"
	defaultTieBreak  = TieFirst
	defaultOrgLabel  = "ORG"
	defaultLogFormat = "console"
	defaultLogLevel  = "warn"
)

// Tie policies accepted by guess.tie_break.
const (
	TieFirst   = "first"
	TieLexical = "lexical"
	TieError   = "error"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Guess: Guess{
			Language:  defaultLanguage,
			TieBreak:  defaultTieBreak,
			OrgLabels: []string{defaultOrgLabel},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
