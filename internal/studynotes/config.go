package studynotes

// Config holds study note generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for study note generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.5,
	}
}
