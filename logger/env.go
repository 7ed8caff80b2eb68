package logger

import (
	"io"
	"os"
)

// EnvLevel is the environment variable read by InitFromEnv.
const EnvLevel = "BLOG_LEVEL"

// LevelFromEnv parses the level named by the environment variable key,
// returning fallback when it is unset or not a valid level.
func LevelFromEnv(key string, fallback Level) Level {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	lvl, err := ParseLevel(val)
	if err != nil {
		return fallback
	}
	return lvl
}

// InitFromEnv is Init with the threshold taken from BLOG_LEVEL,
// defaulting to InfoLevel.
func InitFromEnv(w io.Writer) {
	install(w, LevelFromEnv(EnvLevel, InfoLevel))
}
