package configs

import (
	"os"

	"github.com/rs/zerolog"
)

func NewLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if parsed, err := zerolog.ParseLevel(v); err == nil {
			level = parsed
		}
	}
	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}
