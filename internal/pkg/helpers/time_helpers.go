package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, falling back to fallback when the
// string is empty or malformed. The fallback is logged so a typo in config
// does not silently shorten token lifetimes.
func ParseDuration(raw string, fallback time.Duration) time.Duration {
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Warn().Err(err).Str("value", raw).Dur("fallback", fallback).Msg("Invalid duration in config, using fallback")
		return fallback
	}
	return parsed
}
