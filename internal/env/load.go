// Package env loads process environment from .env files.
package env

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// LoadEnv loads the given .env files (".env" when none is given) without
// overriding variables that are already set. A missing file is not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug().Str("file", f).Msg("no .env file found, assuming environment variables are set directly")
				continue
			}
			return err
		}
	}
	return nil
}
