package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/joho/godotenv"
)

// TokenEnvVar overrides a missing config token.
const TokenEnvVar = "PEARS_TOKEN"

// ResolveToken finds the GitHub token to use, in order:
//  1. the token set in the config
//  2. PEARS_TOKEN from the environment, then from a .env file next to any loaded config file
//  3. the token the gh CLI holds for the API host
func ResolveToken(cfg Config, sourcePaths []string) (string, error) {
	if cfg.Token != "" {
		return cfg.Token, nil
	}
	logger := log.Default().WithPrefix("config")

	if token := os.Getenv(TokenEnvVar); token != "" {
		logger.Debug("using token from environment", "var", TokenEnvVar)
		return token, nil
	}

	for i := len(sourcePaths) - 1; i >= 0; i-- {
		envPath := filepath.Join(filepath.Dir(sourcePaths[i]), ".env")
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		values, err := godotenv.Read(envPath)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", envPath, err)
		}
		if token := values[TokenEnvVar]; token != "" {
			logger.Debug("using token from env file", "path", envPath)
			return token, nil
		}
	}

	host := "github.com"
	if u, err := url.Parse(cfg.API.Endpoint); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	if token, source := auth.TokenForHost(host); token != "" {
		logger.Debug("using token from gh", "host", host, "source", source)
		return token, nil
	}

	return "", fmt.Errorf("no GitHub token found: set token in the config file, export %s, or run gh auth login", TokenEnvVar)
}
