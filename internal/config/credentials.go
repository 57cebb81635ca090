package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fraenktools/fraenkctl/models"
)

// Environment variables and file keys for the carrier credentials.
const (
	EnvUsername = "FRAENK_USERNAME"
	EnvPassword = "FRAENK_PASSWORD"
)

// localEnvFile is the project-local credential file checked last.
const localEnvFile = ".env"

// ResolveCredentials resolves the carrier username/password pair by checking,
// in priority order:
//
//  1. the FRAENK_USERNAME / FRAENK_PASSWORD environment variables,
//  2. the user-level file ~/.config/fraenk/credentials,
//  3. ./.env in the current directory.
//
// The first source that yields both values wins. A file that exists but
// cannot be read or parsed is a hard error; a file that is merely absent is
// skipped. If no source yields both values, a wrapped
// [ErrCredentialsNotFound] naming all three sources is returned.
func ResolveCredentials() (models.Credentials, error) {
	if creds, ok := credentialsFromEnv(); ok {
		return creds, nil
	}

	userPath := userCredentialsPath()
	for _, path := range []string{userPath, localEnvFile} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}

		creds, ok, err := parseCredentialsFile(path)
		if err != nil {
			return models.Credentials{}, fmt.Errorf("error loading credentials from %s: %w", path, err)
		}
		if ok {
			return creds, nil
		}
	}

	return models.Credentials{}, fmt.Errorf(
		"%w: set %s and %s, or provide them in %s or %s (KEY=value per line)",
		ErrCredentialsNotFound, EnvUsername, EnvPassword, userPath, localEnvFile,
	)
}

func credentialsFromEnv() (models.Credentials, bool) {
	username := os.Getenv(EnvUsername)
	password := os.Getenv(EnvPassword)
	if username == "" || password == "" {
		return models.Credentials{}, false
	}
	return models.Credentials{Username: username, Password: password}, true
}

// userCredentialsPath returns ~/.config/fraenk/credentials, or "" when the
// home directory cannot be determined.
func userCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "fraenk", "credentials")
}

// parseCredentialsFile reads a KEY=value credentials file. Blank lines and
// `#` comments are skipped; values may be wrapped in single or double quotes.
// The boolean is false when the file parses cleanly but does not contain both
// keys.
func parseCredentialsFile(path string) (models.Credentials, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Credentials{}, false, err
	}
	defer f.Close()

	var creds models.Credentials

	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return models.Credentials{}, false, fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))

		switch key {
		case EnvUsername:
			creds.Username = value
		case EnvPassword:
			creds.Password = value
		}
	}
	if err := scanner.Err(); err != nil {
		return models.Credentials{}, false, err
	}

	if creds.Username == "" || creds.Password == "" {
		return models.Credentials{}, false, nil
	}
	return creds, true, nil
}

func unquote(value string) string {
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
