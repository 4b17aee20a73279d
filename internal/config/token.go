// internal/config/token.go
//
// Session token resolution. The puzzle service authenticates with a session
// cookie; the token lives in a plain file so it survives between years.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// TokenEnv overrides every token file when set.
	TokenEnv = "AOC_SESSION"

	tokenFileName = "token"
)

// TokenPath returns the canonical token file location
// ($XDG_CONFIG_HOME/aockit/token).
func TokenPath() string {
	return filepath.Join(xdg.ConfigHome, "aockit", tokenFileName)
}

// legacyTokenPath is where the aocd Python package keeps its token. Read as
// a fallback so an existing setup keeps working.
func legacyTokenPath() string {
	return filepath.Join(xdg.ConfigHome, "aocd", tokenFileName)
}

// Token resolves the session token: environment variable first, then the
// aockit token file, then the legacy aocd one.
func Token() (string, error) {
	if env := strings.TrimSpace(os.Getenv(TokenEnv)); env != "" {
		return env, nil
	}
	for _, path := range []string{TokenPath(), legacyTokenPath()} {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if token := strings.TrimSpace(string(data)); token != "" {
			return token, nil
		}
	}
	return "", fmt.Errorf("config: no session token; set %s or run `aockit token set`", TokenEnv)
}

// WriteToken stores the token at the canonical location with user-only
// permissions.
func WriteToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("config: token is empty")
	}
	path := TokenPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create token dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("config: write token: %w", err)
	}
	return nil
}
