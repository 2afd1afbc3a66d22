package app

import (
	"log/slog"
	"os"
	"path/filepath"
)

// HomeEnv names the environment variable that overrides the default home.
const HomeEnv = "CDDPROOF_HOME"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string       // data directory, e.g. $HOME/.cddproof
	Workers int          // batch concurrency; zero means GOMAXPROCS
	Logger  *slog.Logger // optional; defaults to discarding
}

// ResolveHome returns flagValue if set, then $CDDPROOF_HOME, then
// ~/.cddproof.
func ResolveHome(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(HomeEnv); env != "" {
		return env, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".cddproof"), nil
}
