package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	appDirName  = "dcmtag"
	sessionFile = "session"
)

var userConfigDirFn = os.UserConfigDir

// Session holds the state carried between runs.
type Session struct {
	LastFilePath string
}

func sessionDir() (string, error) {
	base, err := userConfigDirFn()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// Load reads the saved session. A missing session file is not an error; it
// simply yields an empty session.
func Load() (Session, error) {
	dir, err := sessionDir()
	if err != nil {
		return Session{}, err
	}

	v := viper.New()
	v.SetConfigName(sessionFile)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("reading session: %w", err)
	}

	return Session{LastFilePath: v.GetString("last_file_path")}, nil
}

// Save writes the session, creating the config directory if needed.
func Save(s Session) error {
	dir, err := sessionDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("last_file_path", s.LastFilePath)

	if err := v.WriteConfigAs(filepath.Join(dir, sessionFile+".yaml")); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}
