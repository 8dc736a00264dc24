package cli

import (
	"github.com/zarlcorp/zseed/internal/user"
	"golang.org/x/crypto/bcrypt"
)

// build-time settings; there are no flags or environment overrides
const (
	RecordCount     = 5000
	OutputFile      = "casino_users.json"
	DefaultPassword = "Temp123!"
)

// Config holds the settings for one run.
type Config struct {
	RecordCount      int
	OutputFile       string
	DefaultPassword  string
	RoleDistribution user.Distribution
	BcryptCost       int
}

// DefaultConfig returns the compiled-in settings.
func DefaultConfig() Config {
	return Config{
		RecordCount:      RecordCount,
		OutputFile:       OutputFile,
		DefaultPassword:  DefaultPassword,
		RoleDistribution: user.DefaultDistribution(),
		BcryptCost:       bcrypt.DefaultCost,
	}
}
