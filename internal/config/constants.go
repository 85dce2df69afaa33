package config

import "time"

// Application identity.
const (
	AppName        = "littleprince"
	DBFileName     = "littleprince.db"
	ConfigFileName = ".littleprince"
	ConfigFileType = "toml"
	EnvPrefix      = "LITTLEPRINCE"
)

// Flavor text.
const (
	PrinceTimeout         = 8 * time.Second
	DefaultServerAddr     = ":3001"
	DefaultClaudePath     = "claude"
	DefaultClaudeBudget   = 0.05
	MaxPassphraseAttempts = 3
)

// Onboarding limits.
const (
	MaxOnboardingGoals = 5
	MinOnboardingGoals = 1
)
