package database

import (
	"context"
)

// BackupRepository moves the whole state in and out as a document.
type BackupRepository interface {
	Export(ctx context.Context, opts ExportOptions) ([]byte, error)
	Import(ctx context.Context, payload []byte, opts ImportOptions) error
	DatabaseHasData(ctx context.Context) (bool, error)
}

// SettingsRepository stores preferences that live outside the state
// document, such as the chosen theme.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key string, value *string) error
}

var (
	_ BackupRepository   = (*Database)(nil)
	_ SettingsRepository = (*Database)(nil)
)
