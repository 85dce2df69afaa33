package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jadiha/little-prince/internal/models"
)

// ExportOptions controls how the state document is serialised.
type ExportOptions struct {
	EncryptOutput bool
	Passphrase    string
}

// ImportOptions controls how an export is applied.
type ImportOptions struct {
	Passphrase string
	// Replace clears existing data first; otherwise the database must be empty.
	Replace bool
}

// Export serialises the persisted state as an envelope keyed by the storage
// namespace, encrypting it when requested.
func (d *Database) Export(ctx context.Context, opts ExportOptions) ([]byte, error) {
	doc, err := d.LoadState(ctx)
	if err != nil {
		return nil, err
	}
	env := models.Envelope{
		Key:     models.StorageKey,
		Version: models.DocumentVersion,
		State:   doc,
	}
	jsonData, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	if opts.EncryptOutput {
		if opts.Passphrase == "" {
			return nil, fmt.Errorf("export: encryption requested without a passphrase")
		}
		return encryptData(jsonData, opts.Passphrase)
	}
	return jsonData, nil
}

// ParseExport decodes an export produced by Export. It also accepts a raw
// browser storage dump ({"state": ..., "version": N}) and a bare document.
func ParseExport(payload []byte, passphrase string) (models.Envelope, error) {
	if isEncrypted(payload) {
		if passphrase == "" {
			return models.Envelope{}, ErrEncryptedExport
		}
		plain, err := decryptData(payload, passphrase)
		if err != nil {
			return models.Envelope{}, err
		}
		payload = plain
	}

	var probe struct {
		State json.RawMessage `json:"state"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return models.Envelope{}, fmt.Errorf("parse export: %w", err)
	}

	var env models.Envelope
	if len(bytes.TrimSpace(probe.State)) == 0 {
		if err := json.Unmarshal(payload, &env.State); err != nil {
			return models.Envelope{}, fmt.Errorf("parse export: %w", err)
		}
		env.Key = models.StorageKey
		env.Version = models.DocumentVersion
		return env, nil
	}
	if err := json.Unmarshal(payload, &env); err != nil {
		return models.Envelope{}, fmt.Errorf("parse export: %w", err)
	}
	if env.Key != "" && env.Key != models.StorageKey {
		return models.Envelope{}, fmt.Errorf("parse export: unexpected key %q", env.Key)
	}
	if env.Version > models.DocumentVersion {
		return models.Envelope{}, fmt.Errorf("parse export: version %d is newer than supported %d", env.Version, models.DocumentVersion)
	}
	return env, nil
}

// Import parses payload and replaces the persisted state with it.
func (d *Database) Import(ctx context.Context, payload []byte, opts ImportOptions) error {
	env, err := ParseExport(payload, opts.Passphrase)
	if err != nil {
		return err
	}
	return d.ReplaceState(ctx, normalize(env.State), opts.Replace)
}

// normalize fills slices that older dumps may omit. Browser dumps may hold
// several reflections for one week; the first one per week is kept.
func normalize(doc models.Document) models.Document {
	if doc.Goals == nil {
		doc.Goals = []models.Goal{}
	}
	for i := range doc.Goals {
		if doc.Goals[i].Logs == nil {
			doc.Goals[i].Logs = []models.DayLog{}
		}
	}
	if doc.Stars == nil {
		doc.Stars = []models.Star{}
	}
	weeks := make(map[string]bool, len(doc.WeeklyReflections))
	reflections := make([]models.WeeklyReflection, 0, len(doc.WeeklyReflections))
	for _, r := range doc.WeeklyReflections {
		if weeks[r.WeekOf] {
			continue
		}
		weeks[r.WeekOf] = true
		reflections = append(reflections, r)
	}
	doc.WeeklyReflections = reflections
	return doc
}
