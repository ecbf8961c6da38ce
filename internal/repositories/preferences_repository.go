package repositories

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"opentranscribe/internal/appdata"
	"opentranscribe/internal/models"
)

// PreferencesFile is the file name inside the application data directory.
const PreferencesFile = "preferences.json"

type PreferencesRepository interface {
	Path() (string, error)
	Get() (*models.Preferences, error)
	Save(prefs *models.Preferences) error
}

type preferencesRepository struct {
	resolver appdata.PathResolver
}

func NewPreferencesRepository(resolver appdata.PathResolver) PreferencesRepository {
	return &preferencesRepository{resolver: resolver}
}

// Path returns <app data dir>/preferences.json. It touches nothing on disk.
func (r *preferencesRepository) Path() (string, error) {
	dir, ok := r.resolver.AppDataDir()
	if !ok || dir == "" {
		return "", ErrPathResolution
	}
	return filepath.Join(dir, PreferencesFile), nil
}

// Get reads the stored record. A missing file returns nil without error.
func (r *preferencesRepository) Get() (*models.Preferences, error) {
	path, err := r.Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, ioError(err)
	}

	prefs, err := decodePreferences(data)
	if err != nil {
		return nil, parseError(err)
	}
	return prefs, nil
}

// Save replaces the stored record. Missing directories are created first and
// the file is swapped in with a rename, so readers see either the old or the
// new content.
func (r *preferencesRepository) Save(prefs *models.Preferences) error {
	path, err := r.Path()
	if err != nil {
		return err
	}
	if prefs == nil {
		return serializationError(errors.New("preferences record is nil"))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ioError(err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return serializationError(err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return ioError(err)
	}
	return nil
}

// preferenceFields are the members a stored record must carry. Matching is
// exact: "ApiKey" is not "apiKey".
var preferenceFields = []string{"model", "prompt", "apiKey"}

func decodePreferences(data []byte) (*models.Preferences, error) {
	members, err := decodeObjectMembers(data)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(preferenceFields))
	for _, name := range preferenceFields {
		raw, ok := members[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, missingField(name)
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, fmt.Errorf("invalid field %q: %w", name, err)
		}
		values[name] = value
	}

	return &models.Preferences{
		Model:  values["model"],
		Prompt: values["prompt"],
		APIKey: values["apiKey"],
	}, nil
}

// decodeObjectMembers splits a single JSON object into its raw members. A
// top-level null decodes to no members. Repeating one of the record's fields
// is an error; other members are ignored.
func decodeObjectMembers(data []byte) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}

	members := make(map[string]json.RawMessage)
	switch tok {
	case nil:
	case json.Delim('{'):
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, err
			}
			if _, dup := members[key]; dup && slices.Contains(preferenceFields, key) {
				return nil, fmt.Errorf("duplicate field %q", key)
			}
			members[key] = raw
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("expected a JSON object, found %v", tok)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errors.New("trailing data after JSON object")
	}
	return members, nil
}

func missingField(name string) error {
	return fmt.Errorf("missing field %q", name)
}

// writeFileAtomic writes data to a temp file next to path and renames it over
// path. The file holds a credential, hence 0600.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+PreferencesFile+"-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpPath, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
