package out

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"hindidrill/internal/modules/speech/domain"
	speechout "hindidrill/internal/modules/speech/port/out"
)

type manifestFile struct {
	Engines []domain.EngineManifest `yaml:"engines"`
}

// FileManifestStore reads engine plugin manifests from
// <home>/engines/engines.yaml.
type FileManifestStore struct {
	dir string
}

func NewFileManifestStore(home string) speechout.ManifestStore {
	return &FileManifestStore{dir: filepath.Join(home, "engines")}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.EngineManifest, error) {
	f, err := os.Open(filepath.Join(s.dir, "engines.yaml"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open engine manifests: %w", err)
	}
	defer f.Close()

	var file manifestFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode engine manifests: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Engines))
	for i, m := range file.Engines {
		if _, dup := seen[m.Name]; dup {
			return nil, fmt.Errorf("decode engine manifests: duplicate engine %q", m.Name)
		}
		seen[m.Name] = struct{}{}
		// Binaries sit next to the manifest unless given absolutely.
		if m.Binary != "" && !filepath.IsAbs(m.Binary) {
			file.Engines[i].Binary = filepath.Join(s.dir, m.Binary)
		}
	}
	return file.Engines, nil
}
