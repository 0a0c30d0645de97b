package domain

import (
	"errors"
	"fmt"
	"regexp"
)

type EngineCapability string

const (
	EngineRecognize EngineCapability = "recognize"
	EngineSpeak     EngineCapability = "speak"
)

var (
	ErrEngineDisabled = errors.New("speech engine is disabled")
	ErrEngineNotFound = errors.New("speech engine not found")
	ErrEngineTimeout  = errors.New("speech engine timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// EngineManifest registers an engine plugin binary.
type EngineManifest struct {
	Name         string             `yaml:"name"`
	Version      string             `yaml:"version"`
	Binary       string             `yaml:"binary"`
	SHA256       string             `yaml:"sha256"`
	Enabled      bool               `yaml:"enabled"`
	Capabilities []EngineCapability `yaml:"capabilities"`
}

func (m EngineManifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("engine name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("engine %s: version is required", m.Name)
	}
	if m.Binary == "" {
		return fmt.Errorf("engine %s: binary path is required", m.Name)
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("engine %s: sha256 must be lowercase 64-char hex", m.Name)
	}
	if len(m.Capabilities) == 0 {
		return fmt.Errorf("engine %s: capabilities are required", m.Name)
	}
	seen := map[EngineCapability]struct{}{}
	for _, c := range m.Capabilities {
		if c != EngineRecognize && c != EngineSpeak {
			return fmt.Errorf("engine %s: unknown capability %s", m.Name, c)
		}
		if _, ok := seen[c]; ok {
			return fmt.Errorf("engine %s: duplicate capability %s", m.Name, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

func (m EngineManifest) Has(c EngineCapability) bool {
	for _, have := range m.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

type EngineMetadata struct {
	Name         string
	Version      string
	Capabilities []EngineCapability
}

// PluginCheck is the health of one registered engine plugin.
type PluginCheck struct {
	Name            string
	Version         string
	Enabled         bool
	BinaryReachable bool
	ChecksumValid   bool
	LifecycleOK     bool
	Error           string
}
