package service

import (
	"context"
	"os"

	"hindidrill/internal/modules/speech/domain"
	speechout "hindidrill/internal/modules/speech/port/out"
	"hindidrill/internal/platform/checksum"
)

type EngineDoctor struct {
	store speechout.ManifestStore
	host  speechout.PluginHost
}

func NewEngineDoctor(store speechout.ManifestStore, host speechout.PluginHost) *EngineDoctor {
	return &EngineDoctor{store: store, host: host}
}

// Check reports binary, checksum and handshake health for every registered
// engine plugin.
func (d *EngineDoctor) Check(ctx context.Context) ([]domain.PluginCheck, error) {
	if d.store == nil {
		return nil, nil
	}
	manifests, err := d.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]domain.PluginCheck, 0, len(manifests))
	for _, m := range manifests {
		result := domain.PluginCheck{Name: m.Name, Version: m.Version, Enabled: m.Enabled}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		_, statErr := os.Stat(m.Binary)
		result.BinaryReachable = statErr == nil
		if !result.BinaryReachable {
			result.Error = "binary does not exist: " + m.Binary
			results = append(results, result)
			continue
		}
		if err := checksum.Verify(m.Binary, m.SHA256); err != nil {
			result.Error = "checksum mismatch"
			results = append(results, result)
			continue
		}
		result.ChecksumValid = true
		if m.Enabled && d.host != nil {
			if err := d.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		results = append(results, result)
	}
	return results, nil
}
