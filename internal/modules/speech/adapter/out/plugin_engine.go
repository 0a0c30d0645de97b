package out

import (
	"context"
	"fmt"
	"strings"

	"hindidrill/internal/modules/speech/domain"
	speechout "hindidrill/internal/modules/speech/port/out"
	"hindidrill/internal/platform/checksum"
)

// PluginEngine drives a registered engine plugin through a PluginHost.
type PluginEngine struct {
	host     speechout.PluginHost
	manifest domain.EngineManifest
}

// NewPluginEngine resolves name in the manifest store and refuses disabled,
// invalid or tampered binaries.
func NewPluginEngine(ctx context.Context, store speechout.ManifestStore, host speechout.PluginHost, name string) (*PluginEngine, error) {
	manifests, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range manifests {
		if !strings.EqualFold(m.Name, name) {
			continue
		}
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if !m.Enabled {
			return nil, fmt.Errorf("%w: %s", domain.ErrEngineDisabled, m.Name)
		}
		if err := checksum.Verify(m.Binary, m.SHA256); err != nil {
			return nil, fmt.Errorf("engine %s: %w", m.Name, err)
		}
		return &PluginEngine{host: host, manifest: m}, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrEngineNotFound, name)
}

func (e *PluginEngine) Name() string {
	return "plugin:" + e.manifest.Name
}

func (e *PluginEngine) Probe(ctx context.Context) (domain.Capabilities, error) {
	meta, err := e.host.GetMetadata(ctx, e.manifest)
	if err != nil {
		return domain.Capabilities{}, err
	}
	reported := domain.EngineManifest{Capabilities: meta.Capabilities}
	return domain.Capabilities{
		Recognize: e.manifest.Has(domain.EngineRecognize) && reported.Has(domain.EngineRecognize),
		Speak:     e.manifest.Has(domain.EngineSpeak) && reported.Has(domain.EngineSpeak),
		Detail:    meta.Name + " " + meta.Version,
	}, nil
}

func (e *PluginEngine) Recognize(ctx context.Context, settings domain.Settings) (<-chan domain.CapabilityEvent, error) {
	events := make(chan domain.CapabilityEvent, 2)
	go func() {
		defer close(events)
		got, err := e.host.Recognize(ctx, e.manifest, settings)
		if err != nil {
			events <- domain.Failure(err.Error())
			return
		}
		for _, ev := range got {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}

func (e *PluginEngine) Speak(ctx context.Context, text, locale string) error {
	return e.host.Speak(ctx, e.manifest, text, locale)
}
