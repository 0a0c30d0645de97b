package out

import (
	"context"

	"hindidrill/internal/modules/speech/domain"
)

// Engine is a speech-to-text and text-to-speech provider.
type Engine interface {
	Name() string
	Probe(ctx context.Context) (domain.Capabilities, error)
	// Recognize starts one round. The channel is closed when the round ends.
	Recognize(ctx context.Context, settings domain.Settings) (<-chan domain.CapabilityEvent, error)
	Speak(ctx context.Context, text, locale string) error
}

type PlayCounter interface {
	IncrementPlays(ctx context.Context, profile string) (int, error)
}

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.EngineManifest, error)
}

// PluginHost talks to engine plugin binaries.
type PluginHost interface {
	CheckLifecycle(ctx context.Context, manifest domain.EngineManifest) error
	GetMetadata(ctx context.Context, manifest domain.EngineManifest) (domain.EngineMetadata, error)
	Recognize(ctx context.Context, manifest domain.EngineManifest, settings domain.Settings) ([]domain.CapabilityEvent, error)
	Speak(ctx context.Context, manifest domain.EngineManifest, text, locale string) error
}
