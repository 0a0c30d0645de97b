package out

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	enginerpc "hindidrill/internal/modules/speech/adapter/out/rpc"
	"hindidrill/internal/modules/speech/domain"
	speechout "hindidrill/internal/modules/speech/port/out"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
	recognizeTimeout    = 20 * time.Second
)

// GRPCHost launches an engine plugin per call and talks to it over gRPC.
type GRPCHost struct{}

func NewGRPCHost() speechout.PluginHost {
	return &GRPCHost{}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.EngineManifest) error {
	_, err := h.GetMetadata(ctx, manifest)
	return err
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.EngineManifest) (domain.EngineMetadata, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.EngineMetadata{}, err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()
	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.EngineMetadata{}, fmt.Errorf("get metadata: %w", err)
	}
	capabilities := make([]domain.EngineCapability, 0, len(meta.Capabilities))
	for _, c := range meta.Capabilities {
		capabilities = append(capabilities, domain.EngineCapability(c))
	}
	return domain.EngineMetadata{Name: meta.Name, Version: meta.Version, Capabilities: capabilities}, nil
}

func (h *GRPCHost) Recognize(ctx context.Context, manifest domain.EngineManifest, settings domain.Settings) ([]domain.CapabilityEvent, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, recognizeTimeout)
	defer cancel()
	timeoutMS := int32(recognizeTimeout / time.Millisecond)
	if deadline, ok := callCtx.Deadline(); ok {
		timeoutMS = int32(time.Until(deadline) / time.Millisecond)
	}
	resp, err := client.Recognize(callCtx, &enginerpc.RecognizeRequest{
		Locale:          settings.Locale,
		MaxAlternatives: int32(settings.MaxAlternatives),
		TimeoutMS:       timeoutMS,
	})
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return []domain.CapabilityEvent{domain.SpeechEnd()}, nil
		}
		return nil, fmt.Errorf("recognize: %w", err)
	}
	switch {
	case resp.ErrorCode != "":
		return []domain.CapabilityEvent{domain.Failure(resp.ErrorCode)}, nil
	case resp.Transcript != "":
		return []domain.CapabilityEvent{domain.Result(resp.Transcript), domain.SpeechEnd()}, nil
	default:
		return []domain.CapabilityEvent{domain.SpeechEnd()}, nil
	}
}

func (h *GRPCHost) Speak(ctx context.Context, manifest domain.EngineManifest, text, locale string) error {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()
	if err := client.Speak(callCtx, &enginerpc.SpeakRequest{Text: text, Locale: locale}); err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s", domain.ErrEngineTimeout, manifest.Name)
		}
		return fmt.Errorf("speak: %w", err)
	}
	return nil
}

func (h *GRPCHost) connect(manifest domain.EngineManifest) (enginerpc.SpeechEngineClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  enginerpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          enginerpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start engine plugin: %w", err)
	}
	raw, err := rpcClient.Dispense(enginerpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense engine plugin: %w", err)
	}
	typed, ok := raw.(enginerpc.SpeechEngineClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("engine rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
