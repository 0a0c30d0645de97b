// Command espeak is a speech engine plugin. It speaks through espeak-ng and
// recognizes through a shell command that prints one transcript.
//
// HINDIDRILL_ESPEAK_BINARY overrides the synthesizer binary (default
// espeak-ng). HINDIDRILL_ESPEAK_RECOGNIZER is the recognizer command line;
// without it the plugin only speaks.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/hashicorp/go-plugin"

	enginerpc "hindidrill/internal/modules/speech/adapter/out/rpc"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *enginerpc.Empty) (*enginerpc.Metadata, error) {
	capabilities := []string{"speak"}
	if recognizer() != "" {
		capabilities = append([]string{"recognize"}, capabilities...)
	}
	return &enginerpc.Metadata{Name: "espeak", Version: "1.0.0", Capabilities: capabilities}, nil
}

func (s *server) Recognize(ctx context.Context, in *enginerpc.RecognizeRequest) (*enginerpc.RecognizeResponse, error) {
	line := recognizer()
	if line == "" {
		return &enginerpc.RecognizeResponse{ErrorCode: "service-not-allowed"}, nil
	}
	if in.TimeoutMS > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(in.TimeoutMS)*time.Millisecond)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", line)
	cmd.Env = append(os.Environ(), "HINDIDRILL_LOCALE="+in.Locale)
	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return &enginerpc.RecognizeResponse{}, nil
		}
		return &enginerpc.RecognizeResponse{ErrorCode: "audio-capture: " + err.Error()}, nil
	}
	transcript := strings.TrimSpace(string(out))
	if i := strings.IndexByte(transcript, '\n'); i >= 0 {
		transcript = strings.TrimSpace(transcript[:i])
	}
	return &enginerpc.RecognizeResponse{Transcript: transcript}, nil
}

func (s *server) Speak(ctx context.Context, in *enginerpc.SpeakRequest) (*enginerpc.Empty, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, fmt.Errorf("empty text")
	}
	voice := in.Locale
	if i := strings.IndexAny(voice, "-_"); i > 0 {
		voice = voice[:i]
	}
	binary := os.Getenv("HINDIDRILL_ESPEAK_BINARY")
	if binary == "" {
		binary = "espeak-ng"
	}
	if out, err := exec.CommandContext(ctx, binary, "-v", voice, in.Text).CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%s: %v: %s", binary, err, strings.TrimSpace(string(out)))
	}
	return &enginerpc.Empty{}, nil
}

func recognizer() string {
	return strings.TrimSpace(os.Getenv("HINDIDRILL_ESPEAK_RECOGNIZER"))
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: enginerpc.HandshakeConfig,
		Plugins:         enginerpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
