package out_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	speechout "hindidrill/internal/modules/speech/adapter/out"
	"hindidrill/internal/modules/speech/domain"
)

func TestGRPCHostIntegrationEspeakPlugin(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the espeak engine plugin")
	}
	t.Setenv("HINDIDRILL_ESPEAK_RECOGNIZER", "echo नमस्ते")
	t.Setenv("HINDIDRILL_ESPEAK_BINARY", "true")
	binPath, sum := buildEspeakPlugin(t)
	manifest := domain.EngineManifest{
		Name:         "espeak",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       sum,
		Enabled:      true,
		Capabilities: []domain.EngineCapability{domain.EngineRecognize, domain.EngineSpeak},
	}

	host := speechout.NewGRPCHost()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := host.CheckLifecycle(ctx, manifest); err != nil {
		t.Fatalf("check lifecycle: %v", err)
	}
	meta, err := host.GetMetadata(ctx, manifest)
	if err != nil {
		t.Fatalf("get metadata: %v", err)
	}
	if meta.Name != "espeak" || len(meta.Capabilities) != 2 {
		t.Fatalf("unexpected metadata %+v", meta)
	}
	events, err := host.Recognize(ctx, manifest, domain.NewSettings("hi-IN"))
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if v := domain.Fold("नमस्ते", events); v.Kind != domain.Matched {
		t.Fatalf("expected plugin transcript to match, got %+v", v)
	}
	if err := host.Speak(ctx, manifest, "नमस्ते", "hi-IN"); err != nil {
		t.Fatalf("speak: %v", err)
	}
}

func buildEspeakPlugin(t *testing.T) (string, string) {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "espeak-engine")
	cmd := exec.Command("go", "build", "-o", binPath, "./plugins/espeak")
	cmd.Dir = repositoryRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build espeak plugin: %v\n%s", err, string(out))
	}
	payload, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("read built plugin: %v", err)
	}
	hash := sha256.Sum256(payload)
	return binPath, hex.EncodeToString(hash[:])
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../../"))
}
