package out

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"

	"hindidrill/internal/modules/speech/domain"
	speechout "hindidrill/internal/modules/speech/port/out"
)

const gcpSampleRate = 16000

// GCPEngine records one utterance with an external recorder and sends it to
// Google Cloud Speech. Synthesis is delegated.
type GCPEngine struct {
	client  *speech.Client
	record  []string
	speaker speechout.Engine
}

// NewGCPEngine creates the Speech client. credentials may be a file path,
// inline JSON, or empty for application default credentials. The recorder
// must write raw 16 kHz mono signed 16-bit audio to stdout.
func NewGCPEngine(ctx context.Context, credentials string, record []string, speaker speechout.Engine) (*GCPEngine, error) {
	var opts []option.ClientOption
	creds := strings.TrimSpace(credentials)
	switch {
	case creds == "":
	case strings.HasPrefix(creds, "{"):
		opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
	default:
		opts = append(opts, option.WithCredentialsFile(creds))
	}
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("speech client: %w", err)
	}
	return &GCPEngine{client: client, record: record, speaker: speaker}, nil
}

func (e *GCPEngine) Name() string { return "gcp" }

func (e *GCPEngine) Close() error {
	return e.client.Close()
}

func (e *GCPEngine) Probe(ctx context.Context) (domain.Capabilities, error) {
	caps := domain.Capabilities{Recognize: commandExists(e.record)}
	if !caps.Recognize {
		caps.Detail = "missing recorder"
	}
	if e.speaker != nil {
		speakCaps, err := e.speaker.Probe(ctx)
		if err == nil {
			caps.Speak = speakCaps.Speak
		}
	}
	return caps, nil
}

func (e *GCPEngine) Recognize(ctx context.Context, settings domain.Settings) (<-chan domain.CapabilityEvent, error) {
	if len(e.record) == 0 {
		return nil, fmt.Errorf("no recorder command configured")
	}
	argv := expand(e.record, "", settings.Locale)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var audio, stderr bytes.Buffer
	cmd.Stdout = &audio
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start recorder: %w", err)
	}

	events := make(chan domain.CapabilityEvent, 2)
	go func() {
		defer close(events)
		if err := cmd.Wait(); err != nil {
			if ctx.Err() != nil {
				events <- domain.SpeechEnd()
				return
			}
			events <- domain.Failure("audio-capture: " + exitReason(err, stderr.String()))
			return
		}
		if audio.Len() == 0 {
			events <- domain.SpeechEnd()
			return
		}
		resp, err := e.client.Recognize(ctx, &speechpb.RecognizeRequest{
			Config: &speechpb.RecognitionConfig{
				Encoding:        speechpb.RecognitionConfig_LINEAR16,
				SampleRateHertz: gcpSampleRate,
				LanguageCode:    settings.Locale,
				MaxAlternatives: int32(settings.MaxAlternatives),
			},
			Audio: &speechpb.RecognitionAudio{AudioSource: &speechpb.RecognitionAudio_Content{Content: audio.Bytes()}},
		})
		if err != nil {
			if ctx.Err() != nil {
				events <- domain.SpeechEnd()
				return
			}
			events <- domain.Failure("network: " + err.Error())
			return
		}
		if transcript := firstTranscript(resp); transcript != "" {
			events <- domain.Result(transcript)
		}
		events <- domain.SpeechEnd()
	}()
	return events, nil
}

func (e *GCPEngine) Speak(ctx context.Context, text, locale string) error {
	if e.speaker == nil {
		return fmt.Errorf("no synthesizer configured for gcp engine")
	}
	return e.speaker.Speak(ctx, text, locale)
}

func firstTranscript(resp *speechpb.RecognizeResponse) string {
	for _, result := range resp.GetResults() {
		for _, alt := range result.GetAlternatives() {
			if t := strings.TrimSpace(alt.GetTranscript()); t != "" {
				return t
			}
		}
	}
	return ""
}
