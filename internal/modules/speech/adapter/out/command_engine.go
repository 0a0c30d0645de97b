package out

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"hindidrill/internal/modules/speech/domain"
	speechout "hindidrill/internal/modules/speech/port/out"
	apperrors "hindidrill/internal/platform/errors"
)

// CommandEngine runs external programs. The recognizer prints one transcript
// on stdout; the synthesizer speaks its {text} argument. {locale} and {lang}
// are substituted in both.
type CommandEngine struct {
	recognize []string
	speak     []string
}

func NewCommandEngine(recognize, speak []string) *CommandEngine {
	return &CommandEngine{recognize: recognize, speak: speak}
}

func (e *CommandEngine) Name() string { return "command" }

func (e *CommandEngine) Probe(context.Context) (domain.Capabilities, error) {
	caps := domain.Capabilities{
		Recognize: commandExists(e.recognize),
		Speak:     commandExists(e.speak),
	}
	var missing []string
	if !caps.Recognize {
		missing = append(missing, "recognizer")
	}
	if !caps.Speak {
		missing = append(missing, "synthesizer")
	}
	if len(missing) > 0 {
		caps.Detail = "missing " + strings.Join(missing, " and ")
	}
	return caps, nil
}

func (e *CommandEngine) Recognize(ctx context.Context, settings domain.Settings) (<-chan domain.CapabilityEvent, error) {
	if len(e.recognize) == 0 {
		return nil, fmt.Errorf("%w: no recognizer command configured", apperrors.ErrCapabilityUnsupported)
	}
	argv := expand(e.recognize, "", settings.Locale)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start recognizer: %w", err)
	}

	events := make(chan domain.CapabilityEvent, 2)
	go func() {
		defer close(events)
		if err := cmd.Wait(); err != nil {
			if ctx.Err() != nil {
				events <- domain.SpeechEnd()
				return
			}
			events <- domain.Failure(exitReason(err, stderr.String()))
			return
		}
		if transcript := firstLine(stdout.String()); transcript != "" {
			events <- domain.Result(transcript)
		}
		events <- domain.SpeechEnd()
	}()
	return events, nil
}

func (e *CommandEngine) Speak(ctx context.Context, text, locale string) error {
	if len(e.speak) == 0 {
		return fmt.Errorf("%w: no synthesizer command configured", apperrors.ErrCapabilityUnsupported)
	}
	argv := expand(e.speak, text, locale)
	out, err := exec.CommandContext(ctx, argv[0], argv[1:]...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("synthesizer: %s", exitReason(err, string(out)))
	}
	return nil
}

var _ speechout.Engine = (*CommandEngine)(nil)

func expand(argv []string, text, locale string) []string {
	lang := locale
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		lang = locale[:i]
	}
	replacer := strings.NewReplacer("{text}", text, "{locale}", locale, "{lang}", lang)
	out := make([]string, len(argv))
	for i, arg := range argv {
		out[i] = replacer.Replace(arg)
	}
	return out
}

func commandExists(argv []string) bool {
	if len(argv) == 0 {
		return false
	}
	_, err := exec.LookPath(argv[0])
	return err == nil
}

func exitReason(err error, stderr string) string {
	reason := err.Error()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		reason = fmt.Sprintf("exit status %d", exitErr.ExitCode())
	}
	if msg := firstLine(stderr); msg != "" {
		reason += ": " + msg
	}
	return reason
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}
