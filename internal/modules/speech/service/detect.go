package service

import (
	"context"

	"github.com/charmbracelet/log"

	"hindidrill/internal/modules/speech/domain"
	speechout "hindidrill/internal/modules/speech/port/out"
)

// Detect probes engine once. A failing probe means no capability at all.
func Detect(ctx context.Context, engine speechout.Engine, logger *log.Logger) domain.Capabilities {
	caps, err := engine.Probe(ctx)
	if err != nil {
		logger.Warn("speech engine unavailable", "engine", engine.Name(), "err", err)
		return domain.Capabilities{Detail: err.Error()}
	}
	logger.Info("speech engine ready", "engine", engine.Name(), "recognize", caps.Recognize, "speak", caps.Speak)
	return caps
}
