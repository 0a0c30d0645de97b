package usecase

import (
	"context"

	"hindidrill/internal/modules/speech/domain"
	"hindidrill/internal/modules/speech/dto"
	speechin "hindidrill/internal/modules/speech/port/in"
	"hindidrill/internal/modules/speech/service"
)

type Interactor struct {
	verifier *service.VerifierService
	player   *service.PlayerService
	doctor   *service.EngineDoctor
	engine   string
	locale   string
	caps     domain.Capabilities
}

func NewInteractor(verifier *service.VerifierService, player *service.PlayerService, doctor *service.EngineDoctor, engine string, settings domain.Settings, caps domain.Capabilities) speechin.Usecase {
	return &Interactor{verifier: verifier, player: player, doctor: doctor, engine: engine, locale: settings.Locale, caps: caps}
}

func (i *Interactor) Available() bool {
	return i.verifier.Available()
}

func (i *Interactor) Verify(ctx context.Context, input dto.VerifyInput) dto.VerdictOutput {
	verdict := i.verifier.Verify(ctx, input.Expected)
	return dto.VerdictOutput{
		Kind:       verdict.Kind.String(),
		Transcript: verdict.Transcript,
		Reason:     verdict.Reason,
		Err:        verdict.Err,
	}
}

func (i *Interactor) Play(ctx context.Context, input dto.PlayInput) error {
	_, err := i.player.Play(ctx, input.Profile, input.Text)
	return err
}

func (i *Interactor) Doctor(ctx context.Context) (dto.DoctorOutput, error) {
	out := dto.DoctorOutput{
		Engine:       i.engine,
		Locale:       i.locale,
		CanRecognize: i.caps.Recognize,
		CanSpeak:     i.caps.Speak,
		Detail:       i.caps.Detail,
	}
	if i.doctor == nil {
		return out, nil
	}
	checks, err := i.doctor.Check(ctx)
	if err != nil {
		return out, err
	}
	for _, c := range checks {
		out.Plugins = append(out.Plugins, dto.PluginCheckOutput{
			Name:            c.Name,
			Version:         c.Version,
			Enabled:         c.Enabled,
			BinaryReachable: c.BinaryReachable,
			ChecksumValid:   c.ChecksumValid,
			LifecycleOK:     c.LifecycleOK,
			Error:           c.Error,
		})
	}
	return out, nil
}

func (i *Interactor) Wait() {
	i.player.Wait()
}
