package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	catalogin "hindidrill/internal/modules/catalog/adapter/in"
	catalogout "hindidrill/internal/modules/catalog/adapter/out"
	catalogservice "hindidrill/internal/modules/catalog/service"
	catalogusecase "hindidrill/internal/modules/catalog/usecase"
	drillin "hindidrill/internal/modules/drill/adapter/in"
	drillout "hindidrill/internal/modules/drill/adapter/out"
	drilldto "hindidrill/internal/modules/drill/dto"
	drillservice "hindidrill/internal/modules/drill/service"
	drillusecase "hindidrill/internal/modules/drill/usecase"
	profilein "hindidrill/internal/modules/profile/adapter/in"
	profileout "hindidrill/internal/modules/profile/adapter/out"
	profileservice "hindidrill/internal/modules/profile/service"
	profileusecase "hindidrill/internal/modules/profile/usecase"
	speechin "hindidrill/internal/modules/speech/adapter/in"
	speechout "hindidrill/internal/modules/speech/adapter/out"
	speechdomain "hindidrill/internal/modules/speech/domain"
	speechport "hindidrill/internal/modules/speech/port/out"
	speechservice "hindidrill/internal/modules/speech/service"
	speechusecase "hindidrill/internal/modules/speech/usecase"
	"hindidrill/internal/platform/clock"
	"hindidrill/internal/platform/config"
	"hindidrill/internal/platform/id"
	uiapp "hindidrill/internal/ui/app"
)

type App struct {
	CatalogCLI catalogin.CLIHandler
	ProfileCLI profilein.CLIHandler
	SpeechCLI  speechin.CLIHandler
	DrillCLI   drillin.CLIHandler
	DrillTUI   drillin.TUIHandler

	closers []io.Closer
}

func New(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, error) {
	app := &App{}
	httpClient := &http.Client{Timeout: cfg.API.Timeout}

	profileStore, err := profileout.NewSQLiteProfileStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new profile store: %w", err)
	}
	app.closers = append(app.closers, profileStore)
	profileUC := profileusecase.NewInteractor(profileservice.NewProfileService(clock.SystemClock{}, profileStore))

	settings := speechdomain.NewSettings(cfg.Speech.Locale)
	if err := settings.Validate(); err != nil {
		_ = app.Close()
		return nil, err
	}
	engine := app.newEngine(ctx, cfg, logger)
	caps := speechservice.Detect(ctx, engine, logger)
	manifests := speechout.NewFileManifestStore(cfg.Home)
	host := speechout.NewGRPCHost()
	speechUC := speechusecase.NewInteractor(
		speechservice.NewVerifierService(engine, settings, caps, cfg.Speech.RoundTimeout, logger),
		speechservice.NewPlayerService(engine, speechout.NewProfilePlayCounter(profileUC), settings.Locale, caps.Speak, logger),
		speechservice.NewEngineDoctor(manifests, host),
		engine.Name(),
		settings,
		caps,
	)

	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(
		catalogout.NewHTTPLessonSource(httpClient, cfg.API.BaseURL, cfg.API.LessonsPath),
		logger,
	))

	words := drillout.NewHTTPWordSource(httpClient, cfg.API.BaseURL, cfg.API.WordsPath)
	ctrl := drillservice.NewController(drillservice.ControllerDeps{
		Words:            words,
		Verifier:         drillout.NewSpeechVerifierAdapter(speechUC),
		Pronouncer:       drillout.NewPronouncerAdapter(speechUC),
		Profiles:         drillout.NewProfileProgressAdapter(profileUC),
		Scheduler:        clock.SystemScheduler{},
		IDs:              id.UUID{},
		Logger:           logger,
		AutoAdvanceDelay: cfg.AutoAdvanceDelay,
	})
	drillUC := drillusecase.NewInteractor(ctrl, words, drillout.NewCatalogAdapter(catalogUC), drillout.NewProfileProgressAdapter(profileUC))

	app.CatalogCLI = catalogin.NewCLIHandler(catalogUC)
	app.ProfileCLI = profilein.NewCLIHandler(profileUC)
	app.SpeechCLI = speechin.NewCLIHandler(speechUC)
	app.DrillCLI = drillin.NewCLIHandler(drillUC)
	app.DrillTUI = drillin.NewTUIHandler(drillUC)
	app.closers = append(app.closers, closerFunc(func() error {
		app.DrillTUI.Close()
		speechUC.Wait()
		return nil
	}))
	return app, nil
}

// newEngine builds the configured speech engine. A broken engine degrades
// to the no-op engine so the drill still runs as free browsing.
func (a *App) newEngine(ctx context.Context, cfg config.Config, logger *log.Logger) speechport.Engine {
	var (
		engine speechport.Engine
		err    error
	)
	switch cfg.Speech.Engine {
	case config.EngineNone:
		return speechout.NewNoopEngine()
	case config.EngineCommand:
		return speechout.NewCommandEngine(cfg.Speech.RecognizeCommand, cfg.Speech.SpeakCommand)
	case config.EngineGCP:
		var gcp *speechout.GCPEngine
		gcp, err = speechout.NewGCPEngine(ctx, cfg.Speech.GCPCredentials, cfg.Speech.RecordCommand,
			speechout.NewCommandEngine(nil, cfg.Speech.SpeakCommand))
		if err == nil {
			a.closers = append(a.closers, gcp)
			engine = gcp
		}
	case config.EnginePlugin:
		engine, err = speechout.NewPluginEngine(ctx, speechout.NewFileManifestStore(cfg.Home), speechout.NewGRPCHost(), cfg.Speech.Plugin)
	default:
		err = fmt.Errorf("unknown speech engine: %s", cfg.Speech.Engine)
	}
	if err != nil {
		logger.Warn("speech engine unavailable, continuing without speech", "engine", cfg.Speech.Engine, "err", err)
		return speechout.NewNoopEngine()
	}
	return engine
}

// Close stops the drill, waits for playback and releases stores, in reverse
// order of construction.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// RunTUI runs the drill until the user quits. Controller changes reach the
// program through Program.Send.
func RunTUI(app *App) error {
	model := uiapp.NewModel(app.CatalogCLI, app.DrillTUI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	app.DrillTUI.Watch(func(session drilldto.SessionOutput) {
		program.Send(uiapp.SessionMsg{Session: session})
	})
	defer app.DrillTUI.Watch(nil)
	_, err := program.Run()
	return err
}
