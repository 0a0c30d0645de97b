package service

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"hindidrill/internal/modules/drill/domain"
	drillout "hindidrill/internal/modules/drill/port/out"
	"hindidrill/internal/platform/clock"
	"hindidrill/internal/platform/id"
)

type ControllerDeps struct {
	Words            drillout.WordSource
	Verifier         drillout.Verifier
	Pronouncer       drillout.Pronouncer
	Profiles         drillout.ProfilePort
	Scheduler        clock.Scheduler
	IDs              id.Generator
	Logger           *log.Logger
	AutoAdvanceDelay time.Duration
}

// Controller owns the session state. Events are applied one at a time;
// fetches and verification rounds run on their own goroutines and come back
// as events.
type Controller struct {
	deps      ControllerDeps
	sessionID string
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc

	mu         sync.Mutex
	state      domain.State
	learner    domain.Learner
	timer      clock.Timer
	version    uint64
	subscriber func(domain.Snapshot)

	inflight sync.WaitGroup
}

func NewController(deps ControllerDeps) *Controller {
	if deps.Scheduler == nil {
		deps.Scheduler = clock.SystemScheduler{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.IDs == nil {
		deps.IDs = id.UUID{}
	}
	sessionID := deps.IDs.New()
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		deps:      deps,
		sessionID: sessionID,
		logger:    deps.Logger.With("session", sessionID),
		ctx:       ctx,
		cancel:    cancel,
		state:     domain.NewState(deps.Verifier.Available()),
	}
}

// SetLearner switches the profile whose play count and progress are updated.
func (c *Controller) SetLearner(learner domain.Learner) domain.Snapshot {
	c.mu.Lock()
	c.learner = learner
	snap := c.publishLocked()
	sub := c.subscriber
	c.mu.Unlock()
	if sub != nil {
		sub(snap)
	}
	return snap
}

func (c *Controller) Dispatch(ev domain.Event) domain.Snapshot {
	c.mu.Lock()
	next, effects := domain.Transition(c.state, ev)
	c.state = next
	for _, eff := range effects {
		c.runLocked(eff)
	}
	snap := c.publishLocked()
	sub := c.subscriber
	c.mu.Unlock()
	if sub != nil {
		sub(snap)
	}
	return snap
}

func (c *Controller) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.Snapshot{Version: c.version, SessionID: c.sessionID, State: c.state, Profile: c.learner.Name, PlayCount: c.learner.PlayCount}
}

// Subscribe registers fn to receive a snapshot after every change. Snapshots
// may arrive out of order; Version increases with every change.
func (c *Controller) Subscribe(fn func(domain.Snapshot)) {
	c.mu.Lock()
	c.subscriber = fn
	c.mu.Unlock()
}

// Wait blocks until no fetch or verification round is running.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

func (c *Controller) Close() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	c.cancel()
}

func (c *Controller) publishLocked() domain.Snapshot {
	c.version++
	return domain.Snapshot{Version: c.version, SessionID: c.sessionID, State: c.state, Profile: c.learner.Name, PlayCount: c.learner.PlayCount}
}

func (c *Controller) runLocked(eff domain.Effect) {
	logger := c.logger
	switch eff := eff.(type) {
	case domain.FetchWords:
		c.inflight.Add(1)
		go func() {
			defer c.inflight.Done()
			words, err := c.deps.Words.FetchWords(c.ctx, eff.LessonID)
			if err != nil {
				logger.Warn("words fetch failed", "lesson", eff.LessonID, "err", err)
				c.Dispatch(domain.WordsFailed{LessonID: eff.LessonID, Seq: eff.Seq, Err: err})
				return
			}
			logger.Info("words loaded", "lesson", eff.LessonID, "count", len(words))
			c.Dispatch(domain.WordsLoaded{LessonID: eff.LessonID, Seq: eff.Seq, Words: words})
		}()

	case domain.StartVerification:
		c.inflight.Add(1)
		go func() {
			defer c.inflight.Done()
			verdict := c.deps.Verifier.Verify(c.ctx, eff.Expected)
			logger.Debug("verification finished", "expected", eff.Expected, "kind", verdict.Kind, "transcript", verdict.Transcript)
			c.Dispatch(domain.VerificationFinished{Epoch: eff.Epoch, Verdict: verdict})
		}()

	case domain.ScheduleAutoAdvance:
		if c.timer != nil {
			c.timer.Stop()
		}
		token := eff.Token
		c.timer = c.deps.Scheduler.AfterFunc(c.deps.AutoAdvanceDelay, func() {
			c.Dispatch(domain.AutoAdvanceFired{Token: token})
		})

	case domain.CancelAutoAdvance:
		if c.timer != nil {
			c.timer.Stop()
			c.timer = nil
		}

	case domain.PlayPronunciation:
		if err := c.deps.Pronouncer.Play(c.ctx, c.learner.Name, eff.Text); err != nil {
			logger.Warn("pronunciation rejected", "text", eff.Text, "err", err)
			return
		}
		c.learner.PlayCount++

	case domain.RecordVerified:
		if c.learner.Name == "" {
			return
		}
		if err := c.deps.Profiles.RecordVerified(c.ctx, c.learner.Name, eff.LessonID, eff.Word); err != nil {
			logger.Warn("progress not saved", "lesson", eff.LessonID, "word", eff.Word, "err", err)
		}
	}
}
