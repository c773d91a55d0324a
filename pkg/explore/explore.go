package explore

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/roverlabs/explored/internal/adapters/httpsvc"
	navadapter "github.com/roverlabs/explored/internal/adapters/nav"
	"github.com/roverlabs/explored/internal/adapters/store"
	"github.com/roverlabs/explored/internal/domain"
	"github.com/roverlabs/explored/internal/mission"
	"github.com/roverlabs/explored/internal/ports"
	"github.com/roverlabs/explored/pkg/log"
)

// shutdownTimeout bounds plugin shutdown during Close.
const shutdownTimeout = 10 * time.Second

// Explorer runs exploration missions against a set of remote collaborators.
// One mission is active at a time; this is an explicit guard, not an
// accident of structure.
type Explorer struct {
	logger  log.Logger
	handler EventHandler
	plugins []Plugin

	boundary    ports.BoundaryService
	frontier    ports.FrontierService
	navigator   ports.Navigator
	transformer ports.PoseTransformer
	localizer   ports.Localizer
	recorder    ports.MissionRecorder
	store       *store.Store

	// sem enforces the single-active-mission rule.
	sem *semaphore.Weighted

	mu      sync.Mutex
	cfg     Config
	current *Mission
	cancel  context.CancelFunc
	started bool
	closed  bool
}

// New creates an Explorer. HTTP collaborator clients are built from the
// config URLs unless replaced through options.
func New(cfg Config, opts ...Option) (*Explorer, error) {
	cfg.SetDefaults()

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.validate(o); err != nil {
		return nil, err
	}

	logger := o.logger
	if logger == nil {
		logger = log.Noop()
	}
	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	e := &Explorer{
		logger:      logger,
		handler:     o.handler,
		plugins:     o.plugins,
		boundary:    o.boundary,
		frontier:    o.frontier,
		navigator:   o.navigator,
		transformer: o.transformer,
		localizer:   o.localizer,
		recorder:    o.recorder,
		sem:         semaphore.NewWeighted(1),
		cfg:         cfg,
	}

	if e.boundary == nil {
		e.boundary = httpsvc.NewBoundaryClient(cfg.BoundaryURL, httpClient, logger)
	}
	if e.frontier == nil {
		e.frontier = httpsvc.NewFrontierClient(cfg.FrontierURL, httpClient, logger)
	}
	if e.navigator == nil {
		e.navigator = navadapter.NewClient(cfg.NavigationURL, httpClient, cfg.NavPollInterval, logger)
	}
	if e.transformer == nil {
		e.transformer = httpsvc.NewTransformClient(cfg.TransformURL, httpClient, logger)
	}
	if e.localizer == nil {
		e.localizer = httpsvc.NewLocalizerClient(cfg.LocalizerURL, httpClient, logger)
	}
	if e.recorder == nil && cfg.StorePath != "" {
		st, err := store.Open(cfg.StorePath)
		if err != nil {
			return nil, fmt.Errorf("open mission log: %w", err)
		}
		e.store = st
		e.recorder = st
	}

	return e, nil
}

// Start initializes plugins. It must be called once before Submit when
// plugins are registered; without plugins it is a no-op but still good form.
func (e *Explorer) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return fmt.Errorf("explorer is closed")
	}
	if e.started {
		return fmt.Errorf("explorer already started")
	}

	runCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	env := PluginEnv{ConfigPath: e.cfg.ConfigPath, Logger: e.logger, Explorer: e}
	for _, p := range e.plugins {
		if err := p.Initialize(runCtx, env); err != nil {
			cancel()
			return fmt.Errorf("initialize plugin %s: %w", p.Name(), err)
		}
		e.logger.Info("plugin initialized", log.String("plugin", p.Name()))
	}
	e.started = true
	return nil
}

// Submit starts a mission for goal. It returns ErrMissionActive while
// another mission is running and ErrInvalidGoal for degenerate goals. The
// mission runs on its own goroutine; track it through the returned Mission.
// Cancelling ctx preempts the mission.
func (e *Explorer) Submit(ctx context.Context, goal Goal) (*Mission, error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, fmt.Errorf("explorer is closed")
	}
	cfg := e.cfg
	e.mu.Unlock()

	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if !e.sem.TryAcquire(1) {
		return nil, domain.ErrMissionActive
	}

	var emitter mission.EventEmitter
	if e.handler != nil {
		emitter = emitterAdapter{handler: e.handler}
	}
	orch, err := mission.New(cfg.missionConfig(), mission.Deps{
		Boundary:    e.boundary,
		Frontier:    e.frontier,
		Navigator:   e.navigator,
		Localizer:   e.localizer,
		Transformer: e.transformer,
		Recorder:    e.recorder,
		Logger:      e.logger,
		Emitter:     emitter,
	})
	if err != nil {
		e.sem.Release(1)
		return nil, err
	}

	missionCtx, cancel := context.WithCancel(ctx)
	m := &Mission{id: goal.ID, cancel: cancel, done: make(chan struct{})}

	e.mu.Lock()
	e.current = m
	e.mu.Unlock()

	go func() {
		defer e.sem.Release(1)
		defer cancel()

		outcome, err := orch.Execute(missionCtx, goal)
		m.finish(outcome, err)
		if e.handler != nil {
			e.handler.OnMissionFinished(goal.ID, outcome)
		}
	}()

	return m, nil
}

// Current returns the most recently submitted mission, or nil.
func (e *Explorer) Current() *Mission {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// MissionLog returns up to n terminal mission records from the SQLite log,
// most recent first. It returns nil when no store is configured.
func (e *Explorer) MissionLog(ctx context.Context, n int) ([]MissionRecord, error) {
	if e.store == nil {
		return nil, nil
	}
	return e.store.LastRecords(ctx, n)
}

// ApplyRetrySettings changes the retry knobs for missions submitted after
// the call. Zero-valued fields keep their current setting. Used by the
// configwatcher plugin for live reconfiguration.
func (e *Explorer) ApplyRetrySettings(s RetrySettings) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s.BoundaryAttempts > 0 {
		e.cfg.BoundaryAttempts = s.BoundaryAttempts
	}
	if s.NavigateAttempts > 0 {
		e.cfg.NavigateAttempts = s.NavigateAttempts
	}
	if s.FrontierAttempts > 0 {
		e.cfg.FrontierAttempts = s.FrontierAttempts
	}
	if s.RetryDelay > 0 {
		e.cfg.RetryDelay = s.RetryDelay
	}
	e.logger.Info("retry settings applied",
		log.Int("boundary_attempts", e.cfg.BoundaryAttempts),
		log.Int("navigate_attempts", e.cfg.NavigateAttempts),
		log.Int("frontier_attempts", e.cfg.FrontierAttempts),
		log.Duration("retry_delay", e.cfg.RetryDelay),
	)
}

// Close preempts any running mission, shuts plugins down in reverse order,
// and closes the mission log.
func (e *Explorer) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	current := e.current
	cancel := e.cancel
	e.mu.Unlock()

	if current != nil {
		current.Cancel()
		<-current.Done()
	}
	if cancel != nil {
		cancel()
	}

	ctx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	for i := len(e.plugins) - 1; i >= 0; i-- {
		if err := e.plugins[i].Shutdown(ctx); err != nil {
			e.logger.Error("plugin shutdown failed",
				log.String("plugin", e.plugins[i].Name()), log.Err(err))
		}
	}

	if e.store != nil {
		return e.store.Close()
	}
	return nil
}

// Mission tracks one submitted mission to its terminal outcome.
type Mission struct {
	id     uuid.UUID
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.Mutex
	outcome domain.Outcome
	err     error
}

// ID returns the mission identifier.
func (m *Mission) ID() uuid.UUID { return m.id }

// Cancel preempts the mission. Safe to call more than once and after the
// mission has finished.
func (m *Mission) Cancel() { m.cancel() }

// Done returns a channel closed when the mission reaches a terminal outcome.
func (m *Mission) Done() <-chan struct{} { return m.done }

// Outcome returns the terminal outcome and step error. Before the mission
// finishes it returns OutcomeUnknown.
func (m *Mission) Outcome() (Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcome, m.err
}

// Wait blocks until the mission finishes or ctx is cancelled. Cancelling
// ctx does not preempt the mission; use Cancel for that.
func (m *Mission) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-m.done:
		return m.Outcome()
	case <-ctx.Done():
		return OutcomeUnknown, ctx.Err()
	}
}

func (m *Mission) finish(outcome domain.Outcome, err error) {
	m.mu.Lock()
	m.outcome = outcome
	m.err = err
	m.mu.Unlock()
	close(m.done)
}
