package mission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roverlabs/explored/internal/domain"
	"github.com/roverlabs/explored/internal/ports"
	"github.com/roverlabs/explored/pkg/log"
)

// recordTimeout bounds the best-effort mission record write, which runs on
// its own context because the mission context may already be cancelled.
const recordTimeout = 5 * time.Second

// Deps are the collaborators an orchestrator needs. Boundary, Frontier,
// Navigator, Localizer, and Transformer are required; Recorder, Logger, and
// Emitter are optional.
type Deps struct {
	Boundary    ports.BoundaryService
	Frontier    ports.FrontierService
	Navigator   ports.Navigator
	Localizer   ports.Localizer
	Transformer ports.PoseTransformer
	Recorder    ports.MissionRecorder
	Logger      log.Logger
	Emitter     EventEmitter
}

// Orchestrator executes one mission at a time. It owns the success, failure,
// and preemption decisions; the step components own the remote calls.
type Orchestrator struct {
	cfg         Config
	boundary    *BoundaryConfigurator
	nav         *NavigationController
	frontier    *FrontierRequester
	frontierSvc ports.FrontierService
	navSvc      ports.Navigator
	localizer   ports.Localizer
	transformer ports.PoseTransformer
	recorder    ports.MissionRecorder
	logger      log.Logger
	emitter     EventEmitter
}

// New creates an orchestrator from the configuration and collaborators.
func New(cfg Config, deps Deps) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("mission config: %w", err)
	}
	if deps.Boundary == nil || deps.Frontier == nil || deps.Navigator == nil ||
		deps.Localizer == nil || deps.Transformer == nil {
		return nil, fmt.Errorf("mission: boundary, frontier, navigator, localizer, and transformer are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.Noop()
	}

	retry := Retry{Attempts: cfg.BoundaryAttempts, Delay: cfg.RetryDelay}
	return &Orchestrator{
		cfg:         cfg,
		boundary:    NewBoundaryConfigurator(deps.Boundary, retry, cfg.ReadyTimeout, logger),
		nav:         NewNavigationController(deps.Navigator, logger),
		frontier:    NewFrontierRequester(deps.Frontier),
		frontierSvc: deps.Frontier,
		navSvc:      deps.Navigator,
		localizer:   deps.Localizer,
		transformer: deps.Transformer,
		recorder:    deps.Recorder,
		logger:      logger,
		emitter:     deps.Emitter,
	}, nil
}

// Execute runs the mission to a terminal outcome. It returns exactly one
// outcome; the error carries step detail for aborted and preempted missions
// and is nil on success. Cancelling ctx preempts the mission at the next
// step boundary and cancels any in-flight navigation goal.
func (o *Orchestrator) Execute(ctx context.Context, goal domain.Goal) (domain.Outcome, error) {
	started := time.Now()
	t := newTracker(o.logger, o.emitter)
	moves := 0

	finish := func(out domain.Outcome, reason string, err error) (domain.Outcome, error) {
		_ = t.to(PhaseDone, reason)
		o.record(goal, out, moves, reason, started)
		o.logger.Info("mission finished",
			log.String("mission", goal.ID.String()),
			log.Stringer("outcome", out),
			log.Int("moves", moves),
			log.String("reason", reason),
		)
		return out, err
	}

	if err := goal.Validate(); err != nil {
		return finish(domain.OutcomeAborted, "invalid goal", err)
	}
	o.logger.Info("mission started",
		log.String("mission", goal.ID.String()),
		log.String("frame", goal.Boundary.Frame),
		log.Int("boundary_points", len(goal.Boundary.Points)),
	)

	// Install the exploration boundary on the remote costmap.
	if err := t.to(PhaseConfiguringBoundary, "goal received"); err != nil {
		return finish(domain.OutcomeAborted, "state machine", err)
	}
	if err := o.boundary.Configure(ctx, goal.Boundary); err != nil {
		return finish(o.outcomeFor(ctx), "configure boundary", err)
	}

	// Move to the region center.
	if err := o.waitReady(ctx, o.navSvc.WaitReady); err != nil {
		return finish(o.outcomeFor(ctx), "navigation executor unavailable", err)
	}
	if err := t.to(PhaseMovingToCenter, "boundary configured"); err != nil {
		return finish(domain.OutcomeAborted, "state machine", err)
	}
	navRetry := Retry{Attempts: o.cfg.NavigateAttempts, Delay: o.cfg.RetryDelay}
	if err := navRetry.Do(ctx, func(ctx context.Context) error {
		return o.nav.MoveTo(ctx, goal.Center)
	}); err != nil {
		return finish(o.outcomeFor(ctx), "move to center", err)
	}
	o.logger.Info("moved to region center")

	if err := o.waitReady(ctx, o.frontierSvc.WaitReady); err != nil {
		return finish(o.outcomeFor(ctx), "frontier planner unavailable", err)
	}

	// Explore until the planner runs out of frontiers. Localization shares
	// the navigation retry budget.
	for {
		if err := ctx.Err(); err != nil {
			return finish(domain.OutcomePreempted, "preempted", err)
		}
		if err := t.to(PhaseCheckingBoundary, "next iteration"); err != nil {
			return finish(domain.OutcomeAborted, "state machine", err)
		}

		eval, current, err := o.currentPoseIn(ctx, goal.Boundary.Frame, navRetry)
		if err != nil {
			return finish(o.outcomeFor(ctx), "localization", err)
		}

		var target domain.Pose
		if !goal.Boundary.Contains(eval.Point) {
			// Recovery path: override any pending frontier with the center.
			o.logger.Warn("agent left exploration boundary, returning to center")
			target = goal.Center
			if err := t.to(PhaseMovingToFrontier, "outside boundary"); err != nil {
				return finish(domain.OutcomeAborted, "state machine", err)
			}
		} else {
			if err := t.to(PhaseRequestingFrontier, "inside boundary"); err != nil {
				return finish(domain.OutcomeAborted, "state machine", err)
			}
			next, err := o.requestFrontier(ctx, current)
			if err != nil {
				if ctx.Err() != nil {
					return finish(domain.OutcomePreempted, "preempted", err)
				}
				// Persistent frontier failure is the termination signal:
				// success if the mission ever moved, failure otherwise.
				if moves > 0 {
					return finish(domain.OutcomeSucceeded, "no frontiers remain", nil)
				}
				return finish(domain.OutcomeAborted, "no frontier before any progress", err)
			}
			target = next
			if err := t.to(PhaseMovingToFrontier, "frontier found"); err != nil {
				return finish(domain.OutcomeAborted, "state machine", err)
			}
		}

		if err := navRetry.Do(ctx, func(ctx context.Context) error {
			return o.nav.MoveTo(ctx, target)
		}); err != nil {
			return finish(o.outcomeFor(ctx), "exploration move", err)
		}
		moves++
	}
}

// requestFrontier consumes the frontier budget. Both negative results and
// transport failures burn attempts, matching the loop-level policy: repeated
// absence of frontiers is what terminates the mission.
func (o *Orchestrator) requestFrontier(ctx context.Context, current domain.Pose) (domain.Pose, error) {
	var next domain.Pose
	r := Retry{Attempts: o.cfg.FrontierAttempts, Delay: o.cfg.RetryDelay}
	err := r.Do(ctx, func(ctx context.Context) error {
		p, err := o.frontier.Next(ctx, current)
		if err != nil {
			if errors.Is(err, domain.ErrNoFrontier) {
				o.logger.Info("no frontier found")
			} else {
				o.logger.Warn("frontier request failed", log.Err(err))
			}
			return err
		}
		next = p
		return nil
	})
	if err != nil {
		return domain.Pose{}, err
	}
	o.logger.Info("frontier found",
		log.Float64("x", next.Point.X),
		log.Float64("y", next.Point.Y),
		log.String("frame", next.Frame),
	)
	return next, nil
}

// currentPoseIn fetches the agent pose and, when frames differ, transforms
// it into the boundary frame for the containment test. It returns both the
// transformed pose (eval) and the untransformed one (current), which the
// frontier planner expects in the agent's own frame.
func (o *Orchestrator) currentPoseIn(ctx context.Context, frame string, r Retry) (eval, current domain.Pose, err error) {
	err = r.Do(ctx, func(ctx context.Context) error {
		p, perr := o.localizer.CurrentPose(ctx)
		if perr != nil {
			return perr
		}
		current, eval = p, p
		if !p.InFrame(frame) {
			tp, terr := o.transformer.Transform(ctx, p, frame)
			if terr != nil {
				return terr
			}
			eval = tp
		}
		return nil
	})
	return eval, current, err
}

// waitReady bounds a collaborator availability wait with the configured
// timeout, keeping caller cancellation distinct from unavailability.
func (o *Orchestrator) waitReady(ctx context.Context, wait func(context.Context) error) error {
	waitCtx, cancel := context.WithTimeout(ctx, o.cfg.ReadyTimeout)
	defer cancel()
	if err := wait(waitCtx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// outcomeFor resolves a step failure into a terminal outcome: preemption
// always wins over abort.
func (o *Orchestrator) outcomeFor(ctx context.Context) domain.Outcome {
	if ctx.Err() != nil {
		return domain.OutcomePreempted
	}
	return domain.OutcomeAborted
}

func (o *Orchestrator) record(goal domain.Goal, out domain.Outcome, moves int, reason string, started time.Time) {
	if o.recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	rec := ports.MissionRecord{
		ID:         goal.ID,
		Outcome:    out,
		Moves:      moves,
		Reason:     reason,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	if err := o.recorder.Record(ctx, rec); err != nil {
		o.logger.Error("failed to record mission", log.Err(err))
	}
}
