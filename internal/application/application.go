package application

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/eugenenazirov/gift-sleigh/internal/bag"
	"github.com/eugenenazirov/gift-sleigh/internal/config"
	"github.com/eugenenazirov/gift-sleigh/internal/distributor"
	"github.com/eugenenazirov/gift-sleigh/internal/gift"
	"github.com/eugenenazirov/gift-sleigh/internal/report"
	"github.com/eugenenazirov/gift-sleigh/internal/scenario"
)

// App encapsulates the dependencies of a distribution run.
type App struct {
	cfg         config.Config
	scenario    scenario.Scenario
	bag         *bag.Bag
	distributor *distributor.Distributor
	printer     *report.Printer
	pacer       pacer
	logger      *zap.Logger
}

// Summary aggregates the results of a run.
type Summary struct {
	RunID           string
	Loaded          int
	LoadRejected    int
	Awarded         int
	NoGift          int
	Rejected        int
	Remaining       int
	RemainingWeight float64
	// Awards lists who received which gift, in hand-out order.
	Awards []distributor.Award
}

// Option configures App behaviour.
type Option func(*App)

// WithScenario replaces the scenario resolved from configuration.
func WithScenario(s scenario.Scenario) Option {
	return func(a *App) {
		a.scenario = s
	}
}

// New initializes the application with all dependencies from the provided configuration.
// Run output is written to out.
func New(cfg config.Config, logger *zap.Logger, out io.Writer, opts ...Option) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sc, err := resolveScenario(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario: %w", err)
	}

	b, err := bag.New(cfg.Capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create bag: %w", err)
	}

	policy, err := distributor.PolicyByName(cfg.Policy)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve policy: %w", err)
	}

	dist, err := distributor.New(cfg.SantaName, b, distributor.WithPolicy(policy), distributor.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create distributor: %w", err)
	}

	var p pacer = unpaced{}
	if limiter := newVisitPacer(cfg.VisitsPerSecond, cfg.VisitBurst); limiter != nil {
		p = limiter
	}

	app := &App{
		cfg:         cfg,
		scenario:    sc,
		bag:         b,
		distributor: dist,
		printer:     report.NewPrinter(out, cfg.SantaName),
		pacer:       p,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(app)
	}
	if err := app.scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return app, nil
}

// Run packs the bag and visits every recipient once, in scenario order.
// Rejected gifts and undeserving recipients are reported, never fatal; only a
// cancelled context or a failing output writer stops the run early.
func (a *App) Run(ctx context.Context) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}
	logger := a.logger.With(zap.String("run_id", summary.RunID), zap.String("santa", a.cfg.SantaName))
	logger.Info("run started",
		zap.Float64("capacity", a.bag.Capacity()),
		zap.String("policy", a.cfg.Policy),
		zap.Int("gifts", len(a.scenario.Gifts)),
		zap.Int("recipients", len(a.scenario.Recipients)),
	)

	a.printer.Header(a.bag.Capacity())
	for _, g := range a.scenario.BuildGifts() {
		if err := a.bag.AddItem(g); err != nil {
			summary.LoadRejected++
			logger.Warn("gift rejected", zap.String("gift", g.Name), zap.Error(err))
			a.printer.LoadRejected(g, err)
			continue
		}
		summary.Loaded++
		a.printer.Loaded(g)
	}

	visits, warnings := a.scenario.BuildVisits()
	for _, w := range multierr.Errors(warnings) {
		logger.Warn("recipient behaviour not recognised", zap.Error(w))
	}

	var runErr error
	for _, v := range visits {
		if err := a.pacer.Wait(ctx); err != nil {
			runErr = fmt.Errorf("run interrupted: %w", err)
			break
		}

		outcome := a.visit(v)
		switch outcome.Status {
		case distributor.StatusAwarded:
			summary.Awarded++
		case distributor.StatusNoGift:
			summary.NoGift++
		default:
			summary.Rejected++
		}
		a.printer.Outcome(outcome)
	}

	a.printer.BagState(a.bag)
	summary.Remaining = a.bag.Len()
	summary.RemainingWeight = a.bag.TotalWeight()
	summary.Awards = a.distributor.Awards()

	if err := a.printer.Err(); err != nil {
		runErr = multierr.Append(runErr, err)
	}

	logger.Info("run finished",
		zap.Int("loaded", summary.Loaded),
		zap.Int("load_rejected", summary.LoadRejected),
		zap.Int("awarded", summary.Awarded),
		zap.Int("no_gift", summary.NoGift),
		zap.Int("rejected", summary.Rejected),
		zap.Int("remaining", summary.Remaining),
		zap.Float64("remaining_weight", summary.RemainingWeight),
		zap.Error(runErr),
	)
	return summary, runErr
}

// visit hands out the wished-for gift when the recipient named one, and lets
// the selection policy choose otherwise.
func (a *App) visit(v scenario.Visit) distributor.Outcome {
	if v.Wish == "" {
		return a.distributor.Distribute(v.Recipient)
	}
	wished, ok := a.bag.FindByName(v.Wish)
	if !ok {
		wished = gift.Gift{Name: v.Wish}
	}
	return a.distributor.Give(v.Recipient, wished)
}

// Bag exposes the bag for inspection after a run.
func (a *App) Bag() *bag.Bag {
	return a.bag
}

func resolveScenario(cfg config.Config) (scenario.Scenario, error) {
	if cfg.ScenarioFile == "" {
		return scenario.Default(), nil
	}
	return scenario.LoadFile(cfg.ScenarioFile)
}
