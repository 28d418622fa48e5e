// ABOUTME: Tracker service that turns raw weekly input into stored records.
// ABOUTME: Runs initialize, resolve baseline, derive, and upsert against a Repository.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/harperreed/scorecard/internal/models"
	"github.com/harperreed/scorecard/internal/storage"
)

// BaselinePolicy decides what happens to stored weeks when week 1 is re-submitted.
type BaselinePolicy string

const (
	// PolicyKeepHistory leaves every other week's derived fields as they were written.
	PolicyKeepHistory BaselinePolicy = "keep-history"
	// PolicyRecompute re-derives every other week against the new baseline.
	PolicyRecompute BaselinePolicy = "recompute"
)

var (
	// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names.
	ErrUnknownPolicy = errors.New("unknown baseline policy")
	// ErrNoBaseline is returned by Recompute when week 1 is not stored.
	ErrNoBaseline = errors.New("week 1 has not been submitted")
)

// ParsePolicy maps a config value to a BaselinePolicy. Empty means keep-history.
func ParsePolicy(s string) (BaselinePolicy, error) {
	switch BaselinePolicy(s) {
	case "", PolicyKeepHistory:
		return PolicyKeepHistory, nil
	case PolicyRecompute:
		return PolicyRecompute, nil
	default:
		return "", fmt.Errorf("%w: %q (use %s or %s)", ErrUnknownPolicy, s, PolicyKeepHistory, PolicyRecompute)
	}
}

// Tracker owns the submission flow for one repository.
type Tracker struct {
	repo   storage.Repository
	log    *zap.Logger
	now    func() time.Time
	policy BaselinePolicy
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the diagnostic logger.
func WithLogger(log *zap.Logger) Option {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// WithClock sets the source of submission dates.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithPolicy sets the week-1 re-submission policy.
func WithPolicy(p BaselinePolicy) Option {
	return func(t *Tracker) {
		if p != "" {
			t.policy = p
		}
	}
}

// New creates a Tracker over repo.
func New(repo storage.Repository, opts ...Option) *Tracker {
	t := &Tracker{
		repo:   repo,
		log:    zap.NewNop(),
		now:    time.Now,
		policy: PolicyKeepHistory,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Policy returns the configured baseline policy.
func (t *Tracker) Policy() BaselinePolicy {
	return t.policy
}

// SubmitResult describes a completed submission.
type SubmitResult struct {
	Record   *models.WeeklyRecord
	Warnings []string
	// Recomputed counts other weeks re-derived after a week-1 submission
	// under PolicyRecompute.
	Recomputed int
}

// Submit derives and stores one week. Every derivation runs before the first
// write, so a failed submission leaves the store unchanged. Under
// PolicyRecompute a week-1 submission also re-derives every other stored week
// against the new baseline before anything is written.
func (t *Tracker) Submit(ctx context.Context, raw models.RawWeeklyInput) (*SubmitResult, error) {
	if err := raw.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := t.repo.Init(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	var baseline *models.Baseline
	if raw.WeekNumber != models.BaselineWeek {
		var err error
		baseline, err = t.ResolveBaseline(ctx)
		if err != nil {
			return nil, err
		}
	}

	derived, err := models.Derive(raw, baseline)
	if err != nil {
		return nil, fmt.Errorf("week %d: %w", raw.WeekNumber, err)
	}
	record := models.NewWeeklyRecord(raw, derived, t.now())

	var rederived []*models.WeeklyRecord
	if record.IsBaseline() && t.policy == PolicyRecompute {
		weeks, err := t.repo.ListWeeks()
		if err != nil {
			return nil, fmt.Errorf("list weeks: %w", err)
		}
		rederived, err = rederive(weeks, models.BaselineFrom(record))
		if err != nil {
			return nil, fmt.Errorf("recompute against new baseline: %w", err)
		}
	}

	if err := t.repo.UpsertWeek(record); err != nil {
		return nil, fmt.Errorf("store week %d: %w", raw.WeekNumber, err)
	}

	t.log.Debug("week submitted",
		zap.Int("week", record.WeekNumber),
		zap.Bool("baseline", baseline != nil),
		zap.Float64("automation_index", record.AutomationIndex),
		zap.Float64("time_saved", record.TimeSavedVsBaseline),
		zap.Float64("revenue_efficiency", record.RevenueEfficiencyMultiple),
	)

	result := &SubmitResult{Record: record, Warnings: raw.Warnings()}

	if rederived != nil {
		if err := t.store(ctx, rederived); err != nil {
			return result, fmt.Errorf("recompute after baseline change: %w", err)
		}
		result.Recomputed = len(rederived)
	}

	return result, nil
}

// ResolveBaseline returns the week-1 baseline, or nil when week 1 has not
// been submitted. Only storage failures are errors.
func (t *Tracker) ResolveBaseline(ctx context.Context) (*models.Baseline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := t.repo.GetWeek(models.BaselineWeek)
	if errors.Is(err, storage.ErrNotFound) {
		t.log.Debug("no baseline stored")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve baseline: %w", err)
	}
	return models.BaselineFrom(r), nil
}

// Recompute re-derives every stored week other than week 1 against the
// current baseline and writes them back with their original submission
// dates. Nothing is written unless every week derives cleanly. It returns
// ErrNoBaseline when other weeks are stored but week 1 is not.
func (t *Tracker) Recompute(ctx context.Context) (int, error) {
	baseline, err := t.ResolveBaseline(ctx)
	if err != nil {
		return 0, err
	}

	weeks, err := t.repo.ListWeeks()
	if err != nil {
		return 0, fmt.Errorf("list weeks: %w", err)
	}

	if baseline == nil {
		if len(weeks) > 0 {
			return 0, ErrNoBaseline
		}
		return 0, nil
	}

	pending, err := rederive(weeks, baseline)
	if err != nil {
		return 0, err
	}
	if err := t.store(ctx, pending); err != nil {
		return 0, err
	}

	t.log.Debug("weeks recomputed", zap.Int("count", len(pending)))
	return len(pending), nil
}

// rederive derives every week after week 1 against baseline without
// writing anything. The returned records keep their submission dates.
func rederive(weeks []*models.WeeklyRecord, baseline *models.Baseline) ([]*models.WeeklyRecord, error) {
	pending := []*models.WeeklyRecord{}
	for _, w := range weeks {
		if w.IsBaseline() {
			continue
		}
		d, err := models.Derive(w.Raw(), baseline)
		if err != nil {
			return nil, fmt.Errorf("week %d: %w", w.WeekNumber, err)
		}
		updated := *w
		updated.Apply(d)
		pending = append(pending, &updated)
	}
	return pending, nil
}

func (t *Tracker) store(ctx context.Context, weeks []*models.WeeklyRecord) error {
	for _, w := range weeks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.repo.UpsertWeek(w); err != nil {
			return fmt.Errorf("store week %d: %w", w.WeekNumber, err)
		}
	}
	return nil
}

// Week returns one stored week.
func (t *Tracker) Week(ctx context.Context, weekNumber int) (*models.WeeklyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.repo.GetWeek(weekNumber)
}

// Weeks returns every stored week in ascending order.
func (t *Tracker) Weeks(ctx context.Context) ([]*models.WeeklyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.repo.ListWeeks()
}
