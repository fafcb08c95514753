package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SchedulePreview is the proposed change of one excluded chiller schedule.
type SchedulePreview struct {
	ChillerID   string
	Profile     domain.ScheduleProfile
	OldSchedule []domain.ScheduleEntry
	NewSchedule []domain.ScheduleEntry
}

// ScheduleChange is a request to replace the entry list of one excluded chiller.
type ScheduleChange struct {
	Profile   domain.ScheduleProfile
	ChillerID string
	Entries   []domain.ScheduleEntry
	// Current is compared with the stored entries when CheckCurrent is set.
	Current      []domain.ScheduleEntry
	CheckCurrent bool
}

// ScheduleChangeResult is the outcome of an applied schedule change.
type ScheduleChangeResult struct {
	Entries     []domain.ScheduleEntry
	WriteResult domain.ScheduleWriteResult
}

// scheduleChangedPayload is the body of a SCHEDULE_CHANGED event.
type scheduleChangedPayload struct {
	Profile     domain.ScheduleProfile `json:"profile_type"`
	ChillerID   string                 `json:"chiller_id"`
	OldSchedule []domain.ScheduleEntry `json:"old_schedule"`
	NewSchedule []domain.ScheduleEntry `json:"new_schedule"`
}

// ChillerScheduler is the single service that reads and mutates excluded chiller schedules.
// Both the assistant tools and the HTTP schedule change endpoint go through it.
type ChillerScheduler interface {
	// Schedule returns the schedule of a profile; found is false when it does not exist.
	Schedule(ctx context.Context, profile domain.ScheduleProfile) (domain.ProfileSchedule, bool, error)
	// CheckAvailability reports whether chillerID can be rescheduled in profile.
	CheckAvailability(ctx context.Context, profile domain.ScheduleProfile, chillerID string) (domain.ScheduleAvailability, error)
	// Preview validates a change and returns the current and proposed entries without writing.
	Preview(ctx context.Context, profile domain.ScheduleProfile, chillerID string, entries []domain.ScheduleEntry) (SchedulePreview, error)
	// Confirm applies a change with a version checked write and publishes SCHEDULE_CHANGED.
	Confirm(ctx context.Context, change ScheduleChange) (ScheduleChangeResult, error)
}

// ChillerSchedulerImpl is the implementation of ChillerScheduler.
type ChillerSchedulerImpl struct {
	repo         domain.ScheduleRepository
	publisher    domain.PlantEventPublisher
	timeProvider domain.CurrentTimeProvider
	logger       zerolog.Logger
}

// NewChillerSchedulerImpl creates a new instance of ChillerSchedulerImpl.
func NewChillerSchedulerImpl(
	repo domain.ScheduleRepository,
	publisher domain.PlantEventPublisher,
	timeProvider domain.CurrentTimeProvider,
	logger zerolog.Logger,
) ChillerSchedulerImpl {
	return ChillerSchedulerImpl{
		repo:         repo,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Schedule implements ChillerScheduler.
func (cs ChillerSchedulerImpl) Schedule(ctx context.Context, profile domain.ScheduleProfile) (domain.ProfileSchedule, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("profile", string(profile)),
	))
	defer span.End()

	schedule, found, err := cs.repo.GetProfileSchedule(spanCtx, profile)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ProfileSchedule{}, false, err
	}
	return schedule, found, nil
}

// CheckAvailability implements ChillerScheduler.
func (cs ChillerSchedulerImpl) CheckAvailability(ctx context.Context, profile domain.ScheduleProfile, chillerID string) (domain.ScheduleAvailability, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("profile", string(profile)),
		attribute.String("chiller_id", chillerID),
	))
	defer span.End()

	schedule, found, err := cs.repo.GetProfileSchedule(spanCtx, profile)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ScheduleAvailability{}, err
	}
	if !found {
		return domain.ScheduleAvailability{Message: domain.ScheduleAvailability_NotFound}, nil
	}
	return schedule.Availability(chillerID), nil
}

// Preview implements ChillerScheduler.
func (cs ChillerSchedulerImpl) Preview(ctx context.Context, profile domain.ScheduleProfile, chillerID string, entries []domain.ScheduleEntry) (SchedulePreview, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("profile", string(profile)),
		attribute.String("chiller_id", chillerID),
	))
	defer span.End()

	if err := validateScheduleTarget(chillerID, entries); telemetry.RecordErrorAndStatus(span, err) {
		return SchedulePreview{}, err
	}

	schedule, err := cs.reschedulable(spanCtx, profile, chillerID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return SchedulePreview{}, err
	}

	return SchedulePreview{
		ChillerID:   chillerID,
		Profile:     profile,
		OldSchedule: schedule.ExcludedChiller[chillerID],
		NewSchedule: entries,
	}, nil
}

// Confirm implements ChillerScheduler.
func (cs ChillerSchedulerImpl) Confirm(ctx context.Context, change ScheduleChange) (ScheduleChangeResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("profile", string(change.Profile)),
		attribute.String("chiller_id", change.ChillerID),
		attribute.Int("entries", len(change.Entries)),
	))
	defer span.End()

	if err := validateScheduleTarget(change.ChillerID, change.Entries); telemetry.RecordErrorAndStatus(span, err) {
		return ScheduleChangeResult{}, err
	}

	schedule, err := cs.reschedulable(spanCtx, change.Profile, change.ChillerID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return ScheduleChangeResult{}, err
	}

	current := schedule.ExcludedChiller[change.ChillerID]
	if change.CheckCurrent && !domain.SameScheduleEntries(change.Current, current) {
		err := domain.NewConflictErr("Schedule conflict detected")
		telemetry.RecordErrorAndStatus(span, err)
		return ScheduleChangeResult{}, err
	}

	version := schedule.Version
	writeResult, err := cs.repo.ReplaceExcludedChillerSchedule(spanCtx, domain.ScheduleReplacement{
		Profile:         change.Profile,
		ChillerID:       change.ChillerID,
		Entries:         change.Entries,
		ExpectedVersion: &version,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return ScheduleChangeResult{}, err
	}

	publishPlantEvent(spanCtx, cs.publisher, cs.logger, cs.timeProvider,
		domain.PlantEventType_SCHEDULE_CHANGED,
		change.ChillerID,
		scheduleChangedPayload{
			Profile:     change.Profile,
			ChillerID:   change.ChillerID,
			OldSchedule: current,
			NewSchedule: change.Entries,
		},
	)

	cs.logger.Info().
		Str("profile", string(change.Profile)).
		Str("chiller_id", change.ChillerID).
		Int64("modified_count", writeResult.ModifiedCount).
		Msg("chiller schedule updated")

	return ScheduleChangeResult{
		Entries:     change.Entries,
		WriteResult: writeResult,
	}, nil
}

// reschedulable reads the profile once and fails unless chillerID is in its excluded set.
func (cs ChillerSchedulerImpl) reschedulable(ctx context.Context, profile domain.ScheduleProfile, chillerID string) (domain.ProfileSchedule, error) {
	schedule, found, err := cs.repo.GetProfileSchedule(ctx, profile)
	if err != nil {
		return domain.ProfileSchedule{}, err
	}
	if !found {
		return domain.ProfileSchedule{}, domain.NewConflictErr(domain.ScheduleAvailability_NotFound)
	}
	if availability := schedule.Availability(chillerID); !availability.Available {
		return domain.ProfileSchedule{}, domain.NewConflictErr(availability.Message)
	}
	return schedule, nil
}

func validateScheduleTarget(chillerID string, entries []domain.ScheduleEntry) error {
	if chillerID == domain.NormalChillerBucket {
		return domain.NewValidationErr("Cannot modify schedule for normal chillers. Only excluded chillers can be rescheduled.")
	}
	if !domain.IsKnownChiller(chillerID) {
		return domain.NewValidationErr("Invalid chiller ID: " + chillerID)
	}
	return domain.ValidateScheduleEntries(entries)
}

// InitChillerScheduler initializes the ChillerScheduler service.
type InitChillerScheduler struct {
	Repo         domain.ScheduleRepository  `resolve:""`
	Publisher    domain.PlantEventPublisher `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       zerolog.Logger             `resolve:""`
}

// Initialize registers the ChillerScheduler implementation.
func (i InitChillerScheduler) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ChillerScheduler](NewChillerSchedulerImpl(i.Repo, i.Publisher, i.TimeProvider, i.Logger))
	return ctx, nil
}
