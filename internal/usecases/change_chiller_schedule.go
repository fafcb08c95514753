package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ChillerScheduleChange is an operator confirmed schedule change coming from the UI.
type ChillerScheduleChange struct {
	ChillerID   string
	ProfileType string
	OldSchedule []domain.ScheduleEntry
	NewSchedule []domain.ScheduleEntry
}

// ChillerScheduleChanged describes an applied change.
type ChillerScheduleChanged struct {
	Message     string
	ChillerID   string
	NewSchedule []domain.ScheduleEntry
}

// ChangeChillerSchedule defines the interface for the ChangeChillerSchedule use case
type ChangeChillerSchedule interface {
	Execute(ctx context.Context, change ChillerScheduleChange) (ChillerScheduleChanged, error)
}

// ChangeChillerScheduleImpl is the implementation of the ChangeChillerSchedule use case
type ChangeChillerScheduleImpl struct {
	scheduler   ChillerScheduler
	maintenance domain.MaintenanceRepository
}

// NewChangeChillerScheduleImpl creates a new instance of ChangeChillerScheduleImpl
func NewChangeChillerScheduleImpl(scheduler ChillerScheduler, maintenance domain.MaintenanceRepository) ChangeChillerScheduleImpl {
	return ChangeChillerScheduleImpl{
		scheduler:   scheduler,
		maintenance: maintenance,
	}
}

// Execute validates the change, refuses chillers under maintenance and applies it only
// when OldSchedule still matches the stored entries.
func (uc ChangeChillerScheduleImpl) Execute(ctx context.Context, change ChillerScheduleChange) (ChillerScheduleChanged, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("chiller_id", change.ChillerID),
		attribute.String("profile_type", change.ProfileType),
	))
	defer span.End()

	profile, err := domain.ParseScheduleProfile(change.ProfileType)
	if telemetry.RecordErrorAndStatus(span, err) {
		return ChillerScheduleChanged{}, err
	}

	if err := validateScheduleChangeRequest(change); telemetry.RecordErrorAndStatus(span, err) {
		return ChillerScheduleChanged{}, err
	}

	record, found, err := uc.maintenance.GetMaintenanceRecord(spanCtx, change.ChillerID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return ChillerScheduleChanged{}, err
	}
	if found && record.UnderMaintenance {
		err := domain.NewValidationErr("Chiller is currently in maintenance mode")
		telemetry.RecordErrorAndStatus(span, err)
		return ChillerScheduleChanged{}, err
	}

	result, err := uc.scheduler.Confirm(spanCtx, ScheduleChange{
		Profile:      profile,
		ChillerID:    change.ChillerID,
		Entries:      change.NewSchedule,
		Current:      change.OldSchedule,
		CheckCurrent: true,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return ChillerScheduleChanged{}, err
	}

	return ChillerScheduleChanged{
		Message:     "Successfully updated schedule for " + domain.ChillerLabel(change.ChillerID),
		ChillerID:   change.ChillerID,
		NewSchedule: result.Entries,
	}, nil
}

func validateScheduleChangeRequest(change ChillerScheduleChange) error {
	if change.ChillerID == domain.NormalChillerBucket {
		return domain.NewValidationErr("Cannot modify schedule for normal chillers. Only excluded chillers can be rescheduled.")
	}
	if !domain.IsKnownChiller(change.ChillerID) {
		return domain.NewValidationErr("Invalid chiller ID: " + change.ChillerID)
	}
	if len(change.NewSchedule) == 0 {
		return domain.NewValidationErr("Invalid time format")
	}
	return domain.ValidateScheduleEntries(change.NewSchedule)
}

// InitChangeChillerSchedule initializes the ChangeChillerSchedule use case.
type InitChangeChillerSchedule struct {
	Scheduler   ChillerScheduler             `resolve:""`
	Maintenance domain.MaintenanceRepository `resolve:""`
}

// Initialize registers the ChangeChillerSchedule use case implementation.
func (i InitChangeChillerSchedule) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ChangeChillerSchedule](NewChangeChillerScheduleImpl(i.Scheduler, i.Maintenance))
	return ctx, nil
}
