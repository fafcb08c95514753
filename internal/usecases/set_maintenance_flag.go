package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MaintenanceFlagChange is an operator confirmed change of the maintenance flag of one or more devices.
type MaintenanceFlagChange struct {
	DeviceIDs      []string
	Flag           bool
	ReporterName   string
	TechnicianName string
	// Time is the reported time of a new ticket. Empty means now.
	Time   string
	Reason string
}

type maintenanceFlagChangedPayload struct {
	DeviceID        string    `json:"device_id"`
	MaintenanceFlag bool      `json:"maintenance_flag"`
	ReporterName    string    `json:"reporter_name"`
	TechnicianName  string    `json:"technician_name,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	At              time.Time `json:"at"`
}

// SetMaintenanceFlag defines the interface for the SetMaintenanceFlag use case
type SetMaintenanceFlag interface {
	Execute(ctx context.Context, change MaintenanceFlagChange) error
}

// SetMaintenanceFlagImpl is the implementation of the SetMaintenanceFlag use case
type SetMaintenanceFlagImpl struct {
	repo         domain.MaintenanceRepository
	publisher    domain.PlantEventPublisher
	timeProvider domain.CurrentTimeProvider
	loc          *time.Location
	logger       zerolog.Logger
}

// NewSetMaintenanceFlagImpl creates a new instance of SetMaintenanceFlagImpl
func NewSetMaintenanceFlagImpl(
	repo domain.MaintenanceRepository,
	publisher domain.PlantEventPublisher,
	timeProvider domain.CurrentTimeProvider,
	loc *time.Location,
	logger zerolog.Logger,
) SetMaintenanceFlagImpl {
	return SetMaintenanceFlagImpl{
		repo:         repo,
		publisher:    publisher,
		timeProvider: timeProvider,
		loc:          loc,
		logger:       logger,
	}
}

// Execute opens a ticket on every device when the flag is set, or closes the newest
// ticket when it is cleared. Every device must have a maintenance record.
func (s SetMaintenanceFlagImpl) Execute(ctx context.Context, change MaintenanceFlagChange) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.StringSlice("device_ids", change.DeviceIDs),
		attribute.Bool("maintenance_flag", change.Flag),
	))
	defer span.End()

	now := s.timeProvider.Now()
	at, err := s.validate(change, now)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	for _, id := range change.DeviceIDs {
		_, found, err := s.repo.GetMaintenanceRecord(spanCtx, id)
		if telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
		if !found {
			err := domain.NewNotFoundErr(fmt.Sprintf("Device %s not found", id))
			telemetry.RecordErrorAndStatus(span, err)
			return err
		}
	}

	for _, id := range change.DeviceIDs {
		if change.Flag {
			err = s.repo.OpenTicket(spanCtx, id, domain.MaintenanceTicket{
				TicketStartedBy: change.ReporterName,
				Technician:      change.TechnicianName,
				Description:     change.Reason,
				ReportedAt:      &at,
			})
		} else {
			err = s.repo.CloseTicket(spanCtx, id, change.ReporterName, now)
		}
		if telemetry.RecordErrorAndStatus(span, err) {
			return err
		}

		publishPlantEvent(spanCtx, s.publisher, s.logger, s.timeProvider,
			domain.PlantEventType_MAINTENANCE_FLAG_CHANGED,
			id,
			maintenanceFlagChangedPayload{
				DeviceID:        id,
				MaintenanceFlag: change.Flag,
				ReporterName:    change.ReporterName,
				TechnicianName:  change.TechnicianName,
				Reason:          change.Reason,
				At:              at,
			},
		)

		s.logger.Info().
			Str("device_id", id).
			Bool("maintenance_flag", change.Flag).
			Msg("maintenance flag changed")
	}

	return nil
}

// validate checks the change and returns the time it applies at.
func (s SetMaintenanceFlagImpl) validate(change MaintenanceFlagChange, now time.Time) (time.Time, error) {
	if len(change.DeviceIDs) == 0 {
		return time.Time{}, domain.NewValidationErr("device_id is required")
	}
	for _, id := range change.DeviceIDs {
		if strings.TrimSpace(id) == "" {
			return time.Time{}, domain.NewValidationErr("device_id cannot be empty")
		}
	}
	if strings.TrimSpace(change.ReporterName) == "" {
		return time.Time{}, domain.NewValidationErr("reporter_name is required")
	}

	if !change.Flag || change.Time == "" {
		return now, nil
	}
	at, ok := domain.ParseTimestamp(change.Time, s.loc)
	if !ok {
		return time.Time{}, domain.NewValidationErr(fmt.Sprintf("invalid time %q", change.Time))
	}
	return at, nil
}

// InitSetMaintenanceFlag initializes the SetMaintenanceFlag use case.
type InitSetMaintenanceFlag struct {
	Repo         domain.MaintenanceRepository `resolve:""`
	Publisher    domain.PlantEventPublisher   `resolve:""`
	TimeProvider domain.CurrentTimeProvider   `resolve:""`
	Location     *time.Location               `resolve:""`
	Logger       zerolog.Logger               `resolve:""`
}

// Initialize registers the SetMaintenanceFlag use case implementation.
func (i InitSetMaintenanceFlag) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SetMaintenanceFlag](NewSetMaintenanceFlagImpl(i.Repo, i.Publisher, i.TimeProvider, i.Location, i.Logger))
	return ctx, nil
}
