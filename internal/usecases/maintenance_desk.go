package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TicketTimeLayout is the local time layout of proposed ticket timestamps.
const TicketTimeLayout = "2006-01-02T15:04:05"

// MaintenanceStatus is the flattened maintenance state of a device with its newest ticket.
type MaintenanceStatus struct {
	DeviceID         string     `json:"device_id"`
	UnderMaintenance bool       `json:"under_maintenance"`
	TicketStartedBy  *string    `json:"ticket_started_by"`
	TicketClosedBy   *string    `json:"ticket_closed_by"`
	Technician       *string    `json:"technician"`
	ResolvedAt       *time.Time `json:"resolved_at"`
	ReportedAt       *time.Time `json:"reported_at"`
}

// MaintenanceTicketView is a history ticket as returned to the assistant.
type MaintenanceTicketView struct {
	TicketStartedBy string     `json:"ticket_started_by"`
	TicketClosedBy  *string    `json:"ticket_closed_by"`
	Technician      string     `json:"technician"`
	Description     string     `json:"description"`
	ReportedAt      *time.Time `json:"reported_at"`
	ResolvedAt      *time.Time `json:"resolved_at"`
}

// MaintenanceProposal is a ticket proposed to the operator for confirmation.
// Its fields mirror the body of the maintenance flag endpoint.
type MaintenanceProposal struct {
	DeviceID        string `json:"device_id"`
	MaintenanceFlag bool   `json:"maintenance_flag"`
	ReporterName    string `json:"reporter_name"`
	TechnicianName  string `json:"technician_name"`
	Time            string `json:"time"`
	Reason          string `json:"reason"`
}

// MaintenanceDesk answers maintenance questions and prepares tickets.
type MaintenanceDesk interface {
	// Status returns the flattened status of a device; found is false when it has no record.
	Status(ctx context.Context, deviceID string) (MaintenanceStatus, bool, error)
	// History returns the tickets reported between startDate and endDate. Both dates are
	// optional day expressions read in the site time zone.
	History(ctx context.Context, equipmentID, startDate, endDate string) ([]MaintenanceTicketView, error)
	// Propose builds a ticket for a device without persisting it.
	Propose(ctx context.Context, deviceID, startedBy, technician, description string) (MaintenanceProposal, error)
}

// MaintenanceDeskImpl is the implementation of MaintenanceDesk.
type MaintenanceDeskImpl struct {
	repo         domain.MaintenanceRepository
	timeProvider domain.CurrentTimeProvider
	loc          *time.Location
}

// NewMaintenanceDeskImpl creates a new instance of MaintenanceDeskImpl.
func NewMaintenanceDeskImpl(repo domain.MaintenanceRepository, timeProvider domain.CurrentTimeProvider, loc *time.Location) MaintenanceDeskImpl {
	return MaintenanceDeskImpl{
		repo:         repo,
		timeProvider: timeProvider,
		loc:          loc,
	}
}

// Status implements MaintenanceDesk.
func (md MaintenanceDeskImpl) Status(ctx context.Context, deviceID string) (MaintenanceStatus, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("device_id", deviceID),
	))
	defer span.End()

	record, found, err := md.repo.GetMaintenanceRecord(spanCtx, deviceID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return MaintenanceStatus{}, false, err
	}
	if !found {
		return MaintenanceStatus{}, false, nil
	}

	status := MaintenanceStatus{
		DeviceID:         deviceID,
		UnderMaintenance: record.UnderMaintenance,
	}
	if latest, ok := record.Latest(); ok {
		status.TicketStartedBy = &latest.TicketStartedBy
		status.TicketClosedBy = latest.TicketClosedBy
		status.Technician = &latest.Technician
		status.ResolvedAt = md.local(latest.ResolvedAt)
		status.ReportedAt = md.local(latest.ReportedAt)
	}
	return status, true, nil
}

// History implements MaintenanceDesk.
func (md MaintenanceDeskImpl) History(ctx context.Context, equipmentID, startDate, endDate string) ([]MaintenanceTicketView, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("equipment_id", equipmentID),
		attribute.String("start_date", startDate),
		attribute.String("end_date", endDate),
	))
	defer span.End()

	now := md.timeProvider.Now().In(md.loc)

	var from, to time.Time
	if startDate != "" {
		day, ok := domain.ParseDay(startDate, now, md.loc)
		if !ok {
			err := domain.NewValidationErr(fmt.Sprintf("invalid start_date %q", startDate))
			telemetry.RecordErrorAndStatus(span, err)
			return nil, err
		}
		from = day
	}
	if endDate != "" {
		day, ok := domain.ParseDay(endDate, now, md.loc)
		if !ok {
			err := domain.NewValidationErr(fmt.Sprintf("invalid end_date %q", endDate))
			telemetry.RecordErrorAndStatus(span, err)
			return nil, err
		}
		to = domain.EndOfDay(day)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		err := domain.NewValidationErr("end_date must not be before start_date")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	record, found, err := md.repo.GetMaintenanceRecord(spanCtx, equipmentID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if !found {
		return []MaintenanceTicketView{}, nil
	}

	tickets := record.HistoryBetween(from, to)
	views := make([]MaintenanceTicketView, 0, len(tickets))
	for _, t := range tickets {
		views = append(views, MaintenanceTicketView{
			TicketStartedBy: t.TicketStartedBy,
			TicketClosedBy:  t.TicketClosedBy,
			Technician:      t.Technician,
			Description:     t.Description,
			ReportedAt:      md.local(t.ReportedAt),
			ResolvedAt:      md.local(t.ResolvedAt),
		})
	}
	return views, nil
}

// Propose implements MaintenanceDesk.
func (md MaintenanceDeskImpl) Propose(ctx context.Context, deviceID, startedBy, technician, description string) (MaintenanceProposal, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("device_id", deviceID),
	))
	defer span.End()

	_, found, err := md.repo.GetMaintenanceRecord(spanCtx, deviceID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return MaintenanceProposal{}, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("Device %s not found", deviceID))
		telemetry.RecordErrorAndStatus(span, err)
		return MaintenanceProposal{}, err
	}

	return MaintenanceProposal{
		DeviceID:        deviceID,
		MaintenanceFlag: true,
		ReporterName:    startedBy,
		TechnicianName:  technician,
		Time:            md.timeProvider.Now().In(md.loc).Format(TicketTimeLayout),
		Reason:          description,
	}, nil
}

func (md MaintenanceDeskImpl) local(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	lt := t.In(md.loc)
	return &lt
}

// InitMaintenanceDesk initializes the MaintenanceDesk service.
type InitMaintenanceDesk struct {
	Repo         domain.MaintenanceRepository `resolve:""`
	TimeProvider domain.CurrentTimeProvider   `resolve:""`
	Location     *time.Location               `resolve:""`
}

// Initialize registers the MaintenanceDesk implementation.
func (i InitMaintenanceDesk) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[MaintenanceDesk](NewMaintenanceDeskImpl(i.Repo, i.TimeProvider, i.Location))
	return ctx, nil
}
