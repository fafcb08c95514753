package domain

import (
	"context"
	"time"
)

// MaintenanceTicket is one entry of a device maintenance history.
type MaintenanceTicket struct {
	TicketStartedBy string
	TicketClosedBy  *string
	Technician      string
	Description     string
	ReportedAt      *time.Time
	ResolvedAt      *time.Time
}

// IsOpen reports whether the ticket has not been resolved yet.
func (t MaintenanceTicket) IsOpen() bool {
	return t.ResolvedAt == nil
}

// MaintenanceRecord is the maintenance state of one device. History is ordered newest first.
type MaintenanceRecord struct {
	DeviceID         string
	UnderMaintenance bool
	History          []MaintenanceTicket
}

// Latest returns the newest ticket of the history.
func (r MaintenanceRecord) Latest() (MaintenanceTicket, bool) {
	if len(r.History) == 0 {
		return MaintenanceTicket{}, false
	}
	return r.History[0], true
}

// HistoryBetween returns the tickets reported within [from, to]. Zero bounds are open.
// Tickets without a reported time are only kept when both bounds are open.
func (r MaintenanceRecord) HistoryBetween(from, to time.Time) []MaintenanceTicket {
	res := make([]MaintenanceTicket, 0, len(r.History))
	for _, t := range r.History {
		if from.IsZero() && to.IsZero() {
			res = append(res, t)
			continue
		}
		if t.ReportedAt == nil {
			continue
		}
		if !from.IsZero() && t.ReportedAt.Before(from) {
			continue
		}
		if !to.IsZero() && t.ReportedAt.After(to) {
			continue
		}
		res = append(res, t)
	}
	return res
}

// MaintenanceRepository reads and writes equipment maintenance records.
type MaintenanceRepository interface {
	// GetMaintenanceRecord returns the record of a device. found is false when no record exists.
	GetMaintenanceRecord(ctx context.Context, deviceID string) (MaintenanceRecord, bool, error)
	// OpenTicket prepends a ticket to the device history and flags it under maintenance.
	// It returns a NotFoundErr when the device has no record.
	OpenTicket(ctx context.Context, deviceID string, ticket MaintenanceTicket) error
	// CloseTicket resolves the newest open ticket and clears the maintenance flag.
	// It returns a NotFoundErr when the device has no record.
	CloseTicket(ctx context.Context, deviceID, closedBy string, resolvedAt time.Time) error
}
