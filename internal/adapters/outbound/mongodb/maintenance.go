package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type maintenanceDoc struct {
	DeviceID string `bson:"device_id"`
	Status   struct {
		UnderMaintenance bool `bson:"under_maintenance"`
	} `bson:"status"`
	History []ticketDoc `bson:"maintenance_history"`
}

type ticketDoc struct {
	TicketStartedBy string  `bson:"ticket_started_by"`
	TicketClosedBy  *string `bson:"ticket_closed_by"`
	Technician      string  `bson:"technician"`
	Description     string  `bson:"description"`
	ReportedAt      any     `bson:"reported_at"`
	ResolvedAt      any     `bson:"resolved_at"`
}

// MaintenanceRepository stores one maintenance document per device with its
// ticket history ordered newest first.
type MaintenanceRepository struct {
	coll *mongo.Collection
	loc  *time.Location
}

// NewMaintenanceRepository creates a MaintenanceRepository. Timestamps stored as text
// are interpreted in loc.
func NewMaintenanceRepository(coll *mongo.Collection, loc *time.Location) MaintenanceRepository {
	if loc == nil {
		loc = time.UTC
	}
	return MaintenanceRepository{coll: coll, loc: loc}
}

// GetMaintenanceRecord returns the maintenance document of deviceID.
func (r MaintenanceRepository) GetMaintenanceRecord(ctx context.Context, deviceID string) (domain.MaintenanceRecord, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("device_id", deviceID),
	))
	defer span.End()

	var doc maintenanceDoc
	err := r.coll.FindOne(spanCtx,
		bson.D{{Key: "device_id", Value: deviceID}},
		options.FindOne().SetSort(newestFirst),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.MaintenanceRecord{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.MaintenanceRecord{}, false, storeErr("find maintenance record", err)
	}

	return r.toRecord(doc), true, nil
}

// OpenTicket prepends ticket to the device history and flags the device as under maintenance.
func (r MaintenanceRepository) OpenTicket(ctx context.Context, deviceID string, ticket domain.MaintenanceTicket) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("device_id", deviceID),
	))
	defer span.End()

	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "status.under_maintenance", Value: true}}},
		{Key: "$push", Value: bson.D{{Key: "maintenance_history", Value: bson.D{
			{Key: "$each", Value: bson.A{fromTicket(ticket)}},
			{Key: "$position", Value: 0},
		}}}},
	}
	res, err := r.coll.UpdateOne(spanCtx, bson.D{{Key: "device_id", Value: deviceID}}, update)
	if telemetry.RecordErrorAndStatus(span, err) {
		return storeErr("open maintenance ticket", err)
	}
	if res.MatchedCount == 0 {
		err := domain.NewNotFoundErr(fmt.Sprintf("Device %s not found", deviceID))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// CloseTicket resolves the newest open ticket, if any, and clears the maintenance flag.
func (r MaintenanceRepository) CloseTicket(ctx context.Context, deviceID, closedBy string, resolvedAt time.Time) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("device_id", deviceID),
	))
	defer span.End()

	record, found, err := r.GetMaintenanceRecord(spanCtx, deviceID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("Device %s not found", deviceID))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	set := bson.D{{Key: "status.under_maintenance", Value: false}}
	if latest, ok := record.Latest(); ok && latest.IsOpen() {
		set = append(set,
			bson.E{Key: "maintenance_history.0.ticket_closed_by", Value: closedBy},
			bson.E{Key: "maintenance_history.0.resolved_at", Value: resolvedAt.UTC()},
		)
	}

	_, err = r.coll.UpdateOne(spanCtx,
		bson.D{{Key: "device_id", Value: deviceID}},
		bson.D{{Key: "$set", Value: set}},
	)
	if telemetry.RecordErrorAndStatus(span, err) {
		return storeErr("close maintenance ticket", err)
	}
	return nil
}

func (r MaintenanceRepository) parseTime(s string) (time.Time, bool) {
	return domain.ParseTimestamp(s, r.loc)
}

func (r MaintenanceRepository) toRecord(doc maintenanceDoc) domain.MaintenanceRecord {
	history := make([]domain.MaintenanceTicket, 0, len(doc.History))
	for _, t := range doc.History {
		history = append(history, domain.MaintenanceTicket{
			TicketStartedBy: t.TicketStartedBy,
			TicketClosedBy:  t.TicketClosedBy,
			Technician:      t.Technician,
			Description:     t.Description,
			ReportedAt:      toTime(t.ReportedAt, r.parseTime),
			ResolvedAt:      toTime(t.ResolvedAt, r.parseTime),
		})
	}
	return domain.MaintenanceRecord{
		DeviceID:         doc.DeviceID,
		UnderMaintenance: doc.Status.UnderMaintenance,
		History:          history,
	}
}

func fromTicket(t domain.MaintenanceTicket) ticketDoc {
	doc := ticketDoc{
		TicketStartedBy: t.TicketStartedBy,
		TicketClosedBy:  t.TicketClosedBy,
		Technician:      t.Technician,
		Description:     t.Description,
	}
	if t.ReportedAt != nil {
		doc.ReportedAt = t.ReportedAt.UTC()
	}
	if t.ResolvedAt != nil {
		doc.ResolvedAt = t.ResolvedAt.UTC()
	}
	return doc
}

// InitMaintenanceRepository is a Symbiont initializer for MaintenanceRepository.
type InitMaintenanceRepository struct {
	Client     *mongo.Client  `resolve:""`
	Location   *time.Location `resolve:""`
	Database   string         `config:"MONGODB_MAINTENANCE_DATABASE" default:"maintenance"`
	Collection string         `config:"MONGODB_MAINTENANCE_COLLECTION" default:"equipment_maintenance"`
}

// Initialize registers the MaintenanceRepository in the dependency container.
func (i InitMaintenanceRepository) Initialize(ctx context.Context) (context.Context, error) {
	coll := i.Client.Database(i.Database).Collection(i.Collection)
	depend.Register[domain.MaintenanceRepository](NewMaintenanceRepository(coll, i.Location))
	return ctx, nil
}
