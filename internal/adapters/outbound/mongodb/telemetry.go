package mongodb

import (
	"context"
	"errors"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const chillerKeyPrefix = "chiller_"

var newestFirst = bson.D{{Key: "_id", Value: -1}}

type snapshotDoc struct {
	RawData map[string]any `bson:"raw_data"`
}

// TelemetryRepository reads live plant snapshots. Each snapshot holds a raw_data
// map keyed by equipment id; the newest snapshot wins.
type TelemetryRepository struct {
	coll *mongo.Collection
}

// NewTelemetryRepository creates a TelemetryRepository over the snapshot collection.
func NewTelemetryRepository(coll *mongo.Collection) TelemetryRepository {
	return TelemetryRepository{coll: coll}
}

// LatestEquipmentMetrics returns the metrics of the newest snapshot that carries equipmentID.
func (r TelemetryRepository) LatestEquipmentMetrics(ctx context.Context, equipmentID string) (domain.EquipmentMetrics, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("equipment_id", equipmentID),
	))
	defer span.End()

	if err := domain.ValidateEquipmentID(equipmentID); telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	field := "raw_data." + equipmentID
	var doc snapshotDoc
	err := r.coll.FindOne(spanCtx,
		bson.D{{Key: field, Value: bson.D{{Key: "$exists", Value: true}}}},
		options.FindOne().SetSort(newestFirst).SetProjection(bson.D{{Key: field, Value: 1}}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, storeErr("find equipment snapshot", err)
	}

	raw, ok := doc.RawData[equipmentID]
	if !ok {
		return nil, false, nil
	}
	return toMetrics(raw), true, nil
}

// LatestChillerMetrics returns every chiller_* entry of the newest snapshot.
func (r TelemetryRepository) LatestChillerMetrics(ctx context.Context) (map[string]domain.EquipmentMetrics, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var doc snapshotDoc
	err := r.coll.FindOne(spanCtx, bson.D{}, options.FindOne().SetSort(newestFirst)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return map[string]domain.EquipmentMetrics{}, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, storeErr("find latest snapshot", err)
	}

	chillers := make(map[string]domain.EquipmentMetrics)
	for key, raw := range doc.RawData {
		if strings.HasPrefix(key, chillerKeyPrefix) {
			chillers[key] = toMetrics(raw)
		}
	}
	return chillers, nil
}

func toMetrics(raw any) domain.EquipmentMetrics {
	if m, ok := plain(raw).(map[string]any); ok {
		return domain.EquipmentMetrics(m)
	}
	return domain.EquipmentMetrics{"value": plain(raw)}
}

// InitTelemetryRepository is a Symbiont initializer for TelemetryRepository.
type InitTelemetryRepository struct {
	Client     *mongo.Client `resolve:""`
	Database   string        `config:"MONGODB_REALTIME_DATABASE" default:"realtime_data"`
	Collection string        `config:"MONGODB_REALTIME_COLLECTION" default:"cp10"`
}

// Initialize registers the TelemetryRepository in the dependency container.
func (i InitTelemetryRepository) Initialize(ctx context.Context) (context.Context, error) {
	coll := i.Client.Database(i.Database).Collection(i.Collection)
	depend.Register[domain.TelemetryRepository](NewTelemetryRepository(coll))
	return ctx, nil
}
