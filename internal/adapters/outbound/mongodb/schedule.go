package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ScheduleSettingsID is the _id of the single automation settings document.
const ScheduleSettingsID = "chiller_plant_schedule_setting"

type scheduleSettingsDoc struct {
	Profile map[string]profileDoc `bson:"profile"`
	Version int64                 `bson:"version"`
}

type profileDoc struct {
	NormalChiller   []domain.ScheduleEntry            `bson:"normal_chiller"`
	ExcludedChiller map[string][]domain.ScheduleEntry `bson:"excluded_chiller"`
}

// ScheduleRepository reads and updates the chiller plant schedule settings document.
type ScheduleRepository struct {
	coll *mongo.Collection
}

// NewScheduleRepository creates a ScheduleRepository over the automation settings collection.
func NewScheduleRepository(coll *mongo.Collection) ScheduleRepository {
	return ScheduleRepository{coll: coll}
}

// GetProfileSchedule returns the normal and excluded chiller schedules of one profile.
func (r ScheduleRepository) GetProfileSchedule(ctx context.Context, profile domain.ScheduleProfile) (domain.ProfileSchedule, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("profile", string(profile)),
	))
	defer span.End()

	var doc scheduleSettingsDoc
	err := r.coll.FindOne(spanCtx,
		bson.D{{Key: "_id", Value: ScheduleSettingsID}},
		options.FindOne().SetProjection(bson.D{
			{Key: "profile." + string(profile), Value: 1},
			{Key: "version", Value: 1},
		}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ProfileSchedule{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ProfileSchedule{}, false, storeErr("find schedule settings", err)
	}

	p, ok := doc.Profile[string(profile)]
	if !ok {
		return domain.ProfileSchedule{}, false, nil
	}

	excluded := p.ExcludedChiller
	if excluded == nil {
		excluded = map[string][]domain.ScheduleEntry{}
	}
	return domain.ProfileSchedule{
		Profile:         profile,
		NormalChiller:   p.NormalChiller,
		ExcludedChiller: excluded,
		Version:         doc.Version,
	}, true, nil
}

// ReplaceExcludedChillerSchedule sets the entry list of one excluded chiller and bumps the
// document version. Without an expected version the settings document is upserted; with one
// the write only applies when the stored version still matches, otherwise a ConflictErr is returned.
func (r ScheduleRepository) ReplaceExcludedChillerSchedule(ctx context.Context, rep domain.ScheduleReplacement) (domain.ScheduleWriteResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("profile", string(rep.Profile)),
		attribute.String("chiller_id", rep.ChillerID),
	))
	defer span.End()

	entries := rep.Entries
	if entries == nil {
		entries = []domain.ScheduleEntry{}
	}

	filter := bson.D{{Key: "_id", Value: ScheduleSettingsID}}
	if rep.ExpectedVersion != nil {
		filter = append(filter, versionFilter(*rep.ExpectedVersion))
	}

	path := fmt.Sprintf("profile.%s.excluded_chiller.%s", rep.Profile, rep.ChillerID)
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: path, Value: entries}}},
		{Key: "$inc", Value: bson.D{{Key: "version", Value: 1}}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "enable_schedule_control", Value: true}}},
	}

	res, err := r.coll.UpdateOne(spanCtx, filter, update,
		options.UpdateOne().SetUpsert(rep.ExpectedVersion == nil),
	)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ScheduleWriteResult{}, storeErr("update schedule settings", err)
	}

	if rep.ExpectedVersion != nil && res.MatchedCount == 0 {
		err := domain.NewConflictErr("Schedule conflict detected")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ScheduleWriteResult{}, err
	}

	result := domain.ScheduleWriteResult{ModifiedCount: res.ModifiedCount}
	if res.UpsertedID != nil {
		id := fmt.Sprint(plain(res.UpsertedID))
		result.UpsertedID = &id
	}
	return result, nil
}

// versionFilter matches documents written before versioning existed when expected is zero.
func versionFilter(expected int64) bson.E {
	if expected == 0 {
		return bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "version", Value: 0}},
			bson.D{{Key: "version", Value: bson.D{{Key: "$exists", Value: false}}}},
		}}
	}
	return bson.E{Key: "version", Value: expected}
}

// InitScheduleRepository is a Symbiont initializer for ScheduleRepository.
type InitScheduleRepository struct {
	Client     *mongo.Client `resolve:""`
	Database   string        `config:"MONGODB_AUTOMATION_DATABASE" default:"automation_settings"`
	Collection string        `config:"MONGODB_AUTOMATION_COLLECTION" default:"chiller_plant_schedule_setting"`
}

// Initialize registers the ScheduleRepository in the dependency container.
func (i InitScheduleRepository) Initialize(ctx context.Context) (context.Context, error) {
	coll := i.Client.Database(i.Database).Collection(i.Collection)
	depend.Register[domain.ScheduleRepository](NewScheduleRepository(coll))
	return ctx, nil
}
