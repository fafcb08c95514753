package domain

import (
	"context"
	"fmt"
	"regexp"
)

// EquipmentMetrics is the raw metric map reported for one device in a telemetry snapshot.
type EquipmentMetrics map[string]any

var equipmentIDRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidateEquipmentID rejects ids that cannot be used as a telemetry field key.
func ValidateEquipmentID(id string) error {
	if !equipmentIDRe.MatchString(id) {
		return NewValidationErr(fmt.Sprintf("invalid equipment id %q", id))
	}
	return nil
}

// TelemetryRepository reads the live telemetry snapshots of the plant.
type TelemetryRepository interface {
	// LatestEquipmentMetrics returns the metrics of one device from the newest snapshot
	// that contains it. found is false when no snapshot reports the device.
	LatestEquipmentMetrics(ctx context.Context, equipmentID string) (EquipmentMetrics, bool, error)
	// LatestChillerMetrics returns every chiller entry of the newest snapshot keyed by chiller id.
	LatestChillerMetrics(ctx context.Context) (map[string]EquipmentMetrics, error)
}
