package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSetMaintenanceFlagImpl_Execute(t *testing.T) {
	now := time.Date(2026, 1, 27, 3, 0, 0, 0, time.UTC)
	reported := time.Date(2026, 1, 27, 9, 45, 0, 0, siteLoc)

	tests := map[string]struct {
		change          MaintenanceFlagChange
		setExpectations func(
			repo *domain.MockMaintenanceRepository,
			publisher *domain.MockPlantEventPublisher,
			timeProvider *domain.MockCurrentTimeProvider,
		)
		expectedErr error
	}{
		"open-tickets": {
			change: MaintenanceFlagChange{
				DeviceIDs:      []string{"chiller_3", "pchp_1"},
				Flag:           true,
				ReporterName:   "Somchai",
				TechnicianName: "Anan",
				Time:           "2026-01-27T09:45:00",
				Reason:         "Bearing check",
			},
			setExpectations: func(repo *domain.MockMaintenanceRepository, publisher *domain.MockPlantEventPublisher, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(now)
				for _, id := range []string{"chiller_3", "pchp_1"} {
					repo.EXPECT().GetMaintenanceRecord(mock.Anything, id).Return(domain.MaintenanceRecord{DeviceID: id}, true, nil)
					repo.EXPECT().
						OpenTicket(mock.Anything, id, mock.MatchedBy(func(ticket domain.MaintenanceTicket) bool {
							return ticket.TicketStartedBy == "Somchai" &&
								ticket.Technician == "Anan" &&
								ticket.Description == "Bearing check" &&
								ticket.ReportedAt != nil && ticket.ReportedAt.Equal(reported)
						})).
						Return(nil)
				}
				publisher.EXPECT().
					Publish(mock.Anything, mock.MatchedBy(func(e domain.PlantEvent) bool {
						var payload maintenanceFlagChangedPayload
						_ = json.Unmarshal(e.Payload, &payload)
						return e.Type == domain.PlantEventType_MAINTENANCE_FLAG_CHANGED &&
							payload.DeviceID == e.EntityID &&
							payload.MaintenanceFlag
					})).
					Return(nil).
					Times(2)
			},
		},
		"close-ticket": {
			change: MaintenanceFlagChange{
				DeviceIDs:    []string{"chiller_3"},
				Flag:         false,
				ReporterName: "Malee",
			},
			setExpectations: func(repo *domain.MockMaintenanceRepository, publisher *domain.MockPlantEventPublisher, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(now)
				repo.EXPECT().GetMaintenanceRecord(mock.Anything, "chiller_3").Return(domain.MaintenanceRecord{DeviceID: "chiller_3"}, true, nil)
				repo.EXPECT().CloseTicket(mock.Anything, "chiller_3", "Malee", now).Return(nil)
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("publish failed"))
			},
		},
		"device-not-found-before-any-write": {
			change: MaintenanceFlagChange{
				DeviceIDs:    []string{"chiller_3", "ghost"},
				Flag:         true,
				ReporterName: "Somchai",
			},
			setExpectations: func(repo *domain.MockMaintenanceRepository, _ *domain.MockPlantEventPublisher, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(now)
				repo.EXPECT().GetMaintenanceRecord(mock.Anything, "chiller_3").Return(domain.MaintenanceRecord{DeviceID: "chiller_3"}, true, nil)
				repo.EXPECT().GetMaintenanceRecord(mock.Anything, "ghost").Return(domain.MaintenanceRecord{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("Device ghost not found"),
		},
		"missing-device": {
			change: MaintenanceFlagChange{ReporterName: "Somchai", Flag: true},
			setExpectations: func(_ *domain.MockMaintenanceRepository, _ *domain.MockPlantEventPublisher, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(now)
			},
			expectedErr: domain.NewValidationErr("device_id is required"),
		},
		"missing-reporter": {
			change: MaintenanceFlagChange{DeviceIDs: []string{"chiller_3"}, Flag: true},
			setExpectations: func(_ *domain.MockMaintenanceRepository, _ *domain.MockPlantEventPublisher, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(now)
			},
			expectedErr: domain.NewValidationErr("reporter_name is required"),
		},
		"invalid-time": {
			change: MaintenanceFlagChange{DeviceIDs: []string{"chiller_3"}, Flag: true, ReporterName: "Somchai", Time: "whenever"},
			setExpectations: func(_ *domain.MockMaintenanceRepository, _ *domain.MockPlantEventPublisher, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(now)
			},
			expectedErr: domain.NewValidationErr(`invalid time "whenever"`),
		},
		"open-ticket-error": {
			change: MaintenanceFlagChange{DeviceIDs: []string{"chiller_3"}, Flag: true, ReporterName: "Somchai"},
			setExpectations: func(repo *domain.MockMaintenanceRepository, _ *domain.MockPlantEventPublisher, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(now)
				repo.EXPECT().GetMaintenanceRecord(mock.Anything, "chiller_3").Return(domain.MaintenanceRecord{DeviceID: "chiller_3"}, true, nil)
				repo.EXPECT().OpenTicket(mock.Anything, "chiller_3", mock.Anything).Return(errors.New("write failed"))
			},
			expectedErr: errors.New("write failed"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockMaintenanceRepository(t)
			publisher := domain.NewMockPlantEventPublisher(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			tt.setExpectations(repo, publisher, timeProvider)

			uc := NewSetMaintenanceFlagImpl(repo, publisher, timeProvider, siteLoc, zerolog.Nop())
			err := uc.Execute(context.Background(), tt.change)
			assert.Equal(t, tt.expectedErr, err)
		})
	}
}

func TestInitSetMaintenanceFlag_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	i := InitSetMaintenanceFlag{
		Repo:         domain.NewMockMaintenanceRepository(t),
		Publisher:    domain.NewMockPlantEventPublisher(t),
		TimeProvider: domain.NewMockCurrentTimeProvider(t),
		Location:     siteLoc,
		Logger:       zerolog.Nop(),
	}
	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[SetMaintenanceFlag]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
}
