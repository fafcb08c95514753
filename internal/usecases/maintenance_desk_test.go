package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/common"
	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var siteLoc = time.FixedZone("ICT", 7*60*60)

func maintenanceRecord() domain.MaintenanceRecord {
	return domain.MaintenanceRecord{
		DeviceID:         "chiller_3",
		UnderMaintenance: true,
		History: []domain.MaintenanceTicket{
			{
				TicketStartedBy: "Somchai",
				Technician:      "Anan",
				Description:     "Compressor noise",
				ReportedAt:      common.Ptr(time.Date(2026, 1, 26, 2, 0, 0, 0, time.UTC)),
			},
			{
				TicketStartedBy: "Malee",
				TicketClosedBy:  common.Ptr("Malee"),
				Technician:      "Anan",
				Description:     "Oil leak",
				ReportedAt:      common.Ptr(time.Date(2026, 1, 10, 3, 0, 0, 0, time.UTC)),
				ResolvedAt:      common.Ptr(time.Date(2026, 1, 11, 3, 0, 0, 0, time.UTC)),
			},
		},
	}
}

func TestMaintenanceDeskImpl_Status(t *testing.T) {
	tests := map[string]struct {
		deviceID        string
		setExpectations func(repo *domain.MockMaintenanceRepository)
		expectedStatus  MaintenanceStatus
		expectedFound   bool
		expectedErr     error
	}{
		"with-history": {
			deviceID: "chiller_3",
			setExpectations: func(repo *domain.MockMaintenanceRepository) {
				repo.EXPECT().GetMaintenanceRecord(mock.Anything, "chiller_3").Return(maintenanceRecord(), true, nil)
			},
			expectedStatus: MaintenanceStatus{
				DeviceID:         "chiller_3",
				UnderMaintenance: true,
				TicketStartedBy:  common.Ptr("Somchai"),
				Technician:       common.Ptr("Anan"),
				ReportedAt:       common.Ptr(time.Date(2026, 1, 26, 9, 0, 0, 0, siteLoc)),
			},
			expectedFound: true,
		},
		"without-history": {
			deviceID: "pchp_1",
			setExpectations: func(repo *domain.MockMaintenanceRepository) {
				repo.EXPECT().GetMaintenanceRecord(mock.Anything, "pchp_1").Return(domain.MaintenanceRecord{DeviceID: "pchp_1"}, true, nil)
			},
			expectedStatus: MaintenanceStatus{DeviceID: "pchp_1"},
			expectedFound:  true,
		},
		"nonexistent-device": {
			deviceID: "nonexistent_device",
			setExpectations: func(repo *domain.MockMaintenanceRepository) {
				repo.EXPECT().GetMaintenanceRecord(mock.Anything, "nonexistent_device").Return(domain.MaintenanceRecord{}, false, nil)
			},
		},
		"store-error": {
			deviceID: "chiller_3",
			setExpectations: func(repo *domain.MockMaintenanceRepository) {
				repo.EXPECT().GetMaintenanceRecord(mock.Anything, "chiller_3").Return(domain.MaintenanceRecord{}, false, errors.New("boom"))
			},
			expectedErr: errors.New("boom"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockMaintenanceRepository(t)
			tt.setExpectations(repo)

			md := NewMaintenanceDeskImpl(repo, domain.NewMockCurrentTimeProvider(t), siteLoc)
			status, found, err := md.Status(context.Background(), tt.deviceID)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedStatus.ReportedAt != nil {
				require.NotNil(t, status.ReportedAt)
				assert.True(t, tt.expectedStatus.ReportedAt.Equal(*status.ReportedAt))
				assert.Equal(t, siteLoc, status.ReportedAt.Location())
				status.ReportedAt = tt.expectedStatus.ReportedAt
			}
			assert.Equal(t, tt.expectedStatus, status)
		})
	}
}

func TestMaintenanceDeskImpl_History(t *testing.T) {
	now := time.Date(2026, 1, 27, 10, 0, 0, 0, siteLoc)

	tests := map[string]struct {
		startDate, endDate string
		setExpectations    func(repo *domain.MockMaintenanceRepository)
		expectedTickets    []string
		expectedErr        string
	}{
		"no-range": {
			setExpectations: func(repo *domain.MockMaintenanceRepository) {
				repo.EXPECT().GetMaintenanceRecord(mock.Anything, "chiller_3").Return(maintenanceRecord(), true, nil)
			},
			expectedTickets: []string{"Compressor noise", "Oil leak"},
		},
		"absolute-range": {
			startDate: "2026-01-10",
			endDate:   "2026-01-10",
			setExpectations: func(repo *domain.MockMaintenanceRepository) {
				repo.EXPECT().GetMaintenanceRecord(mock.Anything, "chiller_3").Return(maintenanceRecord(), true, nil)
			},
			expectedTickets: []string{"Oil leak"},
		},
		"relative-start": {
			startDate: "yesterday",
			setExpectations: func(repo *domain.MockMaintenanceRepository) {
				repo.EXPECT().GetMaintenanceRecord(mock.Anything, "chiller_3").Return(maintenanceRecord(), true, nil)
			},
			expectedTickets: []string{"Compressor noise"},
		},
		"no-record": {
			setExpectations: func(repo *domain.MockMaintenanceRepository) {
				repo.EXPECT().GetMaintenanceRecord(mock.Anything, "chiller_3").Return(domain.MaintenanceRecord{}, false, nil)
			},
			expectedTickets: []string{},
		},
		"invalid-start": {
			startDate:       "not a date at all",
			setExpectations: func(*domain.MockMaintenanceRepository) {},
			expectedErr:     `invalid start_date "not a date at all"`,
		},
		"reversed-range": {
			startDate:       "2026-01-20",
			endDate:         "2026-01-10",
			setExpectations: func(*domain.MockMaintenanceRepository) {},
			expectedErr:     "end_date must not be before start_date",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockMaintenanceRepository(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(now)
			tt.setExpectations(repo)

			md := NewMaintenanceDeskImpl(repo, timeProvider, siteLoc)
			views, err := md.History(context.Background(), "chiller_3", tt.startDate, tt.endDate)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)

			descriptions := make([]string, 0, len(views))
			for _, v := range views {
				descriptions = append(descriptions, v.Description)
			}
			assert.Equal(t, tt.expectedTickets, descriptions)
		})
	}
}

func TestMaintenanceDeskImpl_Propose(t *testing.T) {
	now := time.Date(2026, 1, 27, 3, 15, 42, 0, time.UTC)

	tests := map[string]struct {
		setExpectations  func(repo *domain.MockMaintenanceRepository, timeProvider *domain.MockCurrentTimeProvider)
		expectedProposal MaintenanceProposal
		expectedErr      error
	}{
		"success": {
			setExpectations: func(repo *domain.MockMaintenanceRepository, timeProvider *domain.MockCurrentTimeProvider) {
				repo.EXPECT().GetMaintenanceRecord(mock.Anything, "chiller_3").Return(maintenanceRecord(), true, nil)
				timeProvider.EXPECT().Now().Return(now)
			},
			expectedProposal: MaintenanceProposal{
				DeviceID:        "chiller_3",
				MaintenanceFlag: true,
				ReporterName:    "Somchai",
				TechnicianName:  "Anan",
				Time:            "2026-01-27T10:15:42",
				Reason:          "Bearing check",
			},
		},
		"device-not-found": {
			setExpectations: func(repo *domain.MockMaintenanceRepository, _ *domain.MockCurrentTimeProvider) {
				repo.EXPECT().GetMaintenanceRecord(mock.Anything, "chiller_3").Return(domain.MaintenanceRecord{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("Device chiller_3 not found"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockMaintenanceRepository(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			tt.setExpectations(repo, timeProvider)

			md := NewMaintenanceDeskImpl(repo, timeProvider, siteLoc)
			got, err := md.Propose(context.Background(), "chiller_3", "Somchai", "Anan", "Bearing check")
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedProposal, got)
		})
	}
}

func TestInitMaintenanceDesk_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	i := InitMaintenanceDesk{
		Repo:         domain.NewMockMaintenanceRepository(t),
		TimeProvider: domain.NewMockCurrentTimeProvider(t),
		Location:     siteLoc,
	}
	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[MaintenanceDesk]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
}
