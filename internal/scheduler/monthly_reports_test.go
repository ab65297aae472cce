package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	reportingmocks "github.com/dfcastro/commission-tracker-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestMonthlyReportSyncService_syncMonthlyReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)

	// Cron rodando em 1º de março: fecha fevereiro
	service := &MonthlyReportSyncService{
		config: MonthlyReportSyncConfig{
			CronSchedule:  "0 5 1 * *",
			SyncEnabled:   true,
			MonthLookBack: 1,
		},
		reportService: mockReporter,
		now:           func() time.Time { return time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC) },
	}

	mockReporter.EXPECT().
		SyncMonthlyReports(2, 2024).
		Return(3, nil)

	service.syncMonthlyReports()
}

func TestMonthlyReportSyncService_lookBackCrossesYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)

	// Lookback de 3 meses a partir de janeiro: dezembro, novembro e outubro
	service := &MonthlyReportSyncService{
		config: MonthlyReportSyncConfig{
			CronSchedule:  "0 5 1 * *",
			SyncEnabled:   true,
			MonthLookBack: 3,
		},
		reportService: mockReporter,
		now:           func() time.Time { return time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC) },
	}

	mockReporter.EXPECT().SyncMonthlyReports(12, 2023).Return(2, nil)
	mockReporter.EXPECT().SyncMonthlyReports(11, 2023).Return(2, nil)
	mockReporter.EXPECT().SyncMonthlyReports(10, 2023).Return(2, nil)

	service.syncMonthlyReports()
}

func TestMonthlyReportSyncService_errorInOnePeriodContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)

	service := &MonthlyReportSyncService{
		config: MonthlyReportSyncConfig{
			CronSchedule:  "0 5 1 * *",
			SyncEnabled:   true,
			MonthLookBack: 2,
		},
		reportService: mockReporter,
		now:           func() time.Time { return time.Date(2024, 6, 1, 5, 0, 0, 0, time.UTC) },
	}

	mockReporter.EXPECT().SyncMonthlyReports(5, 2024).Return(0, assert.AnError)
	mockReporter.EXPECT().SyncMonthlyReports(4, 2024).Return(4, nil)

	service.syncMonthlyReports()
}
