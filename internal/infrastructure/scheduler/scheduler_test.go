package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/domain/mocks"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDailyAt(t *testing.T) {
	tests := []struct {
		in      string
		hour    uint
		minute  uint
		wantErr bool
	}{
		{in: "00:00", hour: 0, minute: 0},
		{in: "23:59", hour: 23, minute: 59},
		{in: " 07:05 ", hour: 7, minute: 5},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			hour, minute, err := ParseDailyAt(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, hour)
			assert.Equal(t, tt.minute, minute)
		})
	}
}

func TestCycleIDFor(t *testing.T) {
	day, err := domain.ParseDate("2024-05-10")
	require.NoError(t, err)

	assert.Equal(t, "daily-2024-05-10", CycleIDFor(day))
}

func TestRunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day, err := domain.ParseDate("2024-05-10")
	require.NoError(t, err)

	clk := mocks.NewMockClock(ctrl)
	clk.EXPECT().Today().Return(day).Times(2)

	cycleUC := mocks.NewMockEnergyCycleUseCase(ctrl)
	gomock.InOrder(
		cycleUC.EXPECT().RunBulkEnergyGrant(gomock.Any(), "daily-2024-05-10").
			Return(&domain.CycleResult{CycleID: "daily-2024-05-10", UpdatedCount: 3, Succeeded: true}, nil),
		cycleUC.EXPECT().RunBulkEnergyGrant(gomock.Any(), "daily-2024-05-10").
			Return(nil, domain.NewCycleInProgressError("daily-2024-05-10")),
	)

	s, err := NewScheduler(cycleUC, clk, time.UTC, "00:00", logger.NewNop())
	require.NoError(t, err)

	result, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.UpdatedCount)

	_, err = s.RunOnce(context.Background())
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeCycleInProgress, appErr.Code)
}

func TestStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, err := NewScheduler(mocks.NewMockEnergyCycleUseCase(ctrl), mocks.NewMockClock(ctrl), time.UTC, "03:30", logger.NewNop())
	require.NoError(t, err)

	require.NoError(t, s.Start())
	require.NoError(t, s.Start())
	assert.NoError(t, s.Stop())
	assert.NoError(t, s.Stop())
}

func TestStartAfterStopGetsLiveContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, err := NewScheduler(mocks.NewMockEnergyCycleUseCase(ctrl), mocks.NewMockClock(ctrl), time.UTC, "03:30", logger.NewNop())
	require.NoError(t, err)

	require.NoError(t, s.Start())
	first := s.ctx
	require.NoError(t, s.Stop())
	assert.ErrorIs(t, first.Err(), context.Canceled)

	require.NoError(t, s.Start())
	assert.NoError(t, s.ctx.Err())
	require.NoError(t, s.Stop())
	assert.Error(t, s.ctx.Err())
}

func TestNewScheduler_InvalidTime(t *testing.T) {
	_, err := NewScheduler(nil, nil, time.UTC, "25:00", logger.NewNop())
	assert.Error(t, err)
}
