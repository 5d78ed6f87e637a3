package player

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/domain/mocks"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

type fixture struct {
	repo      *mocks.MockPlayerRepository
	generator *mocks.MockPredictionGenerator
	clock     *mocks.MockClock
	useCase   *PlayerUseCase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:      mocks.NewMockPlayerRepository(ctrl),
		generator: mocks.NewMockPredictionGenerator(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}
	f.useCase = &PlayerUseCase{
		playerRepo: f.repo,
		generator:  f.generator,
		clock:      f.clock,
		policy:     domain.DefaultEnergyPolicy(),
		logger:     logger.NewLogger("test", "debug"),
	}
	return f
}

func TestApplyDeposit_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		externalID string
		amount     float64
		code       string
	}{
		{name: "EmptyID", externalID: " ", amount: 10, code: domain.ErrCodeInvalidInput},
		{name: "Zero", externalID: "u1", amount: 0, code: domain.ErrCodeInvalidAmount},
		{name: "Negative", externalID: "u1", amount: -5, code: domain.ErrCodeInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, err := f.useCase.ApplyDeposit(ctx, tt.externalID, tt.amount, domain.EventRedeposit)

			assert.Nil(t, player)
			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestApplyDeposit_EventKinds(t *testing.T) {
	ctx := context.Background()
	today := mustDate(t, "2024-05-10")

	existing := func() *domain.Player {
		last := mustDate(t, "2024-05-01")
		return &domain.Player{
			ExternalID:    "u1",
			DepositTotal:  100,
			Chance:        50,
			Energy:        4,
			LastLoginDate: &last,
		}
	}

	tests := []struct {
		name         string
		kind         domain.EventKind
		wantChance   int
		updateChance bool
		stampsLogin  bool
	}{
		{name: "Deposit", kind: domain.EventDeposit, wantChance: 70, updateChance: true},
		{name: "Redeposit", kind: domain.EventRedeposit, wantChance: 70, updateChance: true},
		{name: "FirstDeposit", kind: domain.EventFirstDeposit, wantChance: domain.ChanceBaseline, updateChance: true, stampsLogin: true},
		{name: "Registration", kind: domain.EventRegistration, wantChance: 50, stampsLogin: true},
		{name: "Unspecified", kind: domain.EventUnspecified, wantChance: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(existing(), nil)
			if tt.stampsLogin {
				f.clock.EXPECT().Today().Return(today)
			}
			f.repo.EXPECT().UpsertDeposit(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, write domain.DepositWrite) (*domain.Player, error) {
					assert.Equal(t, 300.0, write.DepositTotal)
					assert.Equal(t, tt.wantChance, write.Chance)
					assert.Equal(t, tt.updateChance, write.UpdateChance)
					if tt.stampsLogin {
						require.NotNil(t, write.LastLoginDate)
						assert.Equal(t, today, *write.LastLoginDate)
					} else {
						assert.Nil(t, write.LastLoginDate)
					}
					return &domain.Player{ExternalID: "u1", DepositTotal: write.DepositTotal, Chance: write.Chance, Energy: 4}, nil
				})

			player, err := f.useCase.ApplyDeposit(ctx, "u1", 200, tt.kind)

			require.NoError(t, err)
			assert.Equal(t, 300.0, player.DepositTotal)
			assert.Equal(t, tt.wantChance, player.Chance)
			assert.Equal(t, 4, player.Energy)
		})
	}
}

func TestApplyDeposit_FreshPlayer(t *testing.T) {
	ctx := context.Background()

	for _, amount := range []float64{0.01, 5, 99.99, 100, 250, 1050, 10000} {
		f := newFixture(t)

		f.repo.EXPECT().GetByExternalID(ctx, "fresh").Return(nil, nil)
		f.repo.EXPECT().UpsertDeposit(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, write domain.DepositWrite) (*domain.Player, error) {
				assert.Equal(t, domain.DefaultInitialEnergy, write.InitialEnergy)
				return &domain.Player{ExternalID: write.ExternalID, DepositTotal: write.DepositTotal, Chance: write.Chance, Energy: write.InitialEnergy}, nil
			})

		player, err := f.useCase.ApplyDeposit(ctx, "fresh", amount, domain.EventRedeposit)

		require.NoError(t, err)
		assert.Equal(t, amount, player.DepositTotal)
		assert.Equal(t, domain.ComputeChance(amount), player.Chance)
	}
}

func TestApplyDeposit_StoreErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("Unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(nil, domain.ErrStoreNotConfigured)

		_, err := f.useCase.ApplyDeposit(ctx, "u1", 10, domain.EventDeposit)

		appErr, ok := domain.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrCodeStoreUnavailable, appErr.Code)
		assert.Equal(t, 503, appErr.HTTPStatus)
	})

	t.Run("Rejected", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(nil, nil)
		f.repo.EXPECT().UpsertDeposit(ctx, gomock.Any()).Return(nil, errors.New("check constraint violated"))

		_, err := f.useCase.ApplyDeposit(ctx, "u1", 10, domain.EventDeposit)

		appErr, ok := domain.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrCodeStoreError, appErr.Code)
		assert.Equal(t, "check constraint violated", appErr.Message)
	})
}

func TestCheckAndRefillEnergy(t *testing.T) {
	ctx := context.Background()
	today := mustDate(t, "2024-05-10")

	t.Run("UserNotFound", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByExternalID(ctx, "ghost").Return(nil, nil)

		_, err := f.useCase.CheckAndRefillEnergy(ctx, "ghost", today)

		appErr, ok := domain.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrCodeUserNotFound, appErr.Code)
	})

	t.Run("AlreadyGrantedToday", func(t *testing.T) {
		f := newFixture(t)
		last := today
		f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 2, LastLoginDate: &last}, nil)

		player, err := f.useCase.CheckAndRefillEnergy(ctx, "u1", today)

		require.NoError(t, err)
		assert.Equal(t, 2, player.Energy)
	})

	t.Run("TenDaysCappedAtThree", func(t *testing.T) {
		f := newFixture(t)
		last := today.AddDays(-10)
		gomock.InOrder(
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 2, LastLoginDate: &last}, nil),
			f.repo.EXPECT().RefillEnergy(ctx, "u1", &last, today, 3, 100).Return(true, nil),
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 5, LastLoginDate: &today}, nil),
		)

		player, err := f.useCase.CheckAndRefillEnergy(ctx, "u1", today)

		require.NoError(t, err)
		assert.Equal(t, 5, player.Energy)
		assert.Equal(t, today, *player.LastLoginDate)
	})

	t.Run("ReturnsStoredRowAfterRefill", func(t *testing.T) {
		f := newFixture(t)
		last := today.AddDays(-1)
		gomock.InOrder(
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 2, LastLoginDate: &last}, nil),
			f.repo.EXPECT().RefillEnergy(ctx, "u1", &last, today, 1, 100).Return(true, nil),
			// a draw landed between the first read and the refill
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 2, LastLoginDate: &today}, nil),
		)

		player, err := f.useCase.CheckAndRefillEnergy(ctx, "u1", today)

		require.NoError(t, err)
		assert.Equal(t, 2, player.Energy)
	})

	t.Run("ReReadFailureFallsBackToComputed", func(t *testing.T) {
		f := newFixture(t)
		last := today.AddDays(-1)
		gomock.InOrder(
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 2, LastLoginDate: &last}, nil),
			f.repo.EXPECT().RefillEnergy(ctx, "u1", &last, today, 1, 100).Return(true, nil),
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(nil, errors.New("connection reset")),
		)

		player, err := f.useCase.CheckAndRefillEnergy(ctx, "u1", today)

		require.NoError(t, err)
		assert.Equal(t, 3, player.Energy)
		assert.Equal(t, today, *player.LastLoginDate)
	})

	t.Run("CappedAtMax", func(t *testing.T) {
		f := newFixture(t)
		last := today.AddDays(-10)
		gomock.InOrder(
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 99, LastLoginDate: &last}, nil),
			f.repo.EXPECT().RefillEnergy(ctx, "u1", &last, today, 3, 100).Return(true, nil),
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 100, LastLoginDate: &today}, nil),
		)

		player, err := f.useCase.CheckAndRefillEnergy(ctx, "u1", today)

		require.NoError(t, err)
		assert.Equal(t, 100, player.Energy)
	})

	t.Run("NullLastLoginCountsAsOneDay", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 0}, nil),
			f.repo.EXPECT().RefillEnergy(ctx, "u1", nil, today, 1, 100).Return(true, nil),
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 1, LastLoginDate: &today}, nil),
		)

		player, err := f.useCase.CheckAndRefillEnergy(ctx, "u1", today)

		require.NoError(t, err)
		assert.Equal(t, 1, player.Energy)
	})

	t.Run("LostCompareAndSet", func(t *testing.T) {
		f := newFixture(t)
		last := today.AddDays(-1)
		gomock.InOrder(
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 2, LastLoginDate: &last}, nil),
			f.repo.EXPECT().RefillEnergy(ctx, "u1", &last, today, 1, 100).Return(false, nil),
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 3, LastLoginDate: &today}, nil),
		)

		player, err := f.useCase.CheckAndRefillEnergy(ctx, "u1", today)

		require.NoError(t, err)
		assert.Equal(t, 3, player.Energy)
	})

	t.Run("LastLoginInFuture", func(t *testing.T) {
		f := newFixture(t)
		last := today.AddDays(2)
		f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 2, LastLoginDate: &last}, nil)

		player, err := f.useCase.CheckAndRefillEnergy(ctx, "u1", today)

		require.NoError(t, err)
		assert.Equal(t, 2, player.Energy)
		assert.Equal(t, last, *player.LastLoginDate)
	})
}

func TestDrawPrediction(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 5, Chance: 55}, nil),
			f.repo.EXPECT().ConsumeEnergy(ctx, "u1").Return(true, nil),
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 4, Chance: 55}, nil),
			f.generator.EXPECT().Next(55).Return(domain.Prediction{Coefficient: 2.35, Range: "mid"}),
		)

		draw, err := f.useCase.DrawPrediction(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, 4, draw.Energy)
		assert.Equal(t, 2.35, draw.Prediction.Coefficient)
	})

	t.Run("ReReadFailureKeepsDraw", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 5, Chance: 55}, nil),
			f.repo.EXPECT().ConsumeEnergy(ctx, "u1").Return(true, nil),
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(nil, errors.New("connection reset")),
			f.generator.EXPECT().Next(55).Return(domain.Prediction{Coefficient: 1.2, Range: "low"}),
		)

		draw, err := f.useCase.DrawPrediction(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, 4, draw.Energy)
		assert.Equal(t, 1.2, draw.Prediction.Coefficient)
	})

	t.Run("InsufficientEnergy", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 0}, nil)
		f.repo.EXPECT().ConsumeEnergy(ctx, "u1").Return(false, nil)

		draw, err := f.useCase.DrawPrediction(ctx, "u1")

		assert.Nil(t, draw)
		assert.ErrorIs(t, err, domain.ErrInsufficientEnergy)
		appErr, ok := domain.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 409, appErr.HTTPStatus)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByExternalID(ctx, "ghost").Return(nil, nil)

		_, err := f.useCase.DrawPrediction(ctx, "ghost")

		appErr, ok := domain.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrCodeUserNotFound, appErr.Code)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	today := mustDate(t, "2024-05-10")

	t.Run("CreatesUnseenPlayer", func(t *testing.T) {
		f := newFixture(t)
		f.clock.EXPECT().Today().Return(today)
		f.repo.EXPECT().EnsureExists(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Player) (*domain.Player, bool, error) {
				assert.Equal(t, 1, p.Energy)
				assert.Equal(t, today, *p.LastLoginDate)
				return p, true, nil
			})

		player, err := f.useCase.Login(ctx, "new")

		require.NoError(t, err)
		assert.Equal(t, 1, player.Energy)
	})

	t.Run("RefillsExistingPlayer", func(t *testing.T) {
		f := newFixture(t)
		last := today.AddDays(-2)
		stored := &domain.Player{ExternalID: "u1", Energy: 1, LastLoginDate: &last}
		f.clock.EXPECT().Today().Return(today)
		f.repo.EXPECT().EnsureExists(ctx, gomock.Any()).Return(stored, false, nil)
		gomock.InOrder(
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(stored, nil),
			f.repo.EXPECT().RefillEnergy(ctx, "u1", &last, today, 2, 100).Return(true, nil),
			f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Energy: 3, LastLoginDate: &today}, nil),
		)

		player, err := f.useCase.Login(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, 3, player.Energy)
	})
}

func TestGetPlayer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.repo.EXPECT().GetByExternalID(ctx, "u1").Return(&domain.Player{ExternalID: "u1", Chance: 42}, nil)
	player, err := f.useCase.GetPlayer(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 42, player.Chance)

	_, err = f.useCase.GetPlayer(ctx, "")
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidInput, appErr.Code)
}
