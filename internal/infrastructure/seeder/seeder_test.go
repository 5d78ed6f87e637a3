package seeder

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

func TestSeedPlayers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	repo := mocks.NewMockPlayerRepository(ctrl)
	uc := mocks.NewMockPlayerUseCase(ctrl)

	repo.EXPECT().GetByExternalID(ctx, "a").Return(nil, nil)
	repo.EXPECT().GetByExternalID(ctx, "b").Return(&domain.Player{ExternalID: "b"}, nil)
	repo.EXPECT().GetByExternalID(ctx, "c").Return(nil, errors.New("timeout"))
	uc.EXPECT().ApplyDeposit(ctx, "a", 40.0, domain.EventDeposit).
		Return(&domain.Player{ExternalID: "a", DepositTotal: 40, Chance: 38}, nil)

	s := NewSeeder(repo, uc, logger.NewNop())
	created, err := s.SeedPlayers(ctx, []DemoPlayer{
		{ExternalID: "a", Deposit: 40},
		{ExternalID: "b", Deposit: 100},
		{ExternalID: "c", Deposit: 100},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestSeedPlayers_StopsOnWriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	repo := mocks.NewMockPlayerRepository(ctrl)
	uc := mocks.NewMockPlayerUseCase(ctrl)

	repo.EXPECT().GetByExternalID(ctx, "a").Return(nil, nil)
	uc.EXPECT().ApplyDeposit(ctx, "a", 40.0, domain.EventDeposit).Return(nil, domain.NewStoreError("upsert deposit", errors.New("disk full")))

	_, err := NewSeeder(repo, uc, logger.NewNop()).SeedPlayers(ctx, []DemoPlayer{
		{ExternalID: "a", Deposit: 40},
		{ExternalID: "b", Deposit: 100},
	})

	assert.Error(t, err)
}
