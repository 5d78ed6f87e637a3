package domain

import (
	"context"
	"time"
)

// Player represents the persisted state of one external player
type Player struct {
	ID            int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	ExternalID    string    `json:"user_id" gorm:"uniqueIndex;not null;type:varchar(64)"`
	DepositTotal  float64   `json:"deposit_amount" gorm:"type:numeric(20,2);not null"`
	Chance        int       `json:"chance" gorm:"type:integer;not null"`
	Energy        int       `json:"energy" gorm:"type:integer;not null"`
	LastLoginDate *Date     `json:"last_login_date" gorm:"type:date"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Player
func (p Player) TableName() string {
	return "players"
}

// NewPlayer returns the implicit state of a player that has never been persisted
func NewPlayer(externalID string, policy EnergyPolicy) *Player {
	return &Player{
		ExternalID:   externalID,
		DepositTotal: 0,
		Chance:       ChanceBaseline,
		Energy:       policy.InitialEnergy,
	}
}

// EventKind is the kind of deposit notification received from the betting platform
type EventKind string

const (
	// EventDeposit is a plain deposit posted to the deposit endpoint
	EventDeposit EventKind = "deposit"

	// EventRegistration is the "reg" postback
	EventRegistration EventKind = "reg"

	// EventFirstDeposit is the "dep" postback
	EventFirstDeposit EventKind = "dep"

	// EventRedeposit is the "redep" postback
	EventRedeposit EventKind = "redep"

	// EventUnspecified is a postback without a recognised event
	EventUnspecified EventKind = ""
)

// ParsePostbackEvent maps the postback "event" parameter onto an EventKind.
// Unknown values are treated as unspecified.
func ParsePostbackEvent(raw string) EventKind {
	switch EventKind(raw) {
	case EventRegistration, EventFirstDeposit, EventRedeposit:
		return EventKind(raw)
	default:
		return EventUnspecified
	}
}

// RecomputesChance reports whether the event derives chance from the new total
func (k EventKind) RecomputesChance() bool {
	return k == EventDeposit || k == EventRedeposit
}

// ResetsChance reports whether the event forces chance back to the baseline
func (k EventKind) ResetsChance() bool {
	return k == EventFirstDeposit
}

// StampsLogin reports whether the event sets last_login_date to today
func (k EventKind) StampsLogin() bool {
	return k == EventRegistration || k == EventFirstDeposit
}

// DepositWrite is the deposit-owned slice of a player row written by a single upsert.
// Energy is only used when the row is inserted.
type DepositWrite struct {
	ExternalID    string
	DepositTotal  float64
	Chance        int
	UpdateChance  bool
	LastLoginDate *Date
	InitialEnergy int
}

// PlayerRepository defines the interface for player data
//
//go:generate mockgen -source=player.go -destination=mocks/player_mock.go -package=mocks
type PlayerRepository interface {
	GetByExternalID(ctx context.Context, externalID string) (*Player, error)
	UpsertDeposit(ctx context.Context, write DepositWrite) (*Player, error)
	EnsureExists(ctx context.Context, player *Player) (*Player, bool, error)
	RefillEnergy(ctx context.Context, externalID string, expectedLast *Date, today Date, grant, maxEnergy int) (bool, error)
	ConsumeEnergy(ctx context.Context, externalID string) (bool, error)
	GrantEnergy(ctx context.Context, externalID string, amount, maxEnergy int) error
	ListExternalIDs(ctx context.Context) ([]string, error)
}

// Draw is the outcome of a successful prediction draw
type Draw struct {
	Player     *Player    `json:"player"`
	Energy     int        `json:"energy"`
	Prediction Prediction `json:"prediction"`
}

// PlayerUseCase defines the interface for player state business logic
type PlayerUseCase interface {
	ApplyDeposit(ctx context.Context, externalID string, amount float64, kind EventKind) (*Player, error)
	CheckAndRefillEnergy(ctx context.Context, externalID string, today Date) (*Player, error)
	DrawPrediction(ctx context.Context, externalID string) (*Draw, error)
	Login(ctx context.Context, externalID string) (*Player, error)
	GetPlayer(ctx context.Context, externalID string) (*Player, error)
}
