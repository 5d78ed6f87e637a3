package domain

const (
	DefaultMaxEnergy     = 100
	DefaultCatchUpCap    = 3
	DefaultInitialEnergy = 1
)

// EnergyPolicy holds the accrual and consumption rules for player energy
type EnergyPolicy struct {
	MaxEnergy     int
	CatchUpCap    int
	InitialEnergy int
}

// DefaultEnergyPolicy returns the production rules: max 100, three days of catch-up, one to start
func DefaultEnergyPolicy() EnergyPolicy {
	return EnergyPolicy{
		MaxEnergy:     DefaultMaxEnergy,
		CatchUpCap:    DefaultCatchUpCap,
		InitialEnergy: DefaultInitialEnergy,
	}
}

// ElapsedDays returns the whole calendar days between the last accrual and today.
// A player that never received an accrual counts as one day behind.
func (p EnergyPolicy) ElapsedDays(last *Date, today Date) int {
	if last == nil || last.IsZero() {
		return 1
	}
	days := today.DaysSince(*last)
	if days < 0 {
		return 0
	}
	return days
}

// GrantFor returns how much energy elapsedDays of absence is worth, before the max cap
func (p EnergyPolicy) GrantFor(elapsedDays int) int {
	if elapsedDays <= 0 {
		return 0
	}
	if elapsedDays > p.CatchUpCap {
		return p.CatchUpCap
	}
	return elapsedDays
}

// Refill returns min(current + min(elapsed, cap), max). It never lowers current.
func (p EnergyPolicy) Refill(current, elapsedDays int) int {
	next := current + p.GrantFor(elapsedDays)
	if next > p.MaxEnergy {
		next = p.MaxEnergy
	}
	if next < current {
		return current
	}
	return next
}

// Grant adds one unit for the bulk cycle, capped at max
func (p EnergyPolicy) Grant(current int) int {
	if current >= p.MaxEnergy {
		return current
	}
	return current + 1
}

// Consume debits one unit for a prediction draw
func (p EnergyPolicy) Consume(current int) (int, error) {
	if current < 1 {
		return current, ErrInsufficientEnergy
	}
	return current - 1, nil
}
