//go:generate mockgen -source=expected_keepers.go -destination=../mocks/expected_keepers_mocks.go -package=mocks

package types

import (
	"context"
	"time"
)

// FeeGate reports whether fees owed to the oracle have been paid.
type FeeGate interface {
	IsRegistrationFeePaid(ctx context.Context, address string, amount uint64) (bool, error)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// AdminAuthority decides which callers may run admin operations.
type AdminAuthority interface {
	IsAdmin(ctx context.Context, caller string) bool
}
