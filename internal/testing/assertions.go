package testing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/format"
	"github.com/LeJamon/goMFS/internal/core/tier"
)

// RequireNumber asserts that two Numbers compare equal within the Number
// tolerance.
func RequireNumber(t *testing.T, expected, actual bignum.Number) {
	t.Helper()
	require.Truef(t, expected.Equal(actual),
		"expected %s (%s), got %s (%s)",
		expected, format.Number(expected), actual, format.Number(actual))
}

// RequireFish asserts the balance.
func RequireFish(t *testing.T, env *TestEnv, expected bignum.Number) {
	t.Helper()
	RequireNumber(t, expected, env.Fish())
}

// RequireFishAtLeast asserts a lower bound on the balance.
func RequireFishAtLeast(t *testing.T, env *TestEnv, min bignum.Number) {
	t.Helper()
	actual := env.Fish()
	require.Truef(t, actual.GreaterOrEqual(min),
		"expected at least %s fish, got %s", format.Number(min), format.Number(actual))
}

// RequireTier asserts the current tier.
func RequireTier(t *testing.T, env *TestEnv, expected tier.Tier) {
	t.Helper()
	require.Equal(t, expected, env.Game().CurrentTier(), "current tier")
}

// RequireContainers asserts the number of entries in a tier's container.
func RequireContainers(t *testing.T, env *TestEnv, tr tier.Tier, expected int) {
	t.Helper()
	require.Equal(t, expected, env.State().Containers.Len(tr), "%s container entries", tr)
}

// RequireBuy asserts that a purchase succeeds.
func RequireBuy(t *testing.T, env *TestEnv, id string) {
	t.Helper()
	before := env.Fish()
	require.Truef(t, env.Game().Buy(id), "buy %s with %s fish", id, format.Number(before))
}

// RequireNoBuy asserts that a purchase is refused and changes nothing.
func RequireNoBuy(t *testing.T, env *TestEnv, id string) {
	t.Helper()
	before := env.State()
	require.Falsef(t, env.Game().Buy(id), "buy %s should fail", id)
	RequireNumber(t, before.Fish, env.Fish())
}

// RequireUnlocked asserts that a one-time unlock is owned.
func RequireUnlocked(t *testing.T, env *TestEnv, id string) {
	t.Helper()
	require.True(t, env.State().IsUnlocked(id), "%s unlocked", id)
}

// RequireSaved asserts that DefaultSlot holds a save.
func RequireSaved(t *testing.T, env *TestEnv) {
	t.Helper()
	_, err := env.Store().Get(context.Background(), DefaultSlot)
	require.NoError(t, err, "slot %s", DefaultSlot)
}
