// Package testing provides test infrastructure for game scenarios.
//
// # Overview
//
// The testing package provides:
//   - TestEnv: a game driven by the real engine on a manual clock, with an
//     in-memory save slot
//   - Assertions: helpers for balances, tiers, containers and purchases
//
// # Basic Usage
//
//	func TestFirstRod(t *testing.T) {
//	    env := mfstest.NewTestEnv(t)
//
//	    env.Cast()
//	    env.Advance(time.Second)
//	    mfstest.RequireFish(t, env, bignum.One())
//
//	    env.Fund(bignum.FromInt(10))
//	    mfstest.RequireBuy(t, env, state.Rod)
//	}
//
// # Time
//
// Advance runs one engine tick per tick interval of simulated time, so
// container income, auto-collect timers and autosaves fire exactly as they
// would in a running server.
//
//	env.Tick()                  // one tick
//	env.Advance(10 * time.Second) // a hundred ticks at 10 Hz
//
// # Saves
//
// Every TestEnv autosaves into an in-memory store. Reload decodes the slot
// into a fresh game, which checks that the state survives persistence.
//
//	env.Save()
//	env.Reload()
package testing
