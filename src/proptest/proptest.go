// Package proptest holds the gopter parameters shared by the property tests.
package proptest

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/leanovate/gopter"
)

const (
	// SeedEnv names the environment variable that pins the generator seed.
	SeedEnv = "PROPTEST_SEED"

	minSuccessful   = 100
	maxDiscardRatio = 100
)

// Parameters returns test parameters for one property test. Each run needs
// minSuccessful passing cases and gives up after minSuccessful*maxDiscardRatio
// discarded ones. The seed is logged so a failure can be replayed with SeedEnv.
func Parameters(t testing.TB) *gopter.TestParameters {
	t.Helper()
	seed := time.Now().UnixNano()
	if s := os.Getenv(SeedEnv); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			t.Fatalf("invalid %s %q: %v", SeedEnv, s, err)
		}
		seed = v
	}
	t.Logf("%s=%d", SeedEnv, seed)

	params := gopter.DefaultTestParametersWithSeed(seed)
	params.MinSuccessfulTests = minSuccessful
	params.MaxDiscardRatio = maxDiscardRatio
	return params
}
