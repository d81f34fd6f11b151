package bigint

import (
	"os"
	"strconv"
	"strings"
)

// envPrefix scopes environment overrides the same way the teacher's
// internal/config/env.go scopes its own flags, to avoid colliding with an
// embedding application's own environment.
const envPrefix = "BIGNUM_"

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(envPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(envPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// defaultSSize is the inline capacity used by the package-level
// convenience constructors (New, Zero) that don't take an explicit
// capacity. Overridable via BIGNUM_DEFAULT_SSIZE for embedding scenarios
// (tests, benchmarks) that want a process-wide default.
func defaultSSize() int {
	n := getEnvInt("DEFAULT_SSIZE", 2)
	if n < 1 {
		return 1
	}
	if n > maxStatic {
		return maxStatic
	}
	return n
}

// init applies BIGNUM_BACKEND once at process startup, matching the
// teacher's one-shot environment parsing at config load time rather than
// re-reading the environment on every call.
func init() {
	switch strings.ToLower(getEnvString("BACKEND", "gmp")) {
	case "mathbig", "math/big", "big":
		currentEngineFactory = MathBigEngine
	default:
		currentEngineFactory = GMPEngine
	}
}
