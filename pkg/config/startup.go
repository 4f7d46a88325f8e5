package config

import (
	"slices"
	"time"

	"gitlab.com/tinyland/lab/lockscreen/pkg/version"
)

// ReduceMotionEnv is the environment variable that enables reduced motion.
const ReduceMotionEnv = "LOCKSCREEN_REDUCE_MOTION"

// reduceMotionValues are the accepted values of ReduceMotionEnv, compared
// case-sensitively.
var reduceMotionValues = []string{"1", "true", "TRUE", "yes", "YES"}

// reduceMotionFlags enable reduced motion when present in the argument list.
var reduceMotionFlags = []string{"--reduce-motion", "--no-animations"}

// ReduceMotion reports whether reduced motion is requested by the
// environment or the argument list. lookupEnv has the signature of
// os.LookupEnv; args excludes the program name.
func ReduceMotion(lookupEnv func(string) (string, bool), args []string) bool {
	if lookupEnv != nil {
		if v, ok := lookupEnv(ReduceMotionEnv); ok && slices.Contains(reduceMotionValues, v) {
			return true
		}
	}
	for _, a := range args {
		if slices.Contains(reduceMotionFlags, a) {
			return true
		}
	}
	return false
}

// Startup is the immutable configuration captured once at process entry and
// passed to every component constructor.
type Startup struct {
	ReduceMotion    bool
	ClockInterval   time.Duration
	ShimmerInterval time.Duration
	ToastDelay      time.Duration
	Location        *time.Location
	Tiles           []string
	Build           version.Info
}

// Capture derives the Startup values from a validated config, the process
// environment and argument list. Nothing else reads the environment or
// arguments after this call.
func Capture(cfg *Config, lookupEnv func(string) (string, bool), args []string) (Startup, error) {
	loc, err := cfg.Location()
	if err != nil {
		return Startup{}, err
	}
	return Startup{
		ReduceMotion:    cfg.Accessibility.ReduceMotion || ReduceMotion(lookupEnv, args),
		ClockInterval:   cfg.Timing.ClockInterval.Duration,
		ShimmerInterval: cfg.Timing.ShimmerInterval.Duration,
		ToastDelay:      cfg.Timing.ToastDelay.Duration,
		Location:        loc,
		Tiles:           slices.Clone(cfg.TileLabels()),
		Build:           version.Get(),
	}, nil
}
