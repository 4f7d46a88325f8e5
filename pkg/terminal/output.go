package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Output summarizes what the lock screen can do with an output stream.
type Output struct {
	Term        Terminal
	Interactive bool
	Size        Size
	Profile     termenv.Profile
}

// Inspect describes f. A non-terminal f is reported as non-interactive
// with an ASCII profile.
func Inspect(f *os.File, lookupEnv func(string) (string, bool)) Output {
	fd := f.Fd()
	o := Output{
		Term:        Detect(lookupEnv),
		Interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		Size:        GetSize(fd, lookupEnv),
		Profile:     termenv.Ascii,
	}
	if o.Interactive {
		o.Profile = termenv.NewOutput(f).EnvColorProfile()
	}
	return o
}

// Mouse reports whether mouse tracking should be enabled.
func (o Output) Mouse() bool {
	return o.Interactive && o.Term.SupportsMouse()
}

// ColorName is a short label for the profile, for logging.
func (o Output) ColorName() string {
	switch o.Profile {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256"
	case termenv.ANSI:
		return "16"
	default:
		return "none"
	}
}
