package env

import (
	"os"
)

// Debug reads $DEBUG from the process environment. Commands run through
// xmain.State also honor a DEBUG set in the State's own env.
func Debug() bool {
	return os.Getenv("DEBUG") != ""
}
