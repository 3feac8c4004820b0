// Package logx configures the op/go-logging backend used across vachess
// for non-hot-path diagnostics: FEN parse failures and perft-divide
// progress. Move generation and make/unmake never log (per-node logging at
// perft depth would dominate runtime), mirroring FrankyGo's convention of a
// per-package *logging.Logger field fed by one shared backend.
package logx

import (
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:-7s} %{module}: %{message}`,
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
}

// New returns a named logger for module, the same pattern FrankyGo's
// per-package `log *logging.Logger` fields are initialized with.
func New(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}

// SetLevel adjusts the global logging threshold for module ("" for every
// module), letting callers (e.g. a perft-divide CLI's -v flag) raise
// verbosity without touching package init code.
func SetLevel(level logging.Level, module string) {
	logging.SetLevel(level, module)
}
