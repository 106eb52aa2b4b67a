// Package logging builds the console loggers used by the fractory commands.
package logging

import (
	"github.com/BrugadaSyndrome/bslogger"
)

// NewLogger returns a console logger prefixed with name.
func NewLogger(name string) bslogger.Logger {
	return bslogger.NewLogger(name, bslogger.Normal, nil)
}
