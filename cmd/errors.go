package cmd

import (
	"errors"

	"github.com/bnema/partners-cli/internal/domain"
)

// UserMessage turns a command error into the line shown on stderr.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return err.Error() + " (run `partners login`)"
	case errors.Is(err, domain.ErrNetwork):
		return err.Error() + " (check the service URL or try again)"
	default:
		return err.Error()
	}
}
