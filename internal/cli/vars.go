package cli

import (
	"errors"

	"github.com/valter-silva-au/cronalpha/internal/core"
	"github.com/valter-silva-au/cronalpha/internal/observability"
	"github.com/valter-silva-au/cronalpha/internal/storage"
	"github.com/valter-silva-au/cronalpha/pkg/models"
)

// Service wiring, set during app initialization in app.go.
var (
	ConfigMgr core.ConfigurationManager

	// Wire builds the runtime services for a resolved configuration.
	Wire func(cfg *models.Config) (*Services, error)
)

// Services are the components a command needs once configuration is known.
type Services struct {
	Calculator core.Calculator
	Loader     storage.TableLoader
	EventLog   observability.EventLog
}

// Close releases the event log.
func (s *Services) Close() error {
	if s == nil || s.EventLog == nil {
		return nil
	}
	return s.EventLog.Close()
}

var errNotInitialized = errors.New("cronalpha services not initialized")
