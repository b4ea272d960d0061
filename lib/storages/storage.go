package storages

import (
	"github.com/pescuma/gitscore/lib/model"
)

// Storage persists one run's results so `serve` and later runs can read
// them without re-walking the history.
type Storage interface {
	LoadConfig() (map[string]string, error)
	WriteConfig(config map[string]string) error

	LoadContributors() (*model.Contributors, error)
	WriteContributors(contributors *model.Contributors) error

	LoadScorecards() ([]*model.Scorecard, error)
	WriteScorecards(cards []*model.Scorecard) error

	Close() error
}
