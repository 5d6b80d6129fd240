// internal/storage/storage.go
package storage

import (
	"github.com/starshatterwars/missiongen/internal/describe"
	"github.com/starshatterwars/missiongen/internal/model"
)

// ErrNotFound is returned by GetMission for an unknown mission id.
var ErrNotFound = model.ErrMissionNotFound

// Backend is the interface all mission catalog implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Catalog
	SaveMission(info *describe.Info) error
	GetMission(id int) (*describe.Info, error)
	ListMissions() ([]*describe.Info, error)
}

// Exportable is an optional interface for backends that dump each saved
// mission to a file.
type Exportable interface {
	LastExportPath() string
}
