package sessionstore

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tradelayer/sessiongate/internal/model"
)

// ErrNotFound is returned when no session lives under the requested keys.
// A miss is a frequent, normal outcome: tokens expire, get evicted, or reach
// a replica before the row does.
var ErrNotFound = errors.New("session not found")

// A Client reads session entities from a replica of the session table.
// Implementations must be safe for concurrent use; the request path only
// ever calls Get.
type Client interface {
	// Get returns the session stored under the given partition and row keys.
	Get(ctx context.Context, partition, row string) (*model.SessionEntity, error)
	// Save inserts or updates a session row. Used by the replication feed
	// side, never by the request path.
	Save(ctx context.Context, session *model.SessionEntity) error
	// Delete removes a session row.
	Delete(ctx context.Context, session *model.SessionEntity) error
	// IsNotFound returns true if err is a miss.
	IsNotFound(err error) bool
	// Close the replica.
	Close() error
}
