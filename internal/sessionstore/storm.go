package sessionstore

import (
	"context"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/codec/msgpack"
	"github.com/pkg/errors"
	"github.com/tradelayer/sessiongate/internal/model"
)

type strm struct {
	db *storm.DB
}

// StormCodec is the format used to store data in the replica file.
var StormCodec = storm.Codec(msgpack.Codec)

// StormInit initializes the Storm replica indexes.
func StormInit(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	err = db.From(model.PartitionKey).Init(&model.SessionEntity{})
	return errors.Wrap(err, "could not init session index")
}

// StormOpen returns a session store client backed by a local Storm replica.
// The file is kept in sync by an external replication feed.
func StormOpen(database string) (Client, error) {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return nil, errors.Wrap(err, "could not get database connection")
	}

	return &strm{
		db: db,
	}, nil
}

// Get returns the session stored under the given partition and row keys.
// The replica is local so the lookup never outlives the request context.
func (c *strm) Get(ctx context.Context, partition, row string) (*model.SessionEntity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var session model.SessionEntity
	if err := c.db.From(partition).One("RowKey", row, &session); err != nil {
		if err == storm.ErrNotFound {
			return nil, errors.Wrap(ErrNotFound, "storm replica")
		}
		return nil, errors.Wrap(err, "find session by token")
	}
	return &session, nil
}

// Save inserts or updates the session row in its partition bucket.
func (c *strm) Save(ctx context.Context, session *model.SessionEntity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if session.PartitionKey == "" {
		session.PartitionKey = model.PartitionKey
	}
	return errors.Wrap(c.db.From(session.PartitionKey).Save(session), "could not save the session")
}

// Delete removes the session row from its partition bucket.
func (c *strm) Delete(ctx context.Context, session *model.SessionEntity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.Wrap(c.db.From(session.PartitionKey).DeleteStruct(session), "could not delete the session")
}

// IsNotFound returns true if err is a miss.
func (c *strm) IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}

// Close the replica.
func (c *strm) Close() error {
	return c.db.Close()
}
