package sessionstore

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/tradelayer/sessiongate/internal/model"
)

type rds struct {
	client *redis.Client
}

// RedisOpen returns a session store client backed by a Redis replica.
// Rows live at "<partition>:<row>" as JSON entities; expiry is delegated to
// the key TTL set by the replication feed.
func RedisOpen(opts *redis.Options) (Client, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errors.Wrap(err, "could not reach redis")
	}

	return &rds{
		client: client,
	}, nil
}

func sessionKey(partition, row string) string {
	return partition + ":" + row
}

// Get returns the session stored under the given partition and row keys.
func (c *rds) Get(ctx context.Context, partition, row string) (*model.SessionEntity, error) {
	payload, err := c.client.Get(ctx, sessionKey(partition, row)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.Wrap(ErrNotFound, "redis replica")
		}
		return nil, errors.Wrap(err, "find session by token")
	}

	session, err := decodeSession(payload)
	return session, errors.Wrap(err, "find session by token")
}

// Save inserts or updates the session row without touching its TTL.
func (c *rds) Save(ctx context.Context, session *model.SessionEntity) error {
	if session.PartitionKey == "" {
		session.PartitionKey = model.PartitionKey
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "could not serialize the session")
	}
	return errors.Wrap(
		c.client.Set(ctx, sessionKey(session.PartitionKey, session.RowKey), payload, redis.KeepTTL).Err(),
		"could not save the session",
	)
}

// Delete removes the session row.
func (c *rds) Delete(ctx context.Context, session *model.SessionEntity) error {
	return errors.Wrap(
		c.client.Del(ctx, sessionKey(session.PartitionKey, session.RowKey)).Err(),
		"could not delete the session",
	)
}

// IsNotFound returns true if err is a miss.
func (c *rds) IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}

// Close the replica connection.
func (c *rds) Close() error {
	return c.client.Close()
}

func decodeSession(payload []byte) (*model.SessionEntity, error) {
	var session model.SessionEntity
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, errors.Wrap(err, "corrupted session row")
	}
	return &session, nil
}
