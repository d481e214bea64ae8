package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Snapshot keys for the collections the admin dashboard reads.
const (
	KeyPositions    = "snapshot:positions"
	KeyApplications = "snapshot:applications"
	KeyMessages     = "snapshot:contact_messages"
)

var ErrMiss = errors.New("snapshot not found")

const opTimeout = 250 * time.Millisecond

// SnapshotCache keeps the last successfully fetched copy of each collection in
// redis so list reads can degrade to stale data when postgres is unreachable.
// A nil cache is valid and disables the fallback entirely. Snapshots carry no
// TTL: a fallback that expires mid-outage is no fallback.
type SnapshotCache struct {
	client *redis.Client
}

func New(client *redis.Client) *SnapshotCache {
	if client == nil {
		return nil
	}
	return &SnapshotCache{client: client}
}

// Put stores v as the snapshot for key. Failures are returned so callers can
// log them; a failed Put never fails the read that produced the data.
func (c *SnapshotCache) Put(ctx context.Context, key string, v interface{}) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return c.client.Set(ctx, key, data, 0).Err()
}

// Get unmarshals the snapshot for key into dest. Returns ErrMiss when the
// cache is disabled or holds nothing for key.
func (c *SnapshotCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c == nil || c.client == nil {
		return ErrMiss
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
