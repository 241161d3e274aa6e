// db/store.go
package db

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by reads of absent keys or hash fields. DAOs
// translate it into the entity-level not-found errors.
var ErrKeyNotFound = errors.New("key not found")

// Store is the key-value contract every component persists through. Keys are
// namespaced strings ("<entity-kind>:<id>"). SetNX is the conditional-create
// primitive: concurrent creators of the same key see exactly one success.
// HReplace and SReplace must be atomic to concurrent readers so an entity is
// never observable mid-replacement.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	SetNX(ctx context.Context, key, value string) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error

	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGet(ctx context.Context, key, field string) (string, error)
	HSet(ctx context.Context, key, field, value string) error
	HDel(ctx context.Context, key, field string) error
	HReplace(ctx context.Context, key string, fields map[string]string) error

	SMembers(ctx context.Context, key string) ([]string, error)
	SReplace(ctx context.Context, key string, members []string) error

	Ping(ctx context.Context) error
	Close() error
}
