// Package note persists notes. Every read and write is filtered by the owning
// user id; there is no unscoped query in this package.
package note

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Store holds the database and cache handles for notes.
type Store struct {
	log          *zap.SugaredLogger
	db           *sql.DB
	cache        *redis.Client
	opTimeout    time.Duration
	cacheTimeout time.Duration
	cacheTTL     time.Duration
}

func NewStore(log *zap.SugaredLogger, db *sql.DB, cache *redis.Client, opTimeout, cacheTimeout, cacheTTL time.Duration) *Store {
	return &Store{
		log:          log,
		db:           db,
		cache:        cache,
		opTimeout:    opTimeout,
		cacheTimeout: cacheTimeout,
		cacheTTL:     cacheTTL,
	}
}

// invalidate drops the owner's cached list. Cache failures are logged and
// swallowed; the database stays the source of truth.
func (s *Store) invalidate(ctx context.Context, userID string) {
	tcCtx, tcCancel := context.WithTimeout(ctx, s.cacheTimeout)
	defer tcCancel()

	key := fmt.Sprintf(ownerKey, userID)
	if err := s.cache.Del(tcCtx, key).Err(); err != nil {
		s.log.Error("failure to invalidate cache for key ", key, ": ", err.Error())
	}
}
