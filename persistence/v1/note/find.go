package note

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// FindByOwner returns every note owned by userID, most recent first.
// The list is served from the cache when present; cache failures fall
// through to the database.
func (s *Store) FindByOwner(ctx context.Context, userID string) ([]Note, error) {
	key := fmt.Sprintf(ownerKey, userID)

	tcCtx, tcCancel := context.WithTimeout(ctx, s.cacheTimeout)
	defer tcCancel()
	get, err := s.cache.Get(tcCtx, key).Result()
	if err != nil && err != redis.Nil {
		s.log.Error("failure to get notes of ", userID, " from cache: ", err.Error())
	}
	if get != "" {
		var notes []Note
		if err := json.Unmarshal([]byte(get), &notes); err != nil {
			s.log.Error("error parsing cached response for key ", key, ": ", err.Error())
		} else {
			return notes, nil
		}
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.opTimeout)
	defer dbCancel()
	stmt, err := s.db.PrepareContext(dbCtx, "SELECT id, userId, title, content, createdAt FROM notes WHERE userId = ? ORDER BY createdAt DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	rows, err := stmt.QueryContext(dbCtx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query find stmt: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	notes := make([]Note, 0)
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.Id, &n.UserId, &n.Title, &n.Content, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read find rows: %w", err)
	}

	if data, err := json.Marshal(notes); err != nil {
		s.log.Error("error parsing data to cache for key ", key, ": ", err.Error())
	} else {
		tcCtx, tcCancel := context.WithTimeout(ctx, s.cacheTimeout)
		defer tcCancel()

		if err := s.cache.Set(tcCtx, key, string(data), s.cacheTTL).Err(); err != nil {
			s.log.Error("failure to set notes of ", userID, " into cache: ", err.Error())
		}
	}

	return notes, nil
}
