// Package storage implements the key-value collection store. Each collection
// is serialized as one JSON list under a fixed key and always read or
// overwritten whole. Absent or corrupt values read as empty, never as errors.
package storage

import (
	"context"
	"encoding/json"

	"github.com/Thecodingpm/calories-counterr/internal/apperrors"
	"github.com/Thecodingpm/calories-counterr/internal/logger"
)

// Collection keys. The list keys match the original client's storage layout.
const (
	CollectionUsers       = "mockUsers"
	CollectionFoodEntries = "mockFoodEntries"
	CollectionCustomFoods = "mockCustomFoods"

	sessionKeyPrefix = "session:"
)

// SessionKey returns the storage key for a session record.
func SessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Store is a durable key-value store. Load reports ok=false when the key is
// absent; it never fabricates data. Save overwrites the whole value.
type Store interface {
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// LoadList reads a whole collection. Absence or a corrupt value yields the
// empty list; only transport-level failures surface as errors.
func LoadList[T any](ctx context.Context, s Store, key string) ([]T, error) {
	raw, ok, err := s.Load(ctx, key)
	if err != nil {
		return nil, apperrors.NewStorageError(err).WithContext("collection", key)
	}
	if !ok {
		return []T{}, nil
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		logger.Warn("Corrupt collection, treating as empty", "collection", key, "error", err)
		return []T{}, nil
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

// SaveList overwrites a whole collection.
func SaveList[T any](ctx context.Context, s Store, key string, list []T) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return apperrors.NewStorageError(err).WithContext("collection", key)
	}
	if err := s.Save(ctx, key, raw); err != nil {
		return apperrors.NewStorageError(err).WithContext("collection", key)
	}
	return nil
}

// LoadRecord reads a single record. Absence or corruption yields nil.
func LoadRecord[T any](ctx context.Context, s Store, key string) (*T, error) {
	raw, ok, err := s.Load(ctx, key)
	if err != nil {
		return nil, apperrors.NewStorageError(err).WithContext("key", key)
	}
	if !ok {
		return nil, nil
	}
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		logger.Warn("Corrupt record, treating as absent", "key", key, "error", err)
		return nil, nil
	}
	return &rec, nil
}

// SaveRecord overwrites a single record.
func SaveRecord[T any](ctx context.Context, s Store, key string, rec T) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return apperrors.NewStorageError(err).WithContext("key", key)
	}
	if err := s.Save(ctx, key, raw); err != nil {
		return apperrors.NewStorageError(err).WithContext("key", key)
	}
	return nil
}
