package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"mirnito/internal/domain/entity"
	"mirnito/internal/domain/repository"
	"mirnito/pkg/errors"
)

// fileSessionRepository is the local key-value analogue of the
// browser's localStorage slot: one JSON file holding the current user
// snapshot. Reads fail open; a missing or corrupt file means logged
// out.
type fileSessionRepository struct {
	path string
}

func NewFileSessionRepository(path string) repository.SessionRepository {
	return &fileSessionRepository{
		path: path,
	}
}

func (r *fileSessionRepository) Save(ctx context.Context, user *entity.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return errors.Internal("Failed to serialize session", err)
	}

	// Write-then-rename keeps a crash from leaving a torn snapshot.
	tmp := r.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return errors.Internal("Failed to create session directory", err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Internal("Failed to write session", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return errors.Internal("Failed to write session", err)
	}
	return nil
}

func (r *fileSessionRepository) Load(ctx context.Context) (*entity.User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, errors.NotFound("Session", err)
	}

	var user entity.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, errors.NotFound("Session", err)
	}
	return &user, nil
}

func (r *fileSessionRepository) Clear(ctx context.Context) error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return errors.Internal("Failed to clear session", err)
	}
	return nil
}
