package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

// Entity is a pointer to a stored model embedding models.Base.
type Entity[T any] interface {
	*T
	Meta() *models.Base
}

type validator interface {
	Validate() error
}

// Scope narrows a query, e.g. with filters or ordering.
type Scope func(*gorm.DB) *gorm.DB

// CRUDService implements list/get/create/update/delete for one entity type.
// Authorization is enforced by the caller before any method runs.
type CRUDService[T any, PT Entity[T]] struct {
	db        *gorm.DB
	name      string
	newEntity func() PT
}

// NewCRUDService returns a CRUD service for the entity built by newEntity.
// newEntity supplies the defaults a create payload is decoded onto.
func NewCRUDService[T any, PT Entity[T]](db *gorm.DB, name string, newEntity func() PT) *CRUDService[T, PT] {
	if newEntity == nil {
		newEntity = func() PT { return PT(new(T)) }
	}
	return &CRUDService[T, PT]{db: db, name: name, newEntity: newEntity}
}

// DB returns the underlying handle for entity-specific queries.
func (s *CRUDService[T, PT]) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// List returns every entity matching scopes.
func (s *CRUDService[T, PT]) List(ctx context.Context, scopes ...Scope) ([]T, error) {
	q := s.DB(ctx)
	for _, scope := range scopes {
		q = scope(q)
	}
	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.name, err)
	}
	return out, nil
}

// Get returns the entity with id or ErrNotFound.
func (s *CRUDService[T, PT]) Get(ctx context.Context, id uuid.UUID) (PT, error) {
	entity := PT(new(T))
	err := s.DB(ctx).First(entity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s %s: %w", s.name, id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.name, err)
	}
	return entity, nil
}

// Create decodes payload onto a fresh entity, applies mutate (e.g. to set an
// uploaded image URL), validates and stores it.
func (s *CRUDService[T, PT]) Create(ctx context.Context, payload []byte, mutate func(PT)) (PT, error) {
	entity := s.newEntity()
	if err := decodeJSON(payload, entity); err != nil {
		return nil, err
	}
	*entity.Meta() = models.Base{}
	if mutate != nil {
		mutate(entity)
	}
	if err := s.Insert(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Insert validates and stores entity.
func (s *CRUDService[T, PT]) Insert(ctx context.Context, entity PT) error {
	if err := validate(entity); err != nil {
		return err
	}
	if err := s.DB(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", s.name, err)
	}
	return nil
}

// Update merges the JSON patch onto the stored entity. Fields absent from
// patch keep their stored values; identity and timestamps cannot be changed.
func (s *CRUDService[T, PT]) Update(ctx context.Context, id uuid.UUID, patch []byte, mutate func(PT)) (PT, error) {
	entity, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	base := *entity.Meta()
	if err := decodeJSON(patch, entity); err != nil {
		return nil, err
	}
	*entity.Meta() = base
	if mutate != nil {
		mutate(entity)
	}
	if err := validate(entity); err != nil {
		return nil, err
	}
	if err := s.DB(ctx).Save(entity).Error; err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", s.name, err)
	}
	return entity, nil
}

// Delete removes the entity with id or returns ErrNotFound.
func (s *CRUDService[T, PT]) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.DB(ctx).Delete(PT(new(T)), "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", s.name, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", s.name, id, ErrNotFound)
	}
	return nil
}

func validate(entity interface{}) error {
	if v, ok := entity.(validator); ok {
		return v.Validate()
	}
	return nil
}

func decodeJSON(payload []byte, dst interface{}) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return NewValidationError(typeErr.Field, "has the wrong type")
		}
		return NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

// ParseID parses a path id. Malformed ids cannot exist and read as not found.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("id %q: %w", raw, ErrNotFound)
	}
	return id, nil
}
