package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"gorm.io/datatypes"
)

// Service defines the behavior needed by the settings controllers.
type Service interface {
	Get(ctx context.Context, key string) (*SettingDTO, error)
	Put(ctx context.Context, input PutInput) (*SettingDTO, error)
	List(ctx context.Context) ([]SettingDTO, error)
}

type repository interface {
	FindByKey(ctx context.Context, key string) (*models.Setting, error)
	Upsert(ctx context.Context, setting *models.Setting) (*models.Setting, error)
	List(ctx context.Context) ([]models.Setting, error)
}

type service struct {
	repo repository
}

// NewService constructs a settings service with the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("settings repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, key string) (*SettingDTO, error) {
	key = normalizeKey(key)
	if key == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "setting key is required")
	}

	row, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load setting")
	}
	if row == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("setting %q not found", key))
	}
	return FromModel(row), nil
}

func (s *service) Put(ctx context.Context, input PutInput) (*SettingDTO, error) {
	key := normalizeKey(input.Key)
	if key == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "setting key is required")
	}
	if len(input.Value) == 0 || !json.Valid(input.Value) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "setting value must be valid json")
	}

	description := input.Description
	if description == nil {
		existing, err := s.repo.FindByKey(ctx, key)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load setting")
		}
		if existing != nil {
			description = existing.Description
		}
	}

	row := &models.Setting{
		Key:         key,
		Value:       datatypes.JSON(input.Value),
		Description: description,
	}
	saved, err := s.repo.Upsert(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save setting")
	}
	return FromModel(saved), nil
}

func (s *service) List(ctx context.Context) ([]SettingDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list settings")
	}
	return fromModels(rows), nil
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
