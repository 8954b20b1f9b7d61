package settings

import (
	"encoding/json"
	"time"

	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
)

// SettingDTO is the API shape for one keyed value.
type SettingDTO struct {
	Key         string          `json:"key"`
	Value       json.RawMessage `json:"value"`
	Description *string         `json:"description,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// PutInput upserts a setting. Value must be valid JSON; a missing
// description leaves any stored one in place.
type PutInput struct {
	Key         string          `json:"key" validate:"required"`
	Value       json.RawMessage `json:"value" validate:"required"`
	Description *string         `json:"description,omitempty"`
}

// FromModel maps a DB row into the API shape.
func FromModel(m *models.Setting) *SettingDTO {
	if m == nil {
		return nil
	}
	return &SettingDTO{
		Key:         m.Key,
		Value:       json.RawMessage(m.Value),
		Description: m.Description,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromModels(rows []models.Setting) []SettingDTO {
	out := make([]SettingDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
