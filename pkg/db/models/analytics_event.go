package models

import (
	"time"

	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnalyticsEvent records a site interaction. Data holds the typed payload
// for the event type, or an untyped fallback for shapes we do not model.
type AnalyticsEvent struct {
	ID        uuid.UUID                `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Type      enums.AnalyticsEventType `gorm:"type:text;not null;index:idx_analytics_type_created,priority:1"`
	Data      datatypes.JSON           `gorm:"column:data"`
	SessionID *string                  `gorm:"column:session_id"`
	IPAddress *string                  `gorm:"column:ip_address"`
	UserAgent *string                  `gorm:"column:user_agent"`
	Referrer  *string                  `gorm:"column:referrer"`
	CreatedAt time.Time                `gorm:"column:created_at;autoCreateTime;index:idx_analytics_type_created,priority:2,sort:desc"`
}
