package models

import (
	"time"

	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	"github.com/google/uuid"
)

// Booking is a client appointment request against a Service.
type Booking struct {
	ID                uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ClientName        string              `gorm:"column:client_name;not null"`
	ClientEmail       string              `gorm:"column:client_email;not null;index"`
	ClientPhone       string              `gorm:"column:client_phone;not null"`
	ServiceID         uuid.UUID           `gorm:"column:service_id;type:uuid;not null"`
	Service           *Service            `gorm:"foreignKey:ServiceID"`
	Date              time.Time           `gorm:"column:date;not null;index:idx_bookings_date_status,priority:1"`
	Time              string              `gorm:"column:time;not null"`
	Status            enums.BookingStatus `gorm:"type:text;not null;default:'pending';index:idx_bookings_date_status,priority:2"`
	Notes             *string             `gorm:"column:notes"`
	Source            enums.BookingSource `gorm:"type:text;not null;default:'website'"`
	ReminderEmailSent bool                `gorm:"column:reminder_email_sent;not null;default:false"`
	ReminderSMSSent   bool                `gorm:"column:reminder_sms_sent;not null;default:false"`
	IPAddress         *string             `gorm:"column:ip_address"`
	UserAgent         *string             `gorm:"column:user_agent"`
	CreatedAt         time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
