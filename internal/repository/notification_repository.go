package repository

import (
	"github.com/talenthive/talenthive-backend/internal/model"
	"gorm.io/gorm"
)

type NotificationRepositoryInterface interface {
	Create(notification *model.Notification) error
}

// NotificationRepository persists admin-facing alerts.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db}
}

func (r *NotificationRepository) Create(notification *model.Notification) error {
	return r.db.Create(notification).Error
}
