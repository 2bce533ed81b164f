package implementation

import (
	"context"

	"ai-devicechat-be/internal/entity"
	"ai-devicechat-be/internal/repository/contract"

	"gorm.io/gorm"
)

type chatAuditRepository struct {
	db *gorm.DB
}

func NewChatAuditRepository(db *gorm.DB) contract.ChatAuditRepository {
	return &chatAuditRepository{db: db}
}

func (r *chatAuditRepository) Create(ctx context.Context, log *entity.ChatAuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
