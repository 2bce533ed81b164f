package contract

import (
	"context"

	"ai-devicechat-be/internal/entity"
)

type ChatAuditRepository interface {
	Create(ctx context.Context, log *entity.ChatAuditLog) error
}
