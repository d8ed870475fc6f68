package contract

import (
	"context"

	"policy-assist-be/internal/model"
)

// IExchangeLogRepository persists exchange audit records. Append-only: there
// is intentionally no update or delete.
type IExchangeLogRepository interface {
	Create(ctx context.Context, log *model.ExchangeLog) error
}
