package implementation

import (
	"context"

	"policy-assist-be/internal/model"
	"policy-assist-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ExchangeLogRepositoryImpl struct {
	db *gorm.DB
}

func NewExchangeLogRepository(db *gorm.DB) contract.IExchangeLogRepository {
	return &ExchangeLogRepositoryImpl{
		db: db,
	}
}

func (r *ExchangeLogRepositoryImpl) Create(ctx context.Context, log *model.ExchangeLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
