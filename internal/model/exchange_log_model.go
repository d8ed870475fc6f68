package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// ExchangeLog is the append-only audit record of one chat exchange. Answer
// keeps the pre-gating draft; Reply keeps what the user actually saw. Rows
// are never updated or deleted by the pipeline.
type ExchangeLog struct {
	Id                uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question          string           `gorm:"type:text;not null"`
	Answer            string           `gorm:"type:text;not null"`
	Reply             string           `gorm:"type:text;not null"`
	Grounded          bool             `gorm:"not null"`
	Structured        datatypes.JSON   `gorm:"type:jsonb"`
	Sources           datatypes.JSON   `gorm:"type:jsonb"`
	Scores            datatypes.JSON   `gorm:"type:jsonb"`
	QuestionEmbedding *pgvector.Vector `gorm:"type:vector(1536)"` // text-embedding-3-small dimension
	AnswerEmbedding   *pgvector.Vector `gorm:"type:vector(1536)"`
	SourcesEmbedding  *pgvector.Vector `gorm:"type:vector(1536)"`
	CallerIdentity    *string          `gorm:"type:varchar(255);index"`
	CreatedAt         time.Time        `gorm:"default:now();not null;index"`
}

func (ExchangeLog) TableName() string {
	return "exchange_logs"
}
