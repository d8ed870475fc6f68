package service

import (
	"context"
	"encoding/json"

	"policy-assist-be/internal/dto"
	"policy-assist-be/internal/model"
	"policy-assist-be/internal/pkg/logger"
	"policy-assist-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/pgvector/pgvector-go"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the exchange-log topic and writes records to the
// durable store. Insert failures are logged and dropped: by the time a
// record reaches this service the HTTP response is already decided.
type consumerService struct {
	pubSub          *gochannel.GoChannel
	topicName       string
	exchangeLogRepo contract.IExchangeLogRepository
	logger          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	exchangeLogRepo contract.IExchangeLogRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:          pubSub,
		topicName:       topicName,
		exchangeLogRepo: exchangeLogRepo,
		logger:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishExchangeMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("exchange", "failed to unmarshal exchange record", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	record, err := cs.buildRecord(&payload)
	if err != nil {
		cs.logger.Error("exchange", "failed to build exchange record", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	if err := cs.exchangeLogRepo.Create(ctx, record); err != nil {
		// Operational channel only; the answer already went out.
		cs.logger.Error("exchange", "failed to insert exchange record", map[string]interface{}{
			"error":    err.Error(),
			"question": payload.Question,
		})
		msg.Ack()
		return
	}

	msg.Ack()
}

func (cs *consumerService) buildRecord(payload *dto.PublishExchangeMessage) (*model.ExchangeLog, error) {
	record := &model.ExchangeLog{
		Question: payload.Question,
		Answer:   payload.Answer,
		Reply:    payload.Reply,
		Grounded: payload.Grounded,
	}

	if payload.Structured != nil {
		structuredJson, err := json.Marshal(payload.Structured)
		if err != nil {
			return nil, err
		}
		record.Structured = structuredJson
	}
	if payload.Sources != nil {
		sourcesJson, err := json.Marshal(payload.Sources)
		if err != nil {
			return nil, err
		}
		record.Sources = sourcesJson
	}
	if payload.Scores != nil {
		scoresJson, err := json.Marshal(payload.Scores)
		if err != nil {
			return nil, err
		}
		record.Scores = scoresJson
	}

	record.QuestionEmbedding = toVector(payload.QuestionEmbedding)
	record.AnswerEmbedding = toVector(payload.AnswerEmbedding)
	record.SourcesEmbedding = toVector(payload.SourcesEmbedding)

	if payload.CallerIdentity != "" {
		identity := payload.CallerIdentity
		record.CallerIdentity = &identity
	}

	return record, nil
}

func toVector(values []float32) *pgvector.Vector {
	if len(values) == 0 {
		return nil
	}
	v := pgvector.NewVector(values)
	return &v
}
