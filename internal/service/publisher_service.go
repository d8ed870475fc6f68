package service

import (
	"encoding/json"

	"policy-assist-be/internal/dto"
	"policy-assist-be/internal/pkg/logger"
	"policy-assist-be/pkg/chat"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService hands finished exchanges to the logging pipeline.
// Best-effort by contract: Record never returns an error and never blocks
// the caller on the durable write.
type IPublisherService interface {
	chat.ExchangeRecorder
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
	logger    logger.ILogger
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel, log logger.ILogger) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
		logger:    log,
	}
}

func (s *publisherService) Record(exchange *chat.Exchange) {
	payload := dto.PublishExchangeMessage{
		Question:       exchange.Question,
		Answer:         exchange.DraftReply,
		Reply:          exchange.FinalReply,
		Grounded:       exchange.Grounded,
		Structured:     exchange.Structured,
		Sources:        exchange.Sources,
		CallerIdentity: exchange.CallerIdentity,
	}
	if exchange.Assessment != nil {
		payload.Scores = exchange.Assessment.Scores
		payload.QuestionEmbedding = exchange.Assessment.QuestionEmbedding
		payload.AnswerEmbedding = exchange.Assessment.AnswerEmbedding
		payload.SourcesEmbedding = exchange.Assessment.SourcesEmbedding
	}

	msgJson, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("exchange", "failed to marshal exchange record", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), msgJson)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.logger.Error("exchange", "failed to publish exchange record", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
