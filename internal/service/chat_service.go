package service

import (
	"context"
	"time"

	"policy-assist-be/internal/dto"
	"policy-assist-be/pkg/chat"

	"github.com/redis/go-redis/v9"
)

const (
	guestDailyLimit = 20
	userDailyLimit  = 100

	usageWindow = 24 * time.Hour
)

// Caller identifies one requester for capping and audit. Identity is the
// authenticated email, empty for guests; RemoteAddr discriminates guests so
// one anonymous caller exhausting their cap never locks out the others.
type Caller struct {
	Identity   string
	RemoteAddr string
}

type IChatService interface {
	SendChat(ctx context.Context, caller Caller, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

// chatService fronts the process-wide engine. The entitlement cap mirrors the
// front end's policy (20 messages/day for guests, 100 for identified users)
// and is enforced here, at the caller boundary, not inside the engine.
type chatService struct {
	engine chat.Engine
	rdb    *redis.Client
}

func NewChatService(engine chat.Engine, rdb *redis.Client) IChatService {
	return &chatService{
		engine: engine,
		rdb:    rdb,
	}
}

func (cs *chatService) SendChat(ctx context.Context, caller Caller, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	if err := cs.checkDailyLimit(ctx, caller); err != nil {
		return nil, err
	}

	result, err := cs.engine.Reply(ctx, chat.Request{
		Question:       request.Question,
		History:        request.History,
		CallerIdentity: caller.Identity,
	})
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		Reply:      result.Reply,
		Structured: result.Structured,
		Sources:    result.Sources,
	}, nil
}

// usageBucket derives the counter key and cap for one caller. Identified
// users are counted by identity; guests by remote address, each address its
// own bucket.
func usageBucket(caller Caller) (string, int) {
	if caller.Identity != "" {
		return "chat_usage:" + caller.Identity, userDailyLimit
	}
	return "chat_usage:guest:" + caller.RemoteAddr, guestDailyLimit
}

// checkDailyLimit counts messages per bucket in a rolling 24h window via
// INCR + first-write expiry. Redis being down must not take the chat
// endpoint down with it, so counter errors fail open.
func (cs *chatService) checkDailyLimit(ctx context.Context, caller Caller) error {
	key, limit := usageBucket(caller)

	used, err := cs.rdb.Incr(ctx, key).Result()
	if err != nil {
		return nil
	}
	if used == 1 {
		cs.rdb.Expire(ctx, key, usageWindow)
	}

	if used > int64(limit) {
		ttl, _ := cs.rdb.TTL(ctx, key).Result()
		if ttl < 0 {
			ttl = usageWindow
		}
		return &dto.LimitExceededError{
			Limit:      limit,
			Used:       int(used),
			ResetAfter: time.Now().Add(ttl),
		}
	}

	return nil
}
