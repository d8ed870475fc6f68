package service

import (
	"context"
	"encoding/json"
	"errors"

	"policy-assist-be/internal/dto"

	"github.com/redis/go-redis/v9"
)

// ErrInvalidKey is returned for keys outside the fixed demo namespace.
var ErrInvalidKey = errors.New("invalid_key")

// validStorageKeys is the closed set of keys the demo front end may sync.
var validStorageKeys = map[string]bool{
	"ft_users":    true,
	"ft_chats":    true,
	"ft_messages": true,
}

type IStorageService interface {
	Get(ctx context.Context, key string) (*dto.GetValueResponse, error)
	Set(ctx context.Context, request *dto.SetValueRequest) error
}

// storageService is the key-value sync store backing the demo front end's
// chat history. Values are opaque JSON documents.
type storageService struct {
	rdb *redis.Client
}

func NewStorageService(rdb *redis.Client) IStorageService {
	return &storageService{
		rdb: rdb,
	}
}

func (s *storageService) Get(ctx context.Context, key string) (*dto.GetValueResponse, error) {
	if !validStorageKeys[key] {
		return nil, ErrInvalidKey
	}

	value, err := s.rdb.Get(ctx, "kv:"+key).Result()
	if errors.Is(err, redis.Nil) {
		return &dto.GetValueResponse{Key: key, Value: json.RawMessage("null")}, nil
	}
	if err != nil {
		return nil, err
	}

	return &dto.GetValueResponse{Key: key, Value: json.RawMessage(value)}, nil
}

func (s *storageService) Set(ctx context.Context, request *dto.SetValueRequest) error {
	if !validStorageKeys[request.Key] {
		return ErrInvalidKey
	}

	return s.rdb.Set(ctx, "kv:"+request.Key, []byte(request.Value), 0).Err()
}
