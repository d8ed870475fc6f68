package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"policy-assist-be/internal/dto"

	gocache "github.com/patrickmn/go-cache"
)

type IReadService interface {
	ReadPage(ctx context.Context, request *dto.ReadPageRequest) (*dto.ReadPageResponse, error)
}

// readService is the raw document-fetch helper. Responses are cached for a
// few minutes since the front end tends to re-request the same pages.
type readService struct {
	client *http.Client
	cache  *gocache.Cache
}

func NewReadService() IReadService {
	return &readService{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *readService) ReadPage(ctx context.Context, request *dto.ReadPageRequest) (*dto.ReadPageResponse, error) {
	if cached, found := s.cache.Get(request.Url); found {
		return &dto.ReadPageResponse{Content: cached.(string)}, nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", request.Url, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 5*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	content := string(body)
	s.cache.Set(request.Url, content, gocache.DefaultExpiration)

	return &dto.ReadPageResponse{Content: content}, nil
}
