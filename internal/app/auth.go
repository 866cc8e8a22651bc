package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/shrimpsizemoose/trekker/logger"
)

// Auth validates course join tokens against redis. Disabled auth passes
// everything; the engine itself owns no identity.
type Auth struct {
	enabled     bool
	redis       *redis.Client
	tokenHeader string
}

func NewAuth(config *Config) (*Auth, error) {
	if !config.Server.EnableAuth {
		return &Auth{enabled: false}, nil
	}

	opt, err := redis.ParseURL(config.Auth.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Auth{
		enabled:     true,
		redis:       client,
		tokenHeader: config.Auth.TokenHeader,
	}, nil
}

func (a *Auth) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}

// TokenManager hands out a manager sharing this auth's redis connection.
// Returns nil when auth is disabled and no token store exists.
func (a *Auth) TokenManager() *TokenManager {
	if a.redis == nil {
		return nil
	}
	return NewTokenManager(a.redis)
}

func (a *Auth) ValidateCourseToken(ctx context.Context, courseID int64, token string) error {
	if !a.enabled {
		return nil
	}

	key := fmt.Sprintf(courseTokenTpl, courseID)

	fields, err := a.redis.HGetAll(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug.Printf("Token not found for key: %s", key)
		return fmt.Errorf("token not found")
	}
	if err != nil {
		logger.Debug.Printf("Redis error: %v", err)
		return fmt.Errorf("redis error: %w", err)
	}

	if fields["token"] != token {
		logger.Debug.Printf("Token mismatch for course %d", courseID)
		return fmt.Errorf("invalid token")
	}

	return nil
}

// ValidateRequest checks the bearer join token of an inbound write request.
func (s *Service) ValidateRequest(r *http.Request, courseID int64) error {
	if !s.Config.Server.EnableAuth {
		return nil
	}

	authHeader := r.Header.Get(s.Auth.tokenHeader)
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return fmt.Errorf("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	return s.Auth.ValidateCourseToken(r.Context(), courseID, token)
}

// ValidateHeaders enforces the static header gate from config.
func (s *Service) ValidateHeaders(headers map[string][]string) bool {
	for _, required := range s.Config.API.RequiredHeaders {
		value := headers[http.CanonicalHeaderKey(required.Name)]
		if len(value) == 0 || !strings.EqualFold(value[0], required.Value) {
			return false
		}
	}
	return true
}
