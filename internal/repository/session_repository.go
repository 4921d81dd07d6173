package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"course_compass_backend/internal/model"
)

// ErrSessionNotFound 会话不存在或已过期
var ErrSessionNotFound = errors.New("assessment session not found")

// SessionRepository 评估会话的短生命周期存储
type SessionRepository interface {
	Save(ctx context.Context, session *model.AssessmentSession) error
	Find(ctx context.Context, id string) (*model.AssessmentSession, error)
	Delete(ctx context.Context, id string) error
}

// MemorySessionRepository 进程内会话存储，单实例部署与测试用
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*model.AssessmentSession
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: map[string]*model.AssessmentSession{}}
}

func (r *MemorySessionRepository) Save(_ context.Context, session *model.AssessmentSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session.Clone()
	return nil
}

func (r *MemorySessionRepository) Find(_ context.Context, id string) (*model.AssessmentSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.Clone(), nil
}

func (r *MemorySessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// RedisSessionRepository 基于 Redis 的会话存储，带过期时间
type RedisSessionRepository struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) *RedisSessionRepository {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &RedisSessionRepository{Client: client, TTL: ttl}
}

func sessionKey(id string) string {
	return "assessment:session:" + id
}

func (r *RedisSessionRepository) Save(ctx context.Context, session *model.AssessmentSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, sessionKey(session.ID), data, r.TTL).Err()
}

func (r *RedisSessionRepository) Find(ctx context.Context, id string) (*model.AssessmentSession, error) {
	data, err := r.Client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session model.AssessmentSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	return r.Client.Del(ctx, sessionKey(id)).Err()
}
