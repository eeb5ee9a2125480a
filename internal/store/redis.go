package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/truthlens-backend/internal/platform/envutil"
	"github.com/yungbote/truthlens-backend/internal/platform/logger"
)

// Config describes the external document database connection.
type Config struct {
	Addr        string
	DB          int
	Username    string
	Password    string
	DialTimeout time.Duration
	MaxRetries  int

	// Enabled selects the external backend over the in-memory one.
	Enabled bool
}

func ConfigFromEnv() Config {
	return Config{
		Addr:        envutil.String("DOCSTORE_ADDR", "localhost:6379"),
		DB:          envutil.Int("DOCSTORE_DB", 0),
		Username:    envutil.String("DOCSTORE_USER", ""),
		Password:    envutil.String("DOCSTORE_PASSWORD", ""),
		DialTimeout: envutil.DurationMS("DOCSTORE_TIMEOUT_MS", 5*time.Second),
		MaxRetries:  envutil.Int("DOCSTORE_MAX_RETRIES", 3),
		Enabled:     envutil.Bool("USE_DOCSTORE", false),
	}
}

// Redis stores documents under their composite id ("kind::uuid"), which
// makes the per-kind bulk query a key prefix scan. Connect must be
// called before any operation; until then every call fails with
// ErrNotConnected.
type Redis struct {
	log *logger.Logger
	cfg Config

	mu  sync.RWMutex
	rdb *goredis.Client
}

func NewRedis(cfg Config, log *logger.Logger) *Redis {
	return &Redis{
		log: log.With("component", "RedisStore"),
		cfg: cfg,
	}
}

func (r *Redis) Connect(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rdb != nil {
		return nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        r.cfg.Addr,
		DB:          r.cfg.DB,
		Username:    r.cfg.Username,
		Password:    r.cfg.Password,
		DialTimeout: r.cfg.DialTimeout,
		MaxRetries:  r.cfg.MaxRetries,
	})

	pingCtx, cancel := context.WithTimeout(ctx, r.cfg.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return fmt.Errorf("docstore ping: %w", err)
	}

	r.rdb = rdb
	r.log.Info("Connected to document store", "addr", r.cfg.Addr, "db", r.cfg.DB)
	return nil
}

func (r *Redis) client() (*goredis.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.rdb == nil {
		return nil, ErrNotConnected
	}
	return r.rdb, nil
}

func (r *Redis) Save(ctx context.Context, _ Kind, id string, doc json.RawMessage) error {
	rdb, err := r.client()
	if err != nil {
		return err
	}
	return rdb.Set(ctx, id, []byte(doc), 0).Err()
}

func (r *Redis) Get(ctx context.Context, _ Kind, id string) (json.RawMessage, error) {
	rdb, err := r.client()
	if err != nil {
		return nil, err
	}
	raw, err := rdb.Get(ctx, id).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("docstore get %s: %w", id, err)
	}
	return raw, nil
}

func (r *Redis) Delete(ctx context.Context, _ Kind, id string) (bool, error) {
	rdb, err := r.client()
	if err != nil {
		return false, err
	}
	n, err := rdb.Del(ctx, id).Result()
	if err != nil {
		return false, fmt.Errorf("docstore delete %s: %w", id, err)
	}
	return n > 0, nil
}

// ListKind scans for every document whose key carries the kind prefix.
func (r *Redis) ListKind(ctx context.Context, kind Kind) ([]json.RawMessage, error) {
	rdb, err := r.client()
	if err != nil {
		return nil, err
	}

	var keys []string
	iter := rdb.Scan(ctx, 0, string(kind)+"::*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("docstore scan %s: %w", kind, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	vals, err := rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("docstore mget: %w", err)
	}
	out := make([]json.RawMessage, 0, len(vals))
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue // key expired between scan and mget
		}
		out = append(out, json.RawMessage(s))
	}
	return out, nil
}

func (r *Redis) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rdb == nil {
		return nil
	}
	err := r.rdb.Close()
	r.rdb = nil
	return err
}
