package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"
)

// Cache read-through untuk respons list/kalender. Semua kegagalan Redis
// diperlakukan sebagai miss; data selalu bisa diambil ulang dari DB.
type Cache interface {
	Get(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, v any)
	// Invalidate membuang semua entry (naikkan versi namespace).
	Invalidate(ctx context.Context)
}

/* ============================ NOOP ============================ */

type Noop struct{}

func (Noop) Get(context.Context, string, any) bool { return false }
func (Noop) Set(context.Context, string, any)      {}
func (Noop) Invalidate(context.Context)            {}

/* ============================ REDIS ============================ */

const defaultPrefix = "mdceramica"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
	Prefix string
}

type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// New mengembalikan Noop kalau Addr kosong atau Redis tidak bisa di-ping.
func New(ctx context.Context, opt Options) Cache {
	if opt.Addr == "" {
		log.Println("[INFO] REDIS_ADDR kosong, cache nonaktif")
		return Noop{}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        opt.Addr,
		Password:    opt.Password,
		DB:          opt.DB,
		DialTimeout: 2 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("[WARN] Redis %s tidak tersedia (%v), cache nonaktif", opt.Addr, err)
		_ = rdb.Close()
		return Noop{}
	}
	log.Printf("[INFO] Redis cache aktif di %s (db %d)", opt.Addr, opt.DB)
	return NewRedisCache(rdb, opt.TTL)
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisCache{Client: client, TTL: ttl, Prefix: defaultPrefix}
}

func (r *RedisCache) versionKey() string {
	return r.Prefix + ":version"
}

func (r *RedisCache) key(ctx context.Context, key string) (string, error) {
	v, err := r.Client.Get(ctx, r.versionKey()).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return fmt.Sprintf("%s:v%d:%s", r.Prefix, v, key), nil
}

func (r *RedisCache) Get(ctx context.Context, key string, dst any) bool {
	k, err := r.key(ctx, key)
	if err != nil {
		log.Printf("[WARN] cache version: %v", err)
		return false
	}
	raw, err := r.Client.Get(ctx, k).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[WARN] cache get %s: %v", k, err)
		}
		return false
	}
	if err := sonic.Unmarshal(raw, dst); err != nil {
		log.Printf("[WARN] cache decode %s: %v", k, err)
		return false
	}
	return true
}

func (r *RedisCache) Set(ctx context.Context, key string, v any) {
	k, err := r.key(ctx, key)
	if err != nil {
		log.Printf("[WARN] cache version: %v", err)
		return
	}
	raw, err := sonic.Marshal(v)
	if err != nil {
		log.Printf("[WARN] cache encode %s: %v", k, err)
		return
	}
	if err := r.Client.Set(ctx, k, raw, r.TTL).Err(); err != nil {
		log.Printf("[WARN] cache set %s: %v", k, err)
	}
}

func (r *RedisCache) Invalidate(ctx context.Context) {
	if err := r.Client.Incr(ctx, r.versionKey()).Err(); err != nil {
		log.Printf("[WARN] cache invalidate: %v", err)
	}
}

/* ============================ helpers ============================ */

// Remember: hit → nilai cache; miss → load lalu simpan.
func Remember[T any](ctx context.Context, c Cache, key string, load func() (T, error)) (T, error) {
	var out T
	if c == nil {
		return load()
	}
	if c.Get(ctx, key, &out) {
		return out, nil
	}
	out, err := load()
	if err != nil {
		return out, err
	}
	c.Set(ctx, key, out)
	return out, nil
}
