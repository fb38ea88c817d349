package gocharm

import (
	"crypto/tls"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var once sync.Once
var redisClient *redis.Client

// RedisConnOptions holds the connection settings of the Redis server used
// to persist mining results
type RedisConnOptions struct {
	DB                int
	Network           string
	Address           string
	Username          string
	Password          string
	ConnectionTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	PoolSize          int
	TLSConfig         *tls.Config
}

// GetRedisClient returns the client created by MakeRedisClient, or nil
func GetRedisClient() *redis.Client {
	return redisClient
}

// MakeRedisClient creates the shared Redis client. Only the first call has
// an effect.
func MakeRedisClient(options RedisConnOptions) *redis.Client {
	once.Do(func() {
		redisClient = NewRedisClient(options)
	})
	return redisClient
}

// NewRedisClient creates a Redis client which isn't shared
func NewRedisClient(options RedisConnOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		DB:           options.DB,
		Network:      options.Network,
		Addr:         options.Address,
		Username:     options.Username,
		Password:     options.Password,
		DialTimeout:  options.ConnectionTimeout,
		ReadTimeout:  options.ReadTimeout,
		WriteTimeout: options.WriteTimeout,
		PoolSize:     options.PoolSize,
		TLSConfig:    options.TLSConfig,
	})
}

// ParseRedisURI parses a redis:// or rediss:// _uri_ into RedisConnOptions
func ParseRedisURI(uri string) (*RedisConnOptions, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("gocharm: could not parse redis uri: %v", err)
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return nil, fmt.Errorf("gocharm: unsupported uri scheme %q", u.Scheme)
	}
	options, err := redis.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("gocharm: error while parsing redis uri: %v", err)
	}
	return makeConnOptions(options), nil
}

func makeConnOptions(options *redis.Options) *RedisConnOptions {
	return &RedisConnOptions{
		DB:                options.DB,
		Network:           options.Network,
		Address:           options.Addr,
		Username:          options.Username,
		Password:          options.Password,
		ConnectionTimeout: options.DialTimeout,
		ReadTimeout:       options.ReadTimeout,
		WriteTimeout:      options.WriteTimeout,
		PoolSize:          options.PoolSize,
		TLSConfig:         options.TLSConfig,
	}
}
