package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/termgen/pkg/codec"
	"github.com/aretw0/termgen/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "termgen:"
	defaultName   = "terms"
	pushBatch     = 1000
)

// Store implements ports.Store using a Redis list.
// Each term is one list element in its serialized form. A companion count
// key records that the collection was written, even when it is empty.
type Store struct {
	client *backend.Client
	prefix string
	name   string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for the collection.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithName sets the collection name appended to the prefix.
func WithName(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.name = name
		}
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: defaultPrefix,
		name:   defaultName,
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key() string {
	return s.prefix + s.name
}

func (s *Store) countKey() string {
	return s.prefix + s.name + ":count"
}

// Destination returns the list key.
func (s *Store) Destination() string {
	return "redis:" + s.key()
}

// Write replaces the list with terms inside a MULTI/EXEC transaction.
func (s *Store) Write(ctx context.Context, terms []domain.Term) error {
	pipe := s.client.TxPipeline()

	pipe.Del(ctx, s.key())
	for start := 0; start < len(terms); start += pushBatch {
		end := min(start+pushBatch, len(terms))
		values := make([]any, 0, end-start)
		for _, term := range terms[start:end] {
			values = append(values, codec.Serialize(term))
		}
		pipe.RPush(ctx, s.key(), values...)
	}
	pipe.Set(ctx, s.countKey(), len(terms), s.ttl)
	if s.ttl > 0 && len(terms) > 0 {
		pipe.Expire(ctx, s.key(), s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write terms to redis: %w", err)
	}
	return nil
}

// Read returns the list content in order.
func (s *Store) Read(ctx context.Context) ([]domain.Term, error) {
	n, err := s.client.Exists(ctx, s.countKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check redis key: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrDestinationNotFound
	}

	lines, err := s.client.LRange(ctx, s.key(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read terms from redis: %w", err)
	}

	terms := make([]domain.Term, 0, len(lines))
	for _, line := range lines {
		terms = append(terms, codec.Tokenize(line))
	}
	return terms, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
