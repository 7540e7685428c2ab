package bolt

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/aretw0/termgen/pkg/codec"
	"github.com/aretw0/termgen/pkg/domain"
	bolt "go.etcd.io/bbolt"
)

// DefaultBucket holds the collection when no bucket is configured.
const DefaultBucket = "terms"

// Store implements ports.Store using a bbolt bucket.
// Keys are big-endian sequence numbers, so cursor order is collection order.
type Store struct {
	db     *bolt.DB
	path   string
	bucket []byte
}

// Open opens (or creates) the database at path.
func Open(path, bucket string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}
	if bucket == "" {
		bucket = DefaultBucket
	}
	return &Store{db: db, path: path, bucket: []byte(bucket)}, nil
}

// Destination returns the database path and bucket.
func (s *Store) Destination() string {
	return fmt.Sprintf("%s#%s", s.path, s.bucket)
}

// Write drops the bucket and refills it with terms in one transaction.
func (s *Store) Write(ctx context.Context, terms []domain.Term) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(s.bucket); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		bkt, err := tx.CreateBucket(s.bucket)
		if err != nil {
			return err
		}
		// Keys only ever increase.
		bkt.FillPercent = 1.0

		var key [8]byte
		for i, term := range terms {
			binary.BigEndian.PutUint64(key[:], uint64(i))
			if err := bkt.Put(key[:], []byte(codec.Serialize(term))); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write terms to bbolt: %w", err)
	}
	return nil
}

// Read returns the bucket content in key order.
func (s *Store) Read(ctx context.Context) ([]domain.Term, error) {
	var terms []domain.Term
	err := s.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(s.bucket)
		if bkt == nil {
			return domain.ErrDestinationNotFound
		}
		return bkt.ForEach(func(_, v []byte) error {
			// Tokenize copies out of the mmap'd value.
			terms = append(terms, codec.Tokenize(string(v)))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return terms, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
