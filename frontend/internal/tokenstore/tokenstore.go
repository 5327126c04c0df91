// Package tokenstore persists the single bearer token of the client.
package tokenstore

import (
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	bucketAuth = "auth"
	keyToken   = "auth_token"
)

// ErrNoToken is returned by (*Store).Get when no token is persisted.
var ErrNoToken = errors.New("no stored token")

type Store struct {
	db *bolt.DB
}

// Open opens or creates the token database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open token store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketAuth))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize token store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get() (string, error) {
	var token string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketAuth)).Get([]byte(keyToken))
		if v == nil {
			return ErrNoToken
		}
		token = string(v)
		return nil
	})
	return token, err
}

func (s *Store) Set(token string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketAuth)).Put([]byte(keyToken), []byte(token))
	})
}

// Delete removes the token. Deleting a missing token is not an error.
func (s *Store) Delete() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketAuth)).Delete([]byte(keyToken))
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
