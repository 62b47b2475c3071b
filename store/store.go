package store

import (
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/schoolday/internal/osutil"
)

var kvBucket = []byte("kv")

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath, time.Second)
	if err != nil {
		return nil, err
	}

	// Create the bucket for storing data if it does not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists(kvBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}

func (c *Client) Get(key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(kvBucket).Get([]byte(key))
		if b == nil {
			return nil
		}

		// the slice is only valid for the life of the transaction
		value, ok = string(b), true

		return nil
	})

	return value, ok, err
}

func (c *Client) Set(key, value string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(kvBucket).Put([]byte(key), []byte(value))
	})
}

func (c *Client) SetMany(values map[string]string) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(kvBucket)

		for k, v := range values {
			if err := b.Put([]byte(k), []byte(v)); err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) Keys() ([]string, error) {
	var keys []string

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket(kvBucket).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})

	return keys, err
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string, timeout time.Duration) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: timeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}
