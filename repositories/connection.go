//go:generate go run go.uber.org/mock/mockgen -source=connection.go -destination=../mocks/mock_connection_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ta11ey/chaticusMaximus/domain"
	"github.com/ta11ey/chaticusMaximus/errors"
)

type IConnectionRepository interface {
	Add(connectionID string) error
	Remove(connectionID string) error
	All() ([]string, error)
}

// ConnectionRepository is the durable set of live connection identifiers,
// keyed "conn:{connectionId}".
type ConnectionRepository struct {
	db *badger.DB
}

func NewConnectionRepository(db *badger.DB) ConnectionRepository {
	return ConnectionRepository{db: db}
}

type diskConnection struct {
	ID          string `msgpack:"id"`
	ConnectedAt int64  `msgpack:"connected_at"`
}

// Add inserts the identifier. Re-adding an existing identifier overwrites
// the record, which keeps the operation idempotent.
func (c ConnectionRepository) Add(connectionID string) error {
	connection := domain.Connection{ID: connectionID, ConnectedAt: time.Now().UTC()}
	data, err := msgpack.Marshal(diskConnection{
		ID:          connection.ID,
		ConnectedAt: connection.ConnectedAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("%w: marshal connection: %v", errors.ErrStorage, err)
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(connectionKey(connectionID), data)
	})
	if err != nil {
		return fmt.Errorf("%w: add connection: %v", errors.ErrStorage, err)
	}
	return nil
}

// Remove deletes the identifier. Absence is not an error.
func (c ConnectionRepository) Remove(connectionID string) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(connectionKey(connectionID))
	})
	if err != nil {
		return fmt.Errorf("%w: remove connection: %v", errors.ErrStorage, err)
	}
	return nil
}

// All enumerates every live identifier. No ordering guarantee.
func (c ConnectionRepository) All() ([]string, error) {
	var ids []string
	err := c.db.View(func(txn *badger.Txn) error {
		prefix := []byte(connectionPrefix)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list connections: %v", errors.ErrStorage, err)
	}
	return ids, nil
}

const connectionPrefix = "conn:"

func connectionKey(connectionID string) []byte {
	return []byte(connectionPrefix + connectionID)
}
