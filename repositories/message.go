//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ta11ey/chaticusMaximus/domain"
	"github.com/ta11ey/chaticusMaximus/errors"
)

// maxAppendRetries bounds the CAS loop on sequence contention. Contention
// only happens when two posts to the same room commit at the same time, so
// a handful of retries is plenty.
const maxAppendRetries = 5

type IMessageRepository interface {
	Append(room, username, content string) (domain.Message, error)
	Recent(room string, limit int) ([]domain.Message, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// diskMessage is the msgpack-encoded record stored per message.
type diskMessage struct {
	Room      string `msgpack:"room"`
	Sequence  uint64 `msgpack:"sequence"`
	Timestamp int64  `msgpack:"timestamp"`
	Username  string `msgpack:"username"`
	Content   string `msgpack:"content"`
}

// Append assigns the next sequence number for the room and persists the
// message. The key is formatted as "msg:{room}:{sequence_padded}" to:
//  1. Ensure sequence sorting using 19-digit zero padding (lexicographical
//     order matches numeric order).
//  2. Make the write a conditional put: the candidate key is read inside the
//     same transaction, so Badger's conflict detection aborts the commit if
//     a concurrent writer claimed the same sequence first.
//
// On badger.ErrConflict the whole transaction is retried with a freshly
// computed sequence, which keeps sequences strictly increasing with no gaps
// and no duplicates under concurrent posts.
func (m MessageRepository) Append(room, username, content string) (domain.Message, error) {
	if username == "" {
		return domain.Message{}, fmt.Errorf("%w: username must not be empty", errors.ErrValidation)
	}
	if content == "" {
		return domain.Message{}, fmt.Errorf("%w: content must not be empty", errors.ErrValidation)
	}

	for attempt := 1; attempt <= maxAppendRetries; attempt++ {
		message := domain.Message{
			Room:      room,
			Timestamp: time.Now().UTC().Truncate(time.Second),
			Username:  username,
			Content:   content,
		}
		err := m.db.Update(func(txn *badger.Txn) error {
			next, err := nextSequence(txn, room)
			if err != nil {
				return err
			}
			message.Sequence = next

			key := messageKey(room, next)
			// Assert absence of the candidate key so it lands in the
			// transaction's read set.
			switch _, err = txn.Get(key); {
			case err == nil:
				return badger.ErrConflict
			case !stderrors.Is(err, badger.ErrKeyNotFound):
				return err
			}

			data, err := msgpack.Marshal(fromMessage(message))
			if err != nil {
				return err
			}
			return txn.Set(key, data)
		})
		switch {
		case err == nil:
			return message, nil
		case stderrors.Is(err, badger.ErrConflict):
			m.log.Debug("Sequence collision, retrying append",
				"room", room, "attempt", attempt)
		default:
			return domain.Message{}, fmt.Errorf("%w: append: %v", errors.ErrStorage, err)
		}
	}
	return domain.Message{}, fmt.Errorf("%w: room %q", errors.ErrSequenceContention, room)
}

// Recent retrieves the limit highest-sequence messages of a room using a
// reverse prefix scan. Results come back in descending sequence order as
// stored; re-ordering to chronological order is the caller's job.
func (m MessageRepository) Recent(room string, limit int) ([]domain.Message, error) {
	var records [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(messagePrefix(room))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible position, then walk backwards.
		seekKey := append(prefix, []byte(maxSequenceSuffix)...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if len(records) == limit {
				break
			}
			err := it.Item().Value(func(value []byte) error {
				records = append(records, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: recent: %v", errors.ErrStorage, err)
	}

	messages := make([]domain.Message, 0, len(records))
	for _, record := range records {
		var disk diskMessage
		if err = msgpack.Unmarshal(record, &disk); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", errors.ErrStorage, err)
		}
		messages = append(messages, toMessage(disk))
	}
	return messages, nil
}

// maxSequenceSuffix sorts after every padded sequence value.
const maxSequenceSuffix = "9999999999999999999"

func messagePrefix(room string) string {
	return fmt.Sprintf("msg:%s:", room)
}

func messageKey(room string, sequence uint64) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d", room, sequence))
}

// nextSequence computes one greater than the highest sequence stored for
// the room, or 0 when the room is empty.
func nextSequence(txn *badger.Txn, room string) (uint64, error) {
	prefix := []byte(messagePrefix(room))
	options := badger.DefaultIteratorOptions
	options.Reverse = true
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	defer it.Close()

	it.Seek(append(prefix, []byte(maxSequenceSuffix)...))
	if !it.ValidForPrefix(prefix) {
		return 0, nil
	}
	suffix := string(it.Item().Key()[len(prefix):])
	last, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed message key %q: %w", string(it.Item().Key()), err)
	}
	return last + 1, nil
}

func fromMessage(message domain.Message) diskMessage {
	return diskMessage{
		Room:      message.Room,
		Sequence:  message.Sequence,
		Timestamp: message.Timestamp.Unix(),
		Username:  message.Username,
		Content:   message.Content,
	}
}

func toMessage(disk diskMessage) domain.Message {
	return domain.Message{
		Room:      disk.Room,
		Sequence:  disk.Sequence,
		Timestamp: time.Unix(disk.Timestamp, 0).UTC(),
		Username:  disk.Username,
		Content:   disk.Content,
	}
}
