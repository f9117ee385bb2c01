// Command inspect dumps the durable chat state (message log and connection
// set) as terminal tables. It opens Badger read-only so it can run next to a
// live server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/vmihailenco/msgpack/v5"
)

type diskMessage struct {
	Room      string `msgpack:"room"`
	Sequence  uint64 `msgpack:"sequence"`
	Timestamp int64  `msgpack:"timestamp"`
	Username  string `msgpack:"username"`
	Content   string `msgpack:"content"`
}

type diskConnection struct {
	ID          string `msgpack:"id"`
	ConnectedAt int64  `msgpack:"connected_at"`
}

func main() {
	dbPath := flag.String("db", "", "Path to badger DB")
	flag.Parse()
	if *dbPath == "" {
		log.Fatal("missing -db flag")
	}

	// BypassLockGuard allows opening while the server holds the lock.
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	if err := dumpMessages(db); err != nil {
		log.Fatal("Error while scanning messages: ", err)
	}
	fmt.Println()
	if err := dumpConnections(db); err != nil {
		log.Fatal("Error while scanning connections: ", err)
	}
}

func newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func dumpMessages(db *badger.DB) error {
	color.Green.Println("Messages")
	table := newTable([]string{"Key", "Room", "Sequence", "Timestamp", "Username", "Content"})

	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("msg:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				var m diskMessage
				if err := msgpack.Unmarshal(v, &m); err != nil {
					// Keep scanning, one bad record should not hide the rest.
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}
				table.Append([]string{
					string(item.Key()),
					m.Room,
					fmt.Sprintf("%d", m.Sequence),
					time.Unix(m.Timestamp, 0).UTC().Format(time.RFC3339),
					m.Username,
					m.Content,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	table.Render()
	return nil
}

func dumpConnections(db *badger.DB) error {
	color.Green.Println("Connections")
	table := newTable([]string{"Key", "Connection ID", "Connected At"})

	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("conn:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				var c diskConnection
				if err := msgpack.Unmarshal(v, &c); err != nil {
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}
				table.Append([]string{
					string(item.Key()),
					c.ID,
					time.Unix(c.ConnectedAt, 0).UTC().Format(time.RFC3339),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	table.Render()
	return nil
}
