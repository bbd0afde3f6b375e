package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/revelaction/wordsense/sense"
	"github.com/revelaction/wordsense/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type SenseStore struct {
	pool *sqlitex.Pool
}

var _ storage.SenseRepository = (*SenseStore)(nil)

func NewSenseStore(pool *sqlitex.Pool) *SenseStore {
	return &SenseStore{pool: pool}
}

func (h *SenseStore) Lookup(lemma string, class sense.Class) ([]sense.Sense, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	query := "SELECT class, sense_id, lemmas, definition, examples FROM senses WHERE lemma = ? ORDER BY class, rank"
	args := []interface{}{lemma}
	if class != sense.Any {
		query = "SELECT class, sense_id, lemmas, definition, examples FROM senses WHERE lemma = ? AND class = ? ORDER BY rank"
		args = append(args, int(class))
	}

	var senses []sense.Sense
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			sn, err := scanSense(stmt, 0)
			if err != nil {
				return err
			}
			senses = append(senses, sn)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return senses, nil
}

func (h *SenseStore) Exceptions(form string, class sense.Class) ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var bases []string
	err = sqlitex.Execute(conn, "SELECT bases FROM exceptions WHERE form = ? AND class = ? LIMIT 1", &sqlitex.ExecOptions{
		Args: []interface{}{form, int(class)},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			return json.Unmarshal([]byte(stmt.ColumnText(0)), &bases)
		},
	})
	if err != nil {
		return nil, err
	}

	return bases, nil
}

func (h *SenseStore) Size() (int, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer h.pool.Put(conn)

	var n int
	err = sqlitex.Execute(conn, "SELECT COUNT(*) FROM (SELECT DISTINCT lemma, class FROM senses)", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			n = stmt.ColumnInt(0)
			return nil
		},
	})

	return n, err
}

// EachEntry streams the senses ordered by class and lemma, grouping the
// consecutive rows of a (lemma, class) pair into one Entry.
func (h *SenseStore) EachEntry(fn func(sense.Entry) error) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	var current sense.Entry
	err = sqlitex.Execute(conn, "SELECT lemma, class, sense_id, lemmas, definition, examples FROM senses ORDER BY class, lemma, rank", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			lemma := stmt.ColumnText(0)
			sn, err := scanSense(stmt, 1)
			if err != nil {
				return err
			}

			if lemma != current.Lemma || sn.Class != current.Class {
				if len(current.Senses) > 0 {
					if err := fn(current); err != nil {
						return err
					}
				}
				current = sense.Entry{Lemma: lemma, Class: sn.Class}
			}

			current.Senses = append(current.Senses, sn)
			return nil
		},
	})
	if err != nil {
		return err
	}

	if len(current.Senses) > 0 {
		return fn(current)
	}

	return nil
}

func (h *SenseStore) EachException(fn func(sense.Exception) error) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	return sqlitex.Execute(conn, "SELECT form, class, bases FROM exceptions ORDER BY class, form", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			exc := sense.Exception{
				Form:  stmt.ColumnText(0),
				Class: sense.Class(stmt.ColumnInt(1)),
			}
			if err := json.Unmarshal([]byte(stmt.ColumnText(2)), &exc.Bases); err != nil {
				return err
			}
			return fn(exc)
		},
	})
}

func (h *SenseStore) Write(entry sense.Entry) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "DELETE FROM senses WHERE lemma = ? AND class = ?", &sqlitex.ExecOptions{
		Args: []interface{}{entry.Lemma, int(entry.Class)},
	})
	if err != nil {
		return fmt.Errorf("failed to delete senses of %s: %w", entry.Lemma, err)
	}

	for rank, sn := range entry.Senses {
		lemmas, err := json.Marshal(nonNil(sn.Lemmas))
		if err != nil {
			return err
		}
		examples, err := json.Marshal(nonNil(sn.Examples))
		if err != nil {
			return err
		}

		err = sqlitex.Execute(conn, "INSERT INTO senses (lemma, class, rank, sense_id, lemmas, definition, examples) VALUES (?, ?, ?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{entry.Lemma, int(entry.Class), rank, sn.Id, string(lemmas), sn.Definition, string(examples)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sense %s: %w", sn.Id, err)
		}
	}

	return nil
}

func (h *SenseStore) WriteException(exc sense.Exception) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	bases, err := json.Marshal(nonNil(exc.Bases))
	if err != nil {
		return err
	}

	return sqlitex.Execute(conn, `
		INSERT INTO exceptions (form, class, bases)
		VALUES (?, ?, ?)
		ON CONFLICT(form, class) DO UPDATE SET
			bases = excluded.bases
	`, &sqlitex.ExecOptions{
		Args: []interface{}{exc.Form, int(exc.Class), string(bases)},
	})
}

// scanSense reads the columns class, sense_id, lemmas, definition, examples
// starting at column first.
func scanSense(stmt *sqlite.Stmt, first int) (sense.Sense, error) {
	sn := sense.Sense{
		Class:      sense.Class(stmt.ColumnInt(first)),
		Id:         stmt.ColumnText(first + 1),
		Definition: stmt.ColumnText(first + 3),
	}

	if err := json.Unmarshal([]byte(stmt.ColumnText(first+2)), &sn.Lemmas); err != nil {
		return sense.Sense{}, err
	}

	if err := json.Unmarshal([]byte(stmt.ColumnText(first+4)), &sn.Examples); err != nil {
		return sense.Sense{}, err
	}

	return sn, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
