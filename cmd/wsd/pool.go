package main

import (
	"errors"
	"fmt"
	"io"

	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/wordsense/storage/sqlite/zombiezen"
)

// Pool holds the SQLite pools and the other backend resources opened by a
// command, one pool per path and mode.
type Pool struct {
	pools   map[poolKey]*sqlitex.Pool
	closers []io.Closer
}

type poolKey struct {
	path     string
	readOnly bool
}

// Open returns a read-only pool for lookups on the database at path.
func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	return p.open(poolKey{path: path, readOnly: true})
}

// Create opens a writable pool at path and creates the sense tables if
// needed.
func (p *Pool) Create(path string) (*sqlitex.Pool, error) {
	pool, err := p.open(poolKey{path: path})
	if err != nil {
		return nil, err
	}

	if err := zombiezen.CreateSchemas(pool, zombiezen.SensesSchema); err != nil {
		return nil, fmt.Errorf("failed to create senses tables: %w", err)
	}
	return pool, nil
}

func (p *Pool) open(key poolKey) (*sqlitex.Pool, error) {
	if pool, ok := p.pools[key]; ok {
		return pool, nil
	}

	newPool := zombiezen.NewPool
	if key.readOnly {
		newPool = zombiezen.NewReadOnlyPool
	}

	pool, err := newPool(key.path)
	if err != nil {
		return nil, err
	}

	if p.pools == nil {
		p.pools = map[poolKey]*sqlitex.Pool{}
	}
	p.pools[key] = pool
	return pool, nil
}

func (p *Pool) track(c io.Closer) {
	p.closers = append(p.closers, c)
}

func (p *Pool) Close() error {
	var errs []error
	for _, pool := range p.pools {
		errs = append(errs, pool.Close())
	}
	for _, c := range p.closers {
		errs = append(errs, c.Close())
	}
	p.pools = nil
	p.closers = nil
	return errors.Join(errs...)
}
