package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/revelaction/wordsense/config"
	"github.com/revelaction/wordsense/disambig"
	"github.com/revelaction/wordsense/lexicon"
	"github.com/revelaction/wordsense/storage"
	"github.com/revelaction/wordsense/storage/filesystem"
	"github.com/revelaction/wordsense/storage/sqlite/zombiezen"
	"github.com/revelaction/wordsense/storage/wordnet"
	"github.com/revelaction/wordsense/tagger"
)

// NewSenseRepository chooses the backend from path: a file is a SQLite
// database, a directory holding index.noun is a WordNet dict and any other
// directory is a JSON sense store.
func NewSenseRepository(p *Pool, path string) (storage.SenseRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("sense inventory not found: %s", path)
	}

	if !info.IsDir() {
		pool, err := p.Open(path)
		if err != nil {
			return nil, err
		}
		return zombiezen.NewSenseStore(pool), nil
	}

	if wordnet.IsDict(path) {
		d, err := wordnet.Open(path)
		if err != nil {
			return nil, err
		}
		p.track(d)
		return d, nil
	}

	return filesystem.NewSenseStore(path)
}

// Env is the configuration of one command with the resources built from it.
type Env struct {
	Config *config.Config
	Logger *zap.Logger

	pool Pool
}

func newEnv(c *cli.Context) (*Env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("lexicon") {
		cfg.LexiconPath = c.String("lexicon")
	}
	if c.IsSet("overlap") {
		cfg.Overlap = c.Bool("overlap")
	}
	if c.Bool("verbose") {
		cfg.Log.Development = true
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	return &Env{Config: cfg, Logger: logger}, nil
}

func (e *Env) Close() error {
	_ = e.Logger.Sync()
	return e.pool.Close()
}

func (e *Env) Lexicon() (*lexicon.Lexicon, error) {
	repo, err := NewSenseRepository(&e.pool, e.Config.LexiconPath)
	if err != nil {
		return nil, err
	}

	return lexicon.New(repo,
		lexicon.WithLogger(e.Logger),
		lexicon.WithCacheSize(e.Config.CacheSize),
	)
}

func (e *Env) Tagger() (*tagger.Prose, error) {
	return tagger.NewProse(e.Config.CacheSize)
}

func (e *Env) Driver() (*disambig.Driver, error) {
	lex, err := e.Lexicon()
	if err != nil {
		return nil, err
	}

	t, err := e.Tagger()
	if err != nil {
		return nil, err
	}

	return disambig.NewDriver(t, lex,
		disambig.WithLogger(e.Logger),
		disambig.WithOverlap(e.Config.Overlap),
	), nil
}
