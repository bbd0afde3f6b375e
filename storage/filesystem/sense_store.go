package filesystem

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/revelaction/wordsense/sense"
	"github.com/revelaction/wordsense/storage"
)

const (
	ext = ".json"

	// exceptionsFile contains one JSON encoded sense.Exception per line.
	// Later lines replace earlier lines for the same form and class.
	exceptionsFile = "_exceptions.jsonl"
)

// lemmaFile is the content of a lemma JSON file. Senses of all classes are
// kept in one file, ordered by class.
type lemmaFile struct {
	Lemma  string        `json:"lemma"`
	Senses []sense.Sense `json:"senses"`
}

type excKey struct {
	form  string
	class sense.Class
}

// SenseStore is a sense inventory stored as a directory of JSON files, one
// file per lemma.
type SenseStore struct {
	root string

	// exceptions are loaded on first use
	excOnce sync.Once
	excErr  error
	exc     map[excKey][]string
}

var _ storage.SenseRepository = (*SenseStore)(nil)

// NewSenseStore creates a filesystem sense store rooted at dir. The
// directory must exist.
func NewSenseStore(dir string) (*SenseStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	return &SenseStore{root: dir}, nil
}

func (s *SenseStore) path(lemma string) string {
	return filepath.Join(s.root, url.PathEscape(lemma)+ext)
}

func (s *SenseStore) Lookup(lemma string, class sense.Class) ([]sense.Sense, error) {
	lf, err := readLemmaFile(s.path(lemma))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	if class == sense.Any {
		return lf.Senses, nil
	}

	var senses []sense.Sense
	for _, sn := range lf.Senses {
		if sn.Class == class {
			senses = append(senses, sn)
		}
	}

	return senses, nil
}

func (s *SenseStore) Exceptions(form string, class sense.Class) ([]string, error) {
	s.excOnce.Do(func() {
		s.exc, s.excErr = s.readExceptions()
	})

	if s.excErr != nil {
		return nil, s.excErr
	}

	return s.exc[excKey{form, class}], nil
}

func (s *SenseStore) Size() (int, error) {
	n := 0
	err := s.EachEntry(func(sense.Entry) error {
		n++
		return nil
	})

	return n, err
}

// EachEntry scans the lemma files in directory order (sorted by file name)
// and returns one Entry per lemma and class.
func (s *SenseStore) EachEntry(fn func(sense.Entry) error) error {
	files, err := os.ReadDir(s.root)
	if err != nil {
		return err
	}

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ext {
			continue
		}

		lf, err := readLemmaFile(filepath.Join(s.root, file.Name()))
		if err != nil {
			return err
		}

		for _, class := range sense.Classes() {
			entry := sense.Entry{Lemma: lf.Lemma, Class: class}
			for _, sn := range lf.Senses {
				if sn.Class == class {
					entry.Senses = append(entry.Senses, sn)
				}
			}

			if len(entry.Senses) == 0 {
				continue
			}

			if err := fn(entry); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *SenseStore) EachException(fn func(sense.Exception) error) error {
	exc, err := s.readExceptions()
	if err != nil {
		return err
	}

	keys := make([]excKey, 0, len(exc))
	for k := range exc {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].class != keys[j].class {
			return keys[i].class < keys[j].class
		}
		return keys[i].form < keys[j].form
	})

	for _, k := range keys {
		if err := fn(sense.Exception{Form: k.form, Class: k.class, Bases: exc[k]}); err != nil {
			return err
		}
	}

	return nil
}

// Write replaces the senses of the entry class in the lemma file, keeping
// the senses of the other classes.
func (s *SenseStore) Write(entry sense.Entry) error {
	if entry.Lemma == "" {
		return errors.New("entry without lemma")
	}

	p := s.path(entry.Lemma)
	lf, err := readLemmaFile(p)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	lf.Lemma = entry.Lemma
	kept := []sense.Sense{}
	for _, sn := range lf.Senses {
		if sn.Class != entry.Class {
			kept = append(kept, sn)
		}
	}

	for _, sn := range entry.Senses {
		sn.Class = entry.Class
		kept = append(kept, sn)
	}

	// senses of a class stay contiguous and in inventory order
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Class < kept[j].Class
	})
	lf.Senses = kept

	data, err := json.MarshalIndent(lf, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(p, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", p, err)
	}

	return nil
}

func (s *SenseStore) WriteException(exc sense.Exception) error {
	data, err := json.Marshal(exc)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(s.root, exceptionsFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return err
	}

	// force a reload on the next Exceptions call
	s.excOnce = sync.Once{}
	return f.Close()
}

func (s *SenseStore) readExceptions() (map[excKey][]string, error) {
	exc := map[excKey][]string{}

	f, err := os.Open(filepath.Join(s.root, exceptionsFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return exc, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var e sense.Exception
		if err := json.Unmarshal([]byte(text), &e); err != nil {
			return nil, fmt.Errorf("%s:%d: JSON decoding error: %w", exceptionsFile, line, err)
		}

		exc[excKey{e.Form, e.Class}] = e.Bases
	}

	return exc, scanner.Err()
}

// readLemmaFile reads a lemma JSON file from the given path and unmarshals
// it.
func readLemmaFile(path string) (lemmaFile, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return lemmaFile{}, err
	}

	var lf lemmaFile
	if err := json.Unmarshal(f, &lf); err != nil {
		return lemmaFile{}, fmt.Errorf("JSON decoding error in %s: %w", path, err)
	}

	return lf, nil
}
