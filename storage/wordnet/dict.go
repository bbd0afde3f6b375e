// Package wordnet reads a Princeton WordNet 3.x dict/ directory as a
// read-only sense inventory.
//
// The index.<pos> and <pos>.exc files are loaded at Open. The data.<pos>
// files are memory mapped and a synset line is parsed only when a lookup
// reaches its offset.
package wordnet

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/revelaction/wordsense/sense"
	"github.com/revelaction/wordsense/storage"
)

// IndexFile is the file whose presence identifies a dict directory.
const IndexFile = "index.noun"

var fileNames = map[sense.Class]string{
	sense.Noun:      "noun",
	sense.Verb:      "verb",
	sense.Adjective: "adj",
	sense.Adverb:    "adv",
}

var quoted = regexp.MustCompile(`"([^"]*)"`)

type dataFile struct {
	f *os.File
	m mmap.MMap
}

type indexEntry struct {
	lemma   string
	offsets []int64
}

type Dict struct {
	dir string

	data map[sense.Class]*dataFile

	// index entries in file order, and lemma to position
	entries map[sense.Class][]indexEntry
	index   map[sense.Class]map[string]int

	exc map[sense.Class]map[string][]string
}

var _ storage.SenseRepository = (*Dict)(nil)

// IsDict reports whether dir looks like a WordNet dict directory.
func IsDict(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, IndexFile))
	return err == nil
}

// Open loads the index and exception files of dir and maps its data files.
// A part of speech whose files are missing is treated as empty.
func Open(dir string) (*Dict, error) {
	if !IsDict(dir) {
		return nil, fmt.Errorf("%s is not a WordNet dict directory: missing %s", dir, IndexFile)
	}

	d := &Dict{
		dir:     dir,
		data:    map[sense.Class]*dataFile{},
		entries: map[sense.Class][]indexEntry{},
		index:   map[sense.Class]map[string]int{},
		exc:     map[sense.Class]map[string][]string{},
	}

	for _, class := range sense.Classes() {
		if err := d.loadIndex(class); err != nil {
			d.Close()
			return nil, err
		}
		if err := d.loadExceptions(class); err != nil {
			d.Close()
			return nil, err
		}
		if err := d.mapData(class); err != nil {
			d.Close()
			return nil, err
		}
	}

	return d, nil
}

// Close unmaps the data files.
func (d *Dict) Close() error {
	var errs []error
	for _, df := range d.data {
		if df.m != nil {
			errs = append(errs, df.m.Unmap())
		}
		errs = append(errs, df.f.Close())
	}
	d.data = map[sense.Class]*dataFile{}
	return errors.Join(errs...)
}

func (d *Dict) loadIndex(class sense.Class) error {
	f, err := os.Open(filepath.Join(d.dir, "index."+fileNames[class]))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	positions := map[string]int{}
	var entries []indexEntry

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		// license header
		if strings.HasPrefix(line, "  ") || line == "" {
			continue
		}

		e, err := parseIndexLine(line)
		if err != nil {
			return fmt.Errorf("index.%s line %d: %w", fileNames[class], lineNum, err)
		}

		positions[e.lemma] = len(entries)
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	d.entries[class] = entries
	d.index[class] = positions
	return nil
}

// parseIndexLine parses
//
//	lemma pos synset_cnt p_cnt [ptr_symbol...] sense_cnt tagsense_cnt synset_offset [synset_offset...]
func parseIndexLine(line string) (indexEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return indexEntry{}, fmt.Errorf("too few fields")
	}

	synsetCnt, err := strconv.Atoi(fields[2])
	if err != nil {
		return indexEntry{}, fmt.Errorf("bad synset_cnt %q: %w", fields[2], err)
	}

	if synsetCnt > len(fields)-4 {
		return indexEntry{}, fmt.Errorf("synset_cnt %d exceeds fields", synsetCnt)
	}

	e := indexEntry{lemma: fields[0]}
	for _, o := range fields[len(fields)-synsetCnt:] {
		off, err := strconv.ParseInt(o, 10, 64)
		if err != nil {
			return indexEntry{}, fmt.Errorf("bad offset %q: %w", o, err)
		}
		e.offsets = append(e.offsets, off)
	}

	return e, nil
}

func (d *Dict) loadExceptions(class sense.Class) error {
	f, err := os.Open(filepath.Join(d.dir, fileNames[class]+".exc"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	exc := map[string][]string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		exc[fields[0]] = append(exc[fields[0]], fields[1:]...)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	d.exc[class] = exc
	return nil
}

func (d *Dict) mapData(class sense.Class) error {
	f, err := os.Open(filepath.Join(d.dir, "data."+fileNames[class]))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}

	df := &dataFile{f: f}
	// an empty file cannot be mapped
	if info.Size() > 0 {
		df.m, err = mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			f.Close()
			return fmt.Errorf("mmap data.%s: %w", fileNames[class], err)
		}
	}

	d.data[class] = df
	return nil
}

// Lookup returns the senses of lemma in index order. Spaces in lemma match
// the underscores of collocations. Other has no index, it finds nothing.
func (d *Dict) Lookup(lemma string, class sense.Class) ([]sense.Sense, error) {
	key := strings.ReplaceAll(lemma, " ", "_")

	classes := []sense.Class{class}
	if class == sense.Any {
		classes = sense.Classes()
	}

	var senses []sense.Sense
	for _, c := range classes {
		pos, ok := d.index[c][key]
		if !ok {
			continue
		}

		for _, off := range d.entries[c][pos].offsets {
			sn, err := d.synset(c, off)
			if err != nil {
				return nil, err
			}
			senses = append(senses, sn)
		}
	}

	return senses, nil
}

func (d *Dict) Exceptions(form string, class sense.Class) ([]string, error) {
	return underscoresToSpaces(d.exc[class][strings.ReplaceAll(form, " ", "_")]), nil
}

func (d *Dict) synset(class sense.Class, offset int64) (sense.Sense, error) {
	df, ok := d.data[class]
	if !ok || offset < 0 || offset >= int64(len(df.m)) {
		return sense.Sense{}, fmt.Errorf("data.%s: offset %d out of range", fileNames[class], offset)
	}

	line := df.m[offset:]
	if end := bytes.IndexByte(line, '\n'); end >= 0 {
		line = line[:end]
	}

	sn, err := parseDataLine(string(line))
	if err != nil {
		return sense.Sense{}, fmt.Errorf("data.%s offset %d: %w", fileNames[class], offset, err)
	}

	sn.Id = fmt.Sprintf("%08d-%s", offset, class.Code())
	return sn, nil
}

// parseDataLine parses
//
//	synset_offset lex_filenum ss_type w_cnt word lex_id [word lex_id...] p_cnt [ptr...] [frames...] | gloss
func parseDataLine(line string) (sense.Sense, error) {
	columns, gloss, found := strings.Cut(line, "|")
	if !found {
		return sense.Sense{}, fmt.Errorf("missing gloss")
	}

	fields := strings.Fields(columns)
	if len(fields) < 4 {
		return sense.Sense{}, fmt.Errorf("too few fields")
	}

	class, err := sense.ParseClass(fields[2])
	if err != nil {
		return sense.Sense{}, err
	}

	wCnt, err := strconv.ParseInt(fields[3], 16, 32)
	if err != nil {
		return sense.Sense{}, fmt.Errorf("bad w_cnt %q: %w", fields[3], err)
	}

	if 4+2*int(wCnt) > len(fields) {
		return sense.Sense{}, fmt.Errorf("w_cnt %d exceeds fields", wCnt)
	}

	sn := sense.Sense{Class: class}
	for i := 0; i < int(wCnt); i++ {
		w := fields[4+2*i]
		// adjective markers: (a), (p), (ip)
		if p := strings.IndexByte(w, '('); p > 0 {
			w = w[:p]
		}
		sn.Lemmas = append(sn.Lemmas, strings.ReplaceAll(w, "_", " "))
	}

	for _, m := range quoted.FindAllStringSubmatch(gloss, -1) {
		sn.Examples = append(sn.Examples, m[1])
	}

	def := quoted.ReplaceAllString(gloss, "")
	sn.Definition = strings.Trim(strings.TrimSpace(def), "; ")

	return sn, nil
}

// Size is the number of (lemma, class) index entries.
func (d *Dict) Size() (int, error) {
	n := 0
	for _, c := range sense.Classes() {
		n += len(d.entries[c])
	}
	return n, nil
}

func (d *Dict) EachEntry(fn func(sense.Entry) error) error {
	for _, c := range sense.Classes() {
		for _, e := range d.entries[c] {
			entry := sense.Entry{Lemma: strings.ReplaceAll(e.lemma, "_", " "), Class: c}
			for _, off := range e.offsets {
				sn, err := d.synset(c, off)
				if err != nil {
					return err
				}
				entry.Senses = append(entry.Senses, sn)
			}
			if err := fn(entry); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Dict) EachException(fn func(sense.Exception) error) error {
	for _, c := range sense.Classes() {
		forms := make([]string, 0, len(d.exc[c]))
		for form := range d.exc[c] {
			forms = append(forms, form)
		}
		slices.Sort(forms)

		for _, form := range forms {
			exc := sense.Exception{
				Form:  strings.ReplaceAll(form, "_", " "),
				Class: c,
				Bases: underscoresToSpaces(d.exc[c][form]),
			}
			if err := fn(exc); err != nil {
				return err
			}
		}
	}
	return nil
}

func underscoresToSpaces(words []string) []string {
	if words == nil {
		return nil
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ReplaceAll(w, "_", " ")
	}
	return out
}

func (d *Dict) Write(sense.Entry) error {
	return storage.ErrReadOnly
}

func (d *Dict) WriteException(sense.Exception) error {
	return storage.ErrReadOnly
}
