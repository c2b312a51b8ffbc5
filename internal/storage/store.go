package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"

	log "github.com/sirupsen/logrus"
)

// Store is a namespaced JSON key/value store on local disk, one file per key.
// It mirrors each collection in full on every save; there are no deltas and no
// versioning. A missing or undecodable key degrades to the empty value rather
// than an error, and write failures are swallowed.
type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created lazily on the
// first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the value stored under key into out. If the key is absent or the
// stored payload fails to decode, out is left untouched and Load returns
// normally. Corrupt state degrades to empty, it is never surfaced.
//
// Decoding goes through a scratch value so a payload that fails mid-way (type
// mismatches surface only once Unmarshal reaches the bad element) cannot leave
// out partially populated.
func (s *Store) Load(key string, out interface{}) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return
	}
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return
	}
	scratch := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(data, scratch.Interface()); err != nil {
		log.WithFields(log.Fields{"key": key, "error": err}).Warn("discarding undecodable stored value")
		return
	}
	rv.Elem().Set(scratch.Elem())
}

// Save serializes v in full and writes it under key. Failures are logged and
// swallowed; there is no retry or quota handling.
func (s *Store) Save(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithFields(log.Fields{"key": key, "error": err}).Warn("failed to serialize value")
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.WithFields(log.Fields{"key": key, "error": err}).Warn("failed to create data dir")
		return
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		log.WithFields(log.Fields{"key": key, "error": err}).Warn("failed to persist value")
	}
}

// Delete removes the key. Best effort.
func (s *Store) Delete(key string) {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		log.WithFields(log.Fields{"key": key, "error": err}).Warn("failed to delete stored value")
	}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
