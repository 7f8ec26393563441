// Package prefs persists player preferences such as toggle crouch and look
// sensitivity. Values are JSON items in a gdata store, read through typed
// Get and Subscribe helpers.
package prefs

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

// Look sensitivity keys. The toggle crouch keys come from
// config.SaveDataConfig.
const (
	LookSensitivityDesktop = "lookSensitivityDesktop"
	LookSensitivityGamepad = "lookSensitivityGamepad"
)

// Backend stores raw items by key. *gdata.Manager satisfies it.
type Backend interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store caches preference items and notifies subscribers on Set.
type Store struct {
	backend     Backend
	cache       map[string][]byte
	subscribers map[string][]func([]byte)
}

// Open returns a store backed by the user's data directory. When that
// cannot be opened the store keeps values in memory only.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize preferences: %v", err)
		return NewStore(NewMemory())
	}
	return NewStore(m)
}

func NewStore(backend Backend) *Store {
	if backend == nil {
		backend = NewMemory()
	}
	return &Store{
		backend:     backend,
		cache:       make(map[string][]byte),
		subscribers: make(map[string][]func([]byte)),
	}
}

func (s *Store) load(key string) []byte {
	if data, ok := s.cache[key]; ok {
		return data
	}
	data, err := s.backend.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load preference %q: %v", key, err)
		return nil
	}
	s.cache[key] = data
	return data
}

func (s *Store) save(key string, data []byte) error {
	s.cache[key] = data
	for _, fn := range s.subscribers[key] {
		fn(data)
	}
	if err := s.backend.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save preference %q: %v", key, err)
		return fmt.Errorf("save preference %q: %w", key, err)
	}
	return nil
}

func decode[T any](key string, data []byte, def T) T {
	if len(data) == 0 {
		return def
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Printf("Warning: Could not parse preference %q: %v", key, err)
		return def
	}
	return v
}

// Get returns the stored value for key, or def when nothing usable is stored.
func Get[T any](s *Store, key string, def T) T {
	return decode(key, s.load(key), def)
}

// Set stores v under key and notifies the key's subscribers. The value
// stays in effect for this session even when persisting it fails.
func Set[T any](s *Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode preference %q: %w", key, err)
	}
	return s.save(key, data)
}

// Subscribe calls fn with the current value and again after every Set of
// key.
func Subscribe[T any](s *Store, key string, def T, fn func(T)) {
	s.subscribers[key] = append(s.subscribers[key], func(data []byte) {
		fn(decode(key, data, def))
	})
	fn(Get(s, key, def))
}

// Memory is a Backend that forgets everything on exit.
type Memory struct {
	items map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

func (m *Memory) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *Memory) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}
