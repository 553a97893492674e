package prefs

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// Store persists one value per preference key, the way the web build keeps
// one cookie per key.
type Store interface {
	Load(key string) (data []byte, ok bool, err error)
	Save(key string, data []byte) error
}

const storeObject = "prefs"

// GdataStore keeps preferences in the platform save location via gdata
// (a directory on desktop, localStorage under WebAssembly).
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdataStore opens the save location for appName.
func OpenGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("prefs: open storage: %w", err)
	}
	return &GdataStore{m: m}, nil
}

func (s *GdataStore) Load(key string) ([]byte, bool, error) {
	if !s.m.ObjectPropExists(storeObject, key) {
		return nil, false, nil
	}
	data, err := s.m.LoadObjectProp(storeObject, key)
	if err != nil {
		return nil, false, fmt.Errorf("prefs: load %s: %w", key, err)
	}
	return data, true, nil
}

func (s *GdataStore) Save(key string, data []byte) error {
	if err := s.m.SaveObjectProp(storeObject, key, data); err != nil {
		return fmt.Errorf("prefs: save %s: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory Store. It backs the page when no persistent
// storage is available, and tests.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: map[string][]byte{}}
}

func (s *MemStore) Load(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemStore) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), data...)
	return nil
}
