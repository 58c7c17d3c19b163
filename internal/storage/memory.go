package storage

import "sync"

// MemorySlots keeps slots in a map. Nothing survives the process.
type MemorySlots struct {
	mu     sync.Mutex
	slots  map[string][]byte
	closed bool

	// FailWrites makes Set and Remove return the error, for exercising
	// best-effort persistence.
	FailWrites error
}

// NewMemorySlots creates an empty in-memory backend.
func NewMemorySlots() *MemorySlots {
	return &MemorySlots{slots: make(map[string][]byte)}
}

func (m *MemorySlots) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, false, ErrClosed
	}
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	v, ok := m.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemorySlots) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if err := validateKey(key); err != nil {
		return err
	}
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.slots[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemorySlots) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if err := validateKey(key); err != nil {
		return err
	}
	if m.FailWrites != nil {
		return m.FailWrites
	}
	delete(m.slots, key)
	return nil
}

func (m *MemorySlots) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
