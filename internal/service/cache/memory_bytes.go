package cache

import "time"

// MemoryBytes adapts TTLCache to the BytesCache API for single-node runs.
type MemoryBytes struct {
	c *TTLCache
}

func NewMemoryBytes() *MemoryBytes {
	return &MemoryBytes{c: NewTTLCache()}
}

func (m *MemoryBytes) GetBytes(key string) ([]byte, bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, false, nil
	}
	return b, true, nil
}

func (m *MemoryBytes) SetBytes(key string, value []byte, ttl time.Duration) error {
	m.c.Set(key, value, ttl)
	return nil
}
