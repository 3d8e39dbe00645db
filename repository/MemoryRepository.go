package repository

// MemoryRepo is a volatile StateRepository for tests and throwaway runs.
type MemoryRepo struct {
	records map[string][]byte
}

func NewMemoryRepository() *MemoryRepo {
	return &MemoryRepo{records: make(map[string][]byte)}
}

func (m *MemoryRepo) Read(namespace string) (payload []byte, found bool, err error) {
	payload, found = m.records[namespace]
	return
}

func (m *MemoryRepo) Write(namespace string, payload []byte) error {
	m.records[namespace] = append([]byte(nil), payload...)
	return nil
}
