package repository

// StateRepository is the durable local store: one serialized record per
// namespace, read once at startup and rewritten in full on every mutation.
type StateRepository interface {
	Read(namespace string) (payload []byte, found bool, err error)
	Write(namespace string, payload []byte) error
}
