package storage

// KV is the client-local key-value store, the gateway's analog of the
// browser's localStorage. Values are small serialized strings; a key is
// always read and rewritten wholesale.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Clear() error
}
