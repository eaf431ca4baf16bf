// Package api define types and interfaces common to all index
// algorithms implemented by this package.
package api

// Store is an opaque key-value backend used to persist index records.
// Values are structured data, nested sequences/mappings/primitives,
// the kind produced by decoding JSON text. Implementations must give
// read-your-writes consistency within a single process, and must be
// comparable types, pointers typically, store identity keys the
// coordination state shared by index handles.
type Store interface {
	// Get value for key. Absence of key is not an error, it is
	// signalled by ok as false.
	Get(key string) (value interface{}, ok bool, err error)

	// Set value for key, creating or replacing the entry.
	Set(key string, value interface{}) error

	// Del entry for key. Deleting an absent key is a no-op.
	Del(key string) error
}
