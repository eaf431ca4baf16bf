package api

import "errors"

// ErrorActiveIterators means an index cannot be destroyed while one
// or more of its cursors are still open.
var ErrorActiveIterators = errors.New("api.activeiterators")

// ErrorInvalidRecord means a persisted index record does not have the
// expected shape. The index is the sole trusted writer of its records,
// so this points to outside mutation of the backing store.
var ErrorInvalidRecord = errors.New("api.invalidrecord")
