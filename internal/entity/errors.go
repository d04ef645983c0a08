package entity

import "errors"

// ErrNotFound is returned by stores when the targeted record does not
// exist. The failover layer treats it as a final answer, never as a
// reason to retry against the other store.
var ErrNotFound = errors.New("record not found")
