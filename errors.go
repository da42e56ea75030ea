package tiercache

import "fmt"

// ClearError reports that Clear failed on both tiers. When only one
// tier fails its error is returned unwrapped instead.
type ClearError struct {
	StoreErr error
	CacheErr error
}

func (e *ClearError) Error() string {
	return fmt.Sprintf("clear failed on both stores: store=%v; cache=%v", e.StoreErr, e.CacheErr)
}

func (e *ClearError) Unwrap() []error {
	return []error{e.StoreErr, e.CacheErr}
}
