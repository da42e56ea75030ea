// Package codec (de)serializes values V <-> []byte for byte-backed
// stores (redis, ristretto, bigcache).
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
