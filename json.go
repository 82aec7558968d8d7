package seqcoll

import (
	"github.com/goccy/go-json"
)

var (
	_ json.Marshaler   = (*Sequence[int])(nil)
	_ json.Unmarshaler = (*Sequence[int])(nil)
)

// MarshalJSON implements json.Marshaler, the sequence is represented as a JSON
// array of its elements.
func (s *Sequence[T]) MarshalJSON() ([]byte, error) {
	if s.length == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(s.storage[:s.length])
}

// UnmarshalJSON implements json.Unmarshaler, the current elements are replaced
// by the elements of the unmarshaled JSON array. Replacing the content is a
// structural mutation.
func (s *Sequence[T]) UnmarshalJSON(data []byte) error {
	var elements []T
	if err := json.Unmarshal(data, &elements); err != nil {
		return err
	}

	s.Clear()
	return s.Append(elements...)
}
