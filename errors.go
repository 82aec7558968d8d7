package seqcoll

import "errors"

var (
	//index errors

	ErrIndexOutOfRange          = errors.New("index out of range")
	ErrInsertionIndexOutOfRange = errors.New("insertion index out of range")
	ErrInvalidRange             = errors.New("invalid index range")

	//empty sequence errors

	ErrEmptySequence                  = errors.New("empty sequence")
	ErrCannotPopFromEmptySequence     = errors.New("cannot pop from an empty sequence")
	ErrCannotDequeueFromEmptySequence = errors.New("cannot dequeue from an empty sequence")

	//storage errors

	ErrAllocationFailed = errors.New("failed to allocate storage")
	ErrNegativeCapacity = errors.New("negative capacity")
	ErrNegativeLength   = errors.New("negative length")

	//iteration errors

	ErrIteratorInvalidated = errors.New("iterator invalidated by a structural mutation")
)
