package app

import "time"

// Clock supplies current time to the mutation pipeline. Explicit instead of
// time.Now so tests pin timestamps and audit stamping has one source.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

func NewClock() Clock {
	return realClock{}
}
