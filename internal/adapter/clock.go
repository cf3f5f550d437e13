package adapter

import "time"

// Clock is the time source of the ledger, the importer and the outbox relay
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	// Now returns the current time in UTC
	Now() time.Time
	// After fires once d has elapsed
	After(d time.Duration) <-chan time.Time
}

type wallClock struct{}

// NewClock returns the wall clock
func NewClock() Clock {
	return wallClock{}
}

func (wallClock) Now() time.Time {
	return time.Now().UTC()
}

func (wallClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
