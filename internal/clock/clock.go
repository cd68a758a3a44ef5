// Package clock lets the frame loops run against real or virtual time.
package clock

import "time"

type Clock struct {
	Now   func() time.Time
	Sleep func(time.Duration)
}

func System() Clock {
	return Clock{Now: time.Now, Sleep: time.Sleep}
}

// Fake returns a Clock whose Sleep advances Now without blocking.
func Fake(start time.Time) Clock {
	now := start
	return Clock{
		Now:   func() time.Time { return now },
		Sleep: func(d time.Duration) { now = now.Add(d) },
	}
}
