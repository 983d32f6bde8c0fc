package Utils

import "time"

// Timer measures how long a command or a directory listing took.
type Timer struct {
	start time.Time
}

func StartTimer() Timer {
	return Timer{start: time.Now()}
}

// Elapsed is rounded to the millisecond for display.
func (t Timer) Elapsed() time.Duration {
	return time.Since(t.start).Round(time.Millisecond)
}

func (t Timer) Seconds() float64 {
	return time.Since(t.start).Seconds()
}
