package usecase

import "time"

// Clock returns the current time. Presets and "today" resolve against it.
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }
