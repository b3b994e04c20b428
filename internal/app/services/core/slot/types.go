package slot

import (
	"telecare-service/internal/pkg/utils"
	"time"
)

// clock holds a local wall time (hour and minute).
type clock struct {
	H int
	M int
}

func (c clock) minutes() int {
	return c.H*60 + c.M
}

func (c clock) String() string {
	return utils.FormatClock(c.minutes())
}

// dayWindow is a half-open [Start, End) wall-clock window on a single day.
type dayWindow struct {
	ID    string
	Start clock
	End   clock
}

func (w dayWindow) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// interval is a concrete half-open [Start, End) range on a given date.
type interval struct {
	Start time.Time
	End   time.Time
}

func (iv interval) contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}
