package slot

import (
	"fmt"
	"sort"
	"strings"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/utils"
	"time"
)

func parseClock(s string) (clock, error) {
	minutes, err := utils.ParseClock(s)
	if err != nil {
		return clock{}, err
	}
	return clock{H: minutes / 60, M: minutes % 60}, nil
}

func toDayWindow(window *models.AvailabilityWindow) (dayWindow, error) {
	start, err := parseClock(window.StartTime)
	if err != nil {
		return dayWindow{}, fmt.Errorf("start time: %w", err)
	}
	end, err := parseClock(window.EndTime)
	if err != nil {
		return dayWindow{}, fmt.Errorf("end time: %w", err)
	}
	return dayWindow{ID: window.ID, Start: start, End: end}, nil
}

func validWindow(w dayWindow) bool {
	return w.Start.minutes() < w.End.minutes()
}

// overlaps is the half-open overlap test: touching windows do not overlap.
func overlaps(a, b dayWindow) bool {
	return a.Start.minutes() < b.End.minutes() && b.Start.minutes() < a.End.minutes()
}

// on anchors a wall-clock window to day. Built with time.Date so DST
// transitions resolve the same way as any other local time.
func (w dayWindow) on(day time.Time) interval {
	y, m, d := day.Date()
	loc := day.Location()
	return interval{
		Start: time.Date(y, m, d, w.Start.H, w.Start.M, 0, 0, loc),
		End:   time.Date(y, m, d, w.End.H, w.End.M, 0, 0, loc),
	}
}

// generateSlotsBetween returns every slot start in [start, end) stepping by slotMinutes.
func generateSlotsBetween(iv interval, slotMinutes int) []time.Time {
	var out []time.Time
	step := time.Duration(slotMinutes) * time.Minute
	for t := iv.Start; t.Before(iv.End); t = t.Add(step) {
		out = append(out, t)
	}
	return out
}

// dedupeSorted sorts ascending and drops repeated instants.
func dedupeSorted(times []time.Time) []time.Time {
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	out := times[:0]
	for i, t := range times {
		if i > 0 && t.Equal(out[len(out)-1]) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func describeWindows(windows []dayWindow) string {
	labels := make([]string, 0, len(windows))
	for _, w := range windows {
		labels = append(labels, w.String())
	}
	return strings.Join(labels, ", ")
}

// describeUnavailability explains a rejected booking start in terms the
// caller can act on.
func describeUnavailability(windows []dayWindow, proposed time.Time) string {
	requested := proposed.Format(constvars.LayoutClock)
	if len(windows) == 0 {
		return fmt.Sprintf("no availability windows on %s, requested %s", proposed.Weekday(), requested)
	}
	return fmt.Sprintf("available windows on %s are %s, requested %s", proposed.Weekday(), describeWindows(windows), requested)
}
