package recon

import (
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/punch"
)

// Punches closer than this to the last kept punch are treated as duplicate
// reads of the same clock event.
const proximityWindow = 10 * time.Minute

// Normalize reduces a chronologically sorted punch list for one
// employee-day. The first and last punch are always kept. An interior punch
// survives only if it is farther than the proximity window from the last
// kept punch, or its status label differs from it (when labels are
// available). With more than one original punch the result always has at
// least two entries.
func Normalize(punches []punch.Punch, statusPresent bool) []punch.Punch {
	if len(punches) == 0 {
		return nil
	}

	kept := make([]punch.Punch, 0, len(punches))
	kept = append(kept, punches[0])

	for i := 1; i < len(punches)-1; i++ {
		cur := punches[i]
		last := kept[len(kept)-1]
		if cur.Time.Sub(last.Time) > proximityWindow ||
			(statusPresent && cur.Status != last.Status) {
			kept = append(kept, cur)
		}
	}

	if len(punches) > 1 {
		last := punches[len(punches)-1]
		tail := kept[len(kept)-1]
		if !last.Time.Equal(tail.Time) || (statusPresent && last.Status != tail.Status) {
			kept = append(kept, last)
		} else if len(kept) == 1 {
			kept = append(kept, last)
		}
	}
	return kept
}
