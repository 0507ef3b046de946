package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/punch"
)

func TestLogicalDateRollsEarlyExitBack(t *testing.T) {
	datasetMin := pAt(t, "2025-01-05 08:00:00", punch.StatusEntry).Time

	p := pAt(t, "2025-01-07 00:20:00", punch.StatusExit)

	got := LogicalDate(p, false, datasetMin)

	assert.Equal(t, 6, got.Day())
}

func TestLogicalDateKeepsEarlyEntry(t *testing.T) {
	datasetMin := pAt(t, "2025-01-05 08:00:00", punch.StatusEntry).Time

	p := pAt(t, "2025-01-07 00:20:00", punch.StatusEntry)

	got := LogicalDate(p, false, datasetMin)

	assert.Equal(t, 7, got.Day())
}

func TestLogicalDateNoRollOnDatasetFirstDay(t *testing.T) {
	p := pAt(t, "2025-01-05 00:20:00", punch.StatusExit)

	got := LogicalDate(p, false, p.Time)

	assert.Equal(t, 5, got.Day())
}

func TestLogicalDateNoRollAtRoundTheClockLocation(t *testing.T) {
	datasetMin := pAt(t, "2025-01-05 08:00:00", punch.StatusEntry).Time

	p := pAt(t, "2025-01-07 00:20:00", punch.StatusExit)

	got := LogicalDate(p, true, datasetMin)

	assert.Equal(t, 7, got.Day())
}
