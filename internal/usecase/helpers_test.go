package usecase

import (
	"testing"
	"time"

	"github.com/bstc-oman/dispatch/internal/board"
	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/bstc-oman/dispatch/internal/infra/seed"
	"github.com/bstc-oman/dispatch/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC)

// newTestBoard returns a board holding the six sample jobs.
func newTestBoard(t *testing.T) *JobBoard {
	t.Helper()
	b, err := board.NewStore(domain.DefaultStages(), domain.DefaultJobSchema(),
		board.WithIDGenerator[domain.Stage](&testutil.MockIDGenerator{Prefix: "j"}),
		board.WithClock[domain.Stage](&testutil.MockClock{NowTime: testNow}),
	)
	require.NoError(t, err)
	require.NoError(t, b.Import(seed.SampleJobs()))
	return b
}

func stageIDs(b *JobBoard, s domain.Stage) []string {
	var out []string
	for _, it := range b.ItemsByColumn(s) {
		out = append(out, it.ID)
	}
	return out
}
