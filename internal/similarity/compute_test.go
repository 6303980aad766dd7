package similarity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportJob_RunContextAppliesTimeout(t *testing.T) {
	job := &ReportJob{Timeout: time.Minute}

	ctx, cancel := job.runContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok, "expected a deadline when a timeout is configured")
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestReportJob_RunContextWithoutTimeout(t *testing.T) {
	job := &ReportJob{}

	ctx, cancel := job.runContext(context.Background())
	defer cancel()

	_, ok := ctx.Deadline()
	assert.False(t, ok, "no timeout configured, context must not carry a deadline")
}
