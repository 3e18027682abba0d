package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPurger struct {
	calls int
	err   error
}

func (p *countingPurger) PurgeExpired(ctx context.Context) (int64, error) {
	p.calls++
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("purge ran without a deadline")
	}
	return 3, p.err
}

func TestPurgeExpiredSummaries(t *testing.T) {
	p := &countingPurger{}
	PurgeExpiredSummaries(p)
	assert.Equal(t, 1, p.calls)

	p.err = errors.New("db down")
	PurgeExpiredSummaries(p)
	assert.Equal(t, 2, p.calls)
}

func TestInitializeSummaryScheduler(t *testing.T) {
	c, err := InitializeSummaryScheduler("@every 1h", &countingPurger{})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()

	_, err = InitializeSummaryScheduler("not a spec", &countingPurger{})
	assert.Error(t, err)
}
