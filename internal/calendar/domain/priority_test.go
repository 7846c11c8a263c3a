package domain_test

import (
	"testing"

	"github.com/felixgeelhaar/luna/internal/calendar/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	p, err := domain.ParsePriority("high")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, p)

	p, err = domain.ParsePriority("LOW")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityLow, p)

	p, err = domain.ParsePriority("blocker")
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
	assert.Equal(t, domain.PriorityMedium, p)
}

func TestPriority_String(t *testing.T) {
	assert.Equal(t, "low", domain.PriorityLow.String())
	assert.Equal(t, "medium", domain.PriorityMedium.String())
	assert.Equal(t, "high", domain.PriorityHigh.String())
	assert.Equal(t, "unknown", domain.Priority(42).String())
}

func TestPriority_Weight(t *testing.T) {
	assert.Greater(t, domain.PriorityHigh.Weight(), domain.PriorityMedium.Weight())
	assert.Greater(t, domain.PriorityMedium.Weight(), domain.PriorityLow.Weight())
}
