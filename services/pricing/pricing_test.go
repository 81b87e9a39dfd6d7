package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldserve/models"
)

func TestComputeTotalBaseOnly(t *testing.T) {
	assert.Equal(t, 120.0, ComputeTotal(120, nil))
}

func TestComputeTotalWithExtras(t *testing.T) {
	extras := []models.ExtraTask{
		{ID: "t1", Description: "extra window", Price: 15.5},
		{ID: "t2", Description: "carpet", Price: 30},
	}
	assert.Equal(t, 145.5, ComputeTotal(100, extras))
}

func TestComputeTotalRoundsToMinorUnit(t *testing.T) {
	extras := []models.ExtraTask{
		{Price: 0.1},
		{Price: 0.2},
	}
	assert.Equal(t, 100.3, ComputeTotal(100, extras))
}

func TestComputeTotalZeroBase(t *testing.T) {
	extras := []models.ExtraTask{{Price: 9.99}}
	assert.Equal(t, 9.99, ComputeTotal(0, extras))
}
