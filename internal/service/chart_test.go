package service

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCoverageChart(t *testing.T) {
	counts := map[string]int{
		"14.09": 3,
		"16.09": 1,
	}

	data, err := RenderCoverageChart(testWeek, counts, 5)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, chartWidth, bounds.Dx())
	assert.Equal(t, chartHeight, bounds.Dy())
}

func TestRenderCoverageChartEmptyWeek(t *testing.T) {
	data, err := RenderCoverageChart(testWeek, map[string]int{}, 0)
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}
