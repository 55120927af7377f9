package analytics

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

func TestBuildChart(t *testing.T) {
	sales := []model.Sale{
		sale(t, 1, "2026-10-19", "Pen", "Stationery", 2, "5"),
		sale(t, 2, "2026-10-17", "Mug", "Kitchen", 1, "30"),
		sale(t, 3, "2026-10-19", "Cup", "Kitchen", 1, "4"),
		sale(t, 4, "2026-10-19", "Pad", "Stationery", 1, "2.5"),
	}

	chart := BuildChart(sales)
	require.False(t, chart.Empty())

	assert.Equal(t, []civil.Date{date(t, "2026-10-17"), date(t, "2026-10-19")}, chart.Dates)
	assert.Equal(t, []string{"Stationery", "Kitchen"}, chart.Categories)
	require.Len(t, chart.Totals, 2)

	assert.Equal(t, "0", chart.Totals[0][0].String())
	assert.Equal(t, "12.5", chart.Totals[0][1].String())
	assert.Equal(t, "30", chart.Totals[1][0].String())
	assert.Equal(t, "4", chart.Totals[1][1].String())

	require.Len(t, chart.Points, 4)
	assert.Equal(t, Point{Date: date(t, "2026-10-17"), Total: sales[1].Total, Category: "Kitchen"}, chart.Points[1])
}

func TestBuildChart_Empty(t *testing.T) {
	chart := BuildChart(nil)
	assert.True(t, chart.Empty())
	assert.Empty(t, chart.Dates)
	assert.Empty(t, chart.Categories)
	assert.Empty(t, chart.Totals)
}
