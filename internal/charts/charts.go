// Package charts renders the dashboard's two chart datasets to PNG
// with go-chart: the monthly income-vs-expenses trend and the expense
// breakdown by category.
package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/findash/dashboard-bot/internal/model"
	"github.com/findash/dashboard-bot/internal/render"
	"github.com/findash/dashboard-bot/internal/service"
)

// palette is the fixed 8-color category palette, cycled by category
// index.
var palette = [8]drawing.Color{
	drawing.ColorFromHex("3B82F6"),
	drawing.ColorFromHex("10B981"),
	drawing.ColorFromHex("F59E0B"),
	drawing.ColorFromHex("EF4444"),
	drawing.ColorFromHex("8B5CF6"),
	drawing.ColorFromHex("06B6D4"),
	drawing.ColorFromHex("84CC16"),
	drawing.ColorFromHex("F97316"),
}

// sentinelColor is the neutral fill for the placeholder sector shown
// when no expense data exists.
var sentinelColor = drawing.ColorFromHex("9CA3AF")

var (
	incomeColor  = drawing.ColorFromHex("10B981")
	expenseColor = drawing.ColorFromHex("EF4444")
)

// Generator renders chart PNGs.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// IncomeExpenseChart renders the monthly trend as paired bars, one
// green income bar and one red expense bar per period label. Returns
// nil bytes when there is nothing to draw.
func (g *Generator) IncomeExpenseChart(data model.ChartData) ([]byte, error) {
	if len(data.Months) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(data.Months)*2)
	for i, month := range data.Months {
		var income, expense float64
		if i < len(data.Income) {
			income = data.Income[i]
		}
		if i < len(data.Expenses) {
			expense = data.Expenses[i]
		}
		bars = append(bars,
			chart.Value{
				Label: month,
				Value: income,
				Style: chart.Style{
					StrokeColor: incomeColor,
					FillColor:   incomeColor,
				},
			},
			chart.Value{
				Label: " ",
				Value: expense,
				Style: chart.Style{
					StrokeColor: expenseColor,
					FillColor:   expenseColor,
				},
			},
		)
	}

	graph := chart.BarChart{
		Title: "Income vs Expenses",
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: chart.ColorBlack,
		},
		Width:    1200,
		Height:   600,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return render.FormatCurrency(v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render income/expense chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// CategoryChart renders the expense breakdown as a pie. The palette
// cycles by category index. For the sentinel placeholder the single
// sector is drawn in a neutral color and its legend label is
// suppressed.
func (g *Generator) CategoryChart(breakdown service.CategoryBreakdown) ([]byte, error) {
	if len(breakdown.Labels) == 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, len(breakdown.Labels))
	if breakdown.Sentinel {
		values = append(values, chart.Value{
			Label: "",
			Value: breakdown.Values[0],
			Style: chart.Style{
				StrokeColor: sentinelColor,
				FillColor:   sentinelColor,
			},
		})
	} else {
		for i, label := range breakdown.Labels {
			color := palette[i%len(palette)]
			values = append(values, chart.Value{
				Label: fmt.Sprintf("%s: %s", label, render.FormatCurrency(breakdown.Values[i])),
				Value: breakdown.Values[i],
				Style: chart.Style{
					StrokeColor: color,
					FillColor:   color,
					FontSize:    12,
					FontColor:   chart.ColorBlack,
				},
			})
		}
	}

	pie := chart.PieChart{
		Title:  "Expenses by Category",
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}
	return buffer.Bytes(), nil
}
