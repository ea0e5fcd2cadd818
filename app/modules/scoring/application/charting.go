package scoringservice

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	scoringdomain "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/scoring/domain"
)

// ChartPalette holds the club colors used for rendered standings images.
type ChartPalette struct {
	Background drawing.Color
	PrimaryBar drawing.Color
	AccentBar  drawing.Color
	TextColor  drawing.Color
}

// DefaultChartPalette is the clubhouse green-and-gold scheme.
var DefaultChartPalette = ChartPalette{
	Background: drawing.Color{R: 250, G: 250, B: 245, A: 255},
	PrimaryBar: drawing.Color{R: 34, G: 85, B: 51, A: 255},
	AccentBar:  drawing.Color{R: 197, G: 160, B: 71, A: 255},
	TextColor:  drawing.Color{R: 36, G: 36, B: 36, A: 255},
}

const maxChartedPlayers = 12

// RenderStandingsChart produces a PNG bar chart of net totals, leader first.
// Entries beyond the charted cap are omitted so labels stay legible.
func RenderStandingsChart(entries []scoringdomain.LeaderboardEntry, palette ChartPalette) ([]byte, error) {
	if len(entries) == 0 {
		return renderNoDataPlaceholder(palette)
	}
	if len(entries) > maxChartedPlayers {
		entries = entries[:maxChartedPlayers]
	}

	bars := make([]chart.Value, len(entries))
	for i, entry := range entries {
		barColor := palette.PrimaryBar
		if entry.Position == 1 {
			barColor = palette.AccentBar
		}
		bars[i] = chart.Value{
			Label: entry.Name,
			Value: float64(entry.TotalNet),
			Style: chart.Style{
				FillColor:   barColor,
				StrokeColor: barColor,
			},
		}
	}

	graph := chart.BarChart{
		Title:    "Net Standings",
		Width:    800,
		Height:   400,
		BarWidth: 40,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.Style{
			FontColor: palette.TextColor,
		},
		YAxis: chart.YAxis{
			Name: "Net Score",
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No rounds recorded yet"
	)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(palette.TextColor)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
