package chart

import (
	"html"
	"math"
	"strings"

	"github.com/dayanaadylkhanova/codetime-charts/internal/entity"
)

const (
	titleColor = "#516b91"
	legendFont = "'JetBrains Mono', monospace, sans-serif"

	// NothingHere is shown for an x position where every series is under a second.
	NothingHere = "There is nothing here"
)

func title(text string) entity.ChartTitle {
	return entity.ChartTitle{Left: "center", Text: text, TextStyle: entity.TextStyle{Color: titleColor}}
}

func legend() entity.ChartLegend {
	return entity.ChartLegend{
		Type:      "scroll",
		Top:       "7%",
		TextStyle: entity.TextStyle{FontWeight: "normal", FontFamily: legendFont},
	}
}

// BuildPieConfig embeds slices as given; ordering and hiding of empty
// slices is left to the renderer.
func BuildPieConfig(slices []entity.PieSlice, text string) entity.ChartConfig {
	labels := make([]string, len(slices))
	for i, s := range slices {
		labels[i] = FormatDuration(s.Value)
	}
	return entity.ChartConfig{
		Title:   title(text),
		Tooltip: entity.ChartTooltip{Trigger: "item", ValueLabels: labels},
		Toolbox: entity.ChartToolbox{Show: true},
		Legend:  legend(),
		Series: []any{
			entity.PieChartSeries{
				Name:              text,
				Type:              "pie",
				Radius:            [2]any{75, "80%"},
				Top:               "10%",
				AvoidLabelOverlap: false,
				ItemStyle:         entity.ItemStyle{BorderRadius: 7, BorderWidth: 2, BorderColor: "transparent"},
				Label:             entity.PieLabel{Color: titleColor, Show: true, Overflow: "truncate", Position: "outside"},
				LabelLine:         entity.LabelLine{Show: true},
				Data:              slices,
			},
		},
	}
}

// BuildBarConfig builds a stacked bar chart. The tooltip of each x position
// is rendered up front with FormatBarTooltip.
func BuildBarConfig(xAxisData []string, seriesData []entity.BarSeries, text string) entity.ChartConfig {
	names := make([]string, len(seriesData))
	series := make([]any, len(seriesData))
	for i, s := range seriesData {
		names[i] = s.Name
		series[i] = entity.BarChartSeries{
			Name:     s.Name,
			Type:     "bar",
			Stack:    "total",
			Emphasis: entity.Emphasis{Focus: "series"},
			Data:     s.Values,
		}
	}

	content := make([]string, len(xAxisData))
	values := make([]float64, len(seriesData))
	for x, label := range xAxisData {
		for i, s := range seriesData {
			values[i] = 0
			if x < len(s.Values) {
				values[i] = s.Values[x]
			}
		}
		content[x] = FormatBarTooltip(label, names, values)
	}

	return entity.ChartConfig{
		Title:    title(text),
		Tooltip:  entity.ChartTooltip{Trigger: "axis", Content: content},
		DataZoom: []entity.DataZoom{{Type: "slider", TextStyle: entity.TextStyle{Color: titleColor}}},
		Toolbox: entity.ChartToolbox{
			Show: true,
			Feature: entity.ToolboxFeature{
				MagicType: &entity.MagicType{Type: []string{"line"}},
				Restore:   &struct{}{},
			},
		},
		Legend: legend(),
		XAxis:  &entity.ChartAxis{Type: "category", Data: xAxisData},
		YAxis:  &entity.ChartAxis{Type: "value"},
		Series: series,
	}
}

// FormatBarTooltip composes the tooltip of one x position. Series whose
// duration floors to zero seconds are left out.
func FormatBarTooltip(label string, names []string, values []float64) string {
	var b strings.Builder
	for i, name := range names {
		if i >= len(values) || !(math.Floor(values[i]) > 0) {
			continue
		}
		b.WriteString(`<div style="margin: 0 0 0;line-height:1;">`)
		b.WriteString(`<span style="font-size:14px;color:#666;font-weight:400;margin-left:2px">`)
		b.WriteString(html.EscapeString(name))
		b.WriteString(`</span>`)
		b.WriteString(`<span style="float:right;margin-left:20px;font-size:14px;color:#666;font-weight:900">`)
		b.WriteString(FormatDuration(values[i]))
		b.WriteString(`</span>`)
		b.WriteString(`<div style="clear:both"></div></div>`)
	}
	head := "<span>" + html.EscapeString(label) + "</span><br/>"
	if b.Len() == 0 {
		return head + "<span>" + NothingHere + "</span>"
	}
	return head + b.String()
}
