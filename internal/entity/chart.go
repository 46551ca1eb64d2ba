package entity

// ChartConfig is an ECharts option document. It is built once and handed to
// the store; nothing reads it back.
type ChartConfig struct {
	Title    ChartTitle   `json:"title"`
	Tooltip  ChartTooltip `json:"tooltip"`
	Toolbox  ChartToolbox `json:"toolbox"`
	Legend   ChartLegend  `json:"legend"`
	DataZoom []DataZoom   `json:"dataZoom,omitempty"`
	XAxis    *ChartAxis   `json:"xAxis,omitempty"`
	YAxis    *ChartAxis   `json:"yAxis,omitempty"`
	Series   []any        `json:"series"`
}

type TextStyle struct {
	Color      string `json:"color,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
	FontFamily string `json:"fontFamily,omitempty"`
}

type ChartTitle struct {
	Left      string    `json:"left"`
	Text      string    `json:"text"`
	TextStyle TextStyle `json:"textStyle"`
}

// ChartTooltip carries pre-rendered tooltip text. Content is aligned with
// the x axis of a bar chart, ValueLabels with the slices of a pie chart.
type ChartTooltip struct {
	Trigger     string   `json:"trigger"`
	Content     []string `json:"content,omitempty"`
	ValueLabels []string `json:"valueLabels,omitempty"`
}

type ChartToolbox struct {
	Show    bool           `json:"show"`
	Feature ToolboxFeature `json:"feature"`
}

type ToolboxFeature struct {
	MagicType   *MagicType `json:"magicType,omitempty"`
	Restore     *struct{}  `json:"restore,omitempty"`
	SaveAsImage struct{}   `json:"saveAsImage"`
}

type MagicType struct {
	Type []string `json:"type"`
}

type ChartLegend struct {
	Type      string    `json:"type"`
	Top       string    `json:"top"`
	TextStyle TextStyle `json:"textStyle"`
}

type DataZoom struct {
	Type      string    `json:"type"`
	TextStyle TextStyle `json:"textStyle"`
}

type ChartAxis struct {
	Type string   `json:"type"`
	Data []string `json:"data,omitempty"`
}

// BarChartSeries is one stacked bar series.
type BarChartSeries struct {
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Stack    string    `json:"stack"`
	Emphasis Emphasis  `json:"emphasis"`
	Data     []float64 `json:"data"`
}

type Emphasis struct {
	Focus string `json:"focus"`
}

type PieChartSeries struct {
	Name              string     `json:"name"`
	Type              string     `json:"type"`
	Radius            [2]any     `json:"radius"`
	Top               string     `json:"top"`
	AvoidLabelOverlap bool       `json:"avoidLabelOverlap"`
	ItemStyle         ItemStyle  `json:"itemStyle"`
	Label             PieLabel   `json:"label"`
	LabelLine         LabelLine  `json:"labelLine"`
	Data              []PieSlice `json:"data"`
}

type ItemStyle struct {
	BorderRadius int    `json:"borderRadius"`
	BorderWidth  int    `json:"borderWidth"`
	BorderColor  string `json:"borderColor"`
}

type PieLabel struct {
	Color    string `json:"color"`
	Show     bool   `json:"show"`
	Overflow string `json:"overflow"`
	Position string `json:"position"`
}

type LabelLine struct {
	Show bool `json:"show"`
}
