package entity

// RawContent is one fetched bucket. Body is kept as received.
type RawContent struct {
	URL  string
	Body []byte
}

// BarSeries holds one project's durations (seconds), aligned with BarSeriesData.XAxisData.
type BarSeries struct {
	Name   string
	Values []float64
}

type BarSeriesData struct {
	XAxisData  []string
	SeriesData []BarSeries
}

// PieSlice is a named duration in seconds.
type PieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Category partitions pie chart data.
type Category string

const (
	CategoryLanguages        Category = "languages"
	CategoryMachines         Category = "machines"
	CategoryEditors          Category = "editors"
	CategoryOperatingSystems Category = "operating_systems"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryLanguages,
	CategoryMachines,
	CategoryEditors,
	CategoryOperatingSystems,
}
