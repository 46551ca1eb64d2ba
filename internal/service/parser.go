package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/dayanaadylkhanova/codetime-charts/internal/entity"
)

var (
	errEmptyPayload  = errors.New("empty payload")
	errNotJSONObject = errors.New("payload is neither a JSON object nor an array")
)

var dateInName = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// unknownName replaces entries the tracker reported without a name.
const unknownName = "Unknown"

type durationEntry struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds"`
}

type summaryRange struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	Text  string `json:"text"`
}

// summary is one WakaTime daily summary.
type summary struct {
	Range            *summaryRange   `json:"range"`
	Date             string          `json:"date"`
	Projects         []durationEntry `json:"projects"`
	Languages        []durationEntry `json:"languages"`
	Machines         []durationEntry `json:"machines"`
	Editors          []durationEntry `json:"editors"`
	OperatingSystems []durationEntry `json:"operating_systems"`
}

// envelope covers the summaries API ("data") and data dumps ("days").
type envelope struct {
	Data []summary `json:"data"`
	Days []summary `json:"days"`
}

func (s summary) date() string {
	if s.Range != nil {
		if s.Range.Date != "" {
			return s.Range.Date
		}
		if len(s.Range.Start) >= 10 {
			return s.Range.Start[:10]
		}
	}
	if s.Date != "" {
		return s.Date
	}
	if s.Range != nil {
		return s.Range.Text
	}
	return ""
}

func (s summary) category(c entity.Category) []durationEntry {
	switch c {
	case entity.CategoryLanguages:
		return s.Languages
	case entity.CategoryMachines:
		return s.Machines
	case entity.CategoryEditors:
		return s.Editors
	case entity.CategoryOperatingSystems:
		return s.OperatingSystems
	}
	return nil
}

// totals sums durations by name, keeping first-seen order.
type totals struct {
	names []string
	sum   map[string]float64
}

func newTotals() *totals { return &totals{sum: make(map[string]float64)} }

func (t *totals) add(entries []durationEntry) {
	for _, e := range entries {
		name := e.Name
		if name == "" {
			name = unknownName
		}
		if _, ok := t.sum[name]; !ok {
			t.names = append(t.names, name)
		}
		t.sum[name] += e.TotalSeconds
	}
}

type bucket struct {
	label     string
	summaries []summary
}

func decodeBucket(i int, c entity.RawContent) (bucket, error) {
	body := bytes.TrimSpace(c.Body)
	if len(body) == 0 {
		return bucket{}, &ParseError{Index: i, URL: c.URL, Err: errEmptyPayload}
	}

	var sums []summary
	switch body[0] {
	case '[':
		if err := sonic.Unmarshal(body, &sums); err != nil {
			return bucket{}, &ParseError{Index: i, URL: c.URL, Err: err}
		}
	case '{':
		var env envelope
		if err := sonic.Unmarshal(body, &env); err != nil {
			return bucket{}, &ParseError{Index: i, URL: c.URL, Err: err}
		}
		switch {
		case len(env.Data) > 0:
			sums = env.Data
		case len(env.Days) > 0:
			sums = env.Days
		default:
			var s summary
			if err := sonic.Unmarshal(body, &s); err != nil {
				return bucket{}, &ParseError{Index: i, URL: c.URL, Err: err}
			}
			sums = []summary{s}
		}
	default:
		return bucket{}, &ParseError{Index: i, URL: c.URL, Err: errNotJSONObject}
	}

	return bucket{label: bucketLabel(i, c.URL, sums), summaries: sums}, nil
}

func bucketLabel(i int, rawURL string, sums []summary) string {
	var dates []string
	for _, s := range sums {
		if d := s.date(); d != "" {
			dates = append(dates, d)
		}
	}
	switch {
	case len(dates) == 1 || (len(dates) > 1 && dates[0] == dates[len(dates)-1]):
		return dates[0]
	case len(dates) > 1:
		return dates[0] + " ~ " + dates[len(dates)-1]
	}

	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		base := path.Base(u.Path)
		if d := dateInName.FindString(base); d != "" {
			return d
		}
		if base != "/" && base != "." {
			return strings.TrimSuffix(base, path.Ext(base))
		}
	}
	return fmt.Sprintf("#%d", i)
}

func decodeBuckets(contents []entity.RawContent) ([]bucket, error) {
	out := make([]bucket, 0, len(contents))
	for i, c := range contents {
		b, err := decodeBucket(i, c)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// ParseBarSeries turns every bucket into one x position with per-project
// durations. Projects missing from a bucket get zero there.
func ParseBarSeries(contents []entity.RawContent) (entity.BarSeriesData, error) {
	buckets, err := decodeBuckets(contents)
	if err != nil {
		return entity.BarSeriesData{}, err
	}

	xAxis := make([]string, len(buckets))
	perBucket := make([]*totals, len(buckets))
	all := newTotals()
	for i, b := range buckets {
		xAxis[i] = b.label
		t := newTotals()
		for _, s := range b.summaries {
			t.add(s.Projects)
		}
		perBucket[i] = t
		for _, name := range t.names {
			all.add([]durationEntry{{Name: name}})
		}
	}

	series := make([]entity.BarSeries, len(all.names))
	for j, name := range all.names {
		values := make([]float64, len(buckets))
		for i, t := range perBucket {
			values[i] = t.sum[name]
		}
		series[j] = entity.BarSeries{Name: name, Values: values}
	}
	return entity.BarSeriesData{XAxisData: xAxis, SeriesData: series}, nil
}

// ParsePieSeries sums durations per name across all buckets for every
// category. Categories nobody reported are left out of the result.
func ParsePieSeries(ctx context.Context, contents []entity.RawContent) (map[entity.Category][]entity.PieSlice, error) {
	byCategory := make(map[entity.Category]*totals, len(entity.Categories))
	for _, c := range entity.Categories {
		byCategory[c] = newTotals()
	}

	for i, content := range contents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b, err := decodeBucket(i, content)
		if err != nil {
			return nil, err
		}
		for _, s := range b.summaries {
			for _, c := range entity.Categories {
				byCategory[c].add(s.category(c))
			}
		}
	}

	out := make(map[entity.Category][]entity.PieSlice)
	for c, t := range byCategory {
		if len(t.names) == 0 {
			continue
		}
		slices := make([]entity.PieSlice, len(t.names))
		for i, name := range t.names {
			slices[i] = entity.PieSlice{Name: name, Value: t.sum[name]}
		}
		out[c] = slices
	}
	return out, nil
}
