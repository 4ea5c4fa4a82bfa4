package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/stockout/internal/dynamo"
)

// Document is the JSON export of a run.
type Document struct {
	ID                   string             `json:"id,omitempty"`
	Stepper              string             `json:"stepper"`
	Config               dynamo.Config      `json:"config"`
	Summary              Summary            `json:"summary"`
	StockoutHour         *float64           `json:"stockout_hour"`
	InterpolatedStockout *float64           `json:"interpolated_stockout_hour,omitempty"`
	Samples              []Row              `json:"samples"`
	Metrics              map[string]float64 `json:"metrics,omitempty"`
}

// Row is one priced sample.
type Row struct {
	Time  float64 `json:"time_hours"`
	Level float64 `json:"inventory_level"`
	Price float64 `json:"price"`
}

func NewDocument(id string, res *dynamo.Result) Document {
	doc := Document{
		ID:           id,
		Stepper:      res.Stepper,
		Config:       res.Config,
		Summary:      Summarize(res),
		StockoutHour: res.StockoutHour,
		Samples:      make([]Row, len(res.Trajectory)),
		Metrics:      res.Metrics,
	}
	if h, ok := res.InterpolatedStockoutHour(); ok {
		doc.InterpolatedStockout = &h
	}
	for i, s := range res.Trajectory {
		doc.Samples[i] = Row{Time: s.Time, Level: s.Level, Price: res.Prices[i]}
	}
	return doc
}

func WriteJSON(w io.Writer, res *dynamo.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument("", res))
}

// WriteCSV writes one row per sample with a header line.
func WriteCSV(w io.Writer, res *dynamo.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time_hours", "inventory_level", "price"}); err != nil {
		return err
	}
	for i, s := range res.Trajectory {
		row := []string{
			strconv.FormatFloat(s.Time, 'f', -1, 64),
			strconv.FormatFloat(s.Level, 'f', 6, 64),
			strconv.FormatFloat(res.Prices[i], 'f', 4, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFile writes res to path, choosing CSV or JSON from the extension.
func ExportFile(path string, res *dynamo.Result) error {
	var write func(io.Writer, *dynamo.Result) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		write = WriteCSV
	case ".json":
		write = WriteJSON
	default:
		return fmt.Errorf("unsupported export format %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
