package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/stockout/internal/dynamo"
)

func depletedResult() *dynamo.Result {
	hour := 48.0
	return &dynamo.Result{
		Config:  dynamo.DefaultConfig(),
		Stepper: "rk4",
		Trajectory: dynamo.Trajectory{
			{Time: 0, Level: 30}, {Time: 24, Level: 12}, {Time: 48, Level: -6},
		},
		Prices:        []float64{38.4615, 44.6429, 47.1698},
		StockoutHour:  &hour,
		StockoutIndex: 2,
		FinalPrice:    47.16981,
		Metrics:       map[string]float64{"min_inventory": -6},
	}
}

func stableResult() *dynamo.Result {
	return &dynamo.Result{
		Config:        dynamo.DefaultConfig(),
		Stepper:       "euler",
		Trajectory:    dynamo.Trajectory{{Time: 0, Level: 100}, {Time: 168, Level: 150}, {Time: 336, Level: 200}},
		Prices:        []float64{25, 20, 16.666},
		StockoutIndex: -1,
		FinalPrice:    16.666,
	}
}

func TestSummarizeDepleted(t *testing.T) {
	s := Summarize(depletedResult())

	if !s.Depleted {
		t.Fatal("expected depleted summary")
	}
	if s.Hours != 48 || s.Days != 2 || s.Weeks != 48.0/168 {
		t.Errorf("unexpected durations: %+v", s)
	}
	if s.FinalPrice.String() != "47.17" {
		t.Errorf("expected price 47.17, got %s", s.FinalPrice)
	}

	row := s.Row()
	want := []string{"depleted", "48.0", "2.0", "0.3", "$47.17"}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("cell %d: expected %q, got %q", i, want[i], row[i])
		}
	}
	if !strings.Contains(s.Status(), "48.0 hours") {
		t.Errorf("unexpected status: %s", s.Status())
	}
}

func TestSummarizeStable(t *testing.T) {
	s := Summarize(stableResult())

	if s.Depleted {
		t.Fatal("expected stable summary")
	}
	if s.Hours != 336 || s.Weeks != 2 {
		t.Errorf("expected full duration, got %+v", s)
	}
	if got := s.Row()[4]; got != "$16.67" {
		t.Errorf("expected $16.67, got %s", got)
	}
	if len(Headers()) != len(s.Row()) {
		t.Error("headers and row differ in length")
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.00"},
		{50, "50.00"},
		{2.345, "2.35"},
		{19.999, "20.00"},
	}
	for _, tt := range tests {
		if got := Money(tt.in).StringFixed(2); got != tt.want {
			t.Errorf("Money(%g): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, depletedResult()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header and 3 rows, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "time_hours,inventory_level,price" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[3][0] != "48" || records[3][1] != "-6.000000" {
		t.Errorf("unexpected last row: %v", records[3])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, depletedResult()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var doc struct {
		Stepper      string   `json:"stepper"`
		StockoutHour *float64 `json:"stockout_hour"`
		Interpolated *float64 `json:"interpolated_stockout_hour"`
		Summary      struct {
			FinalPrice string `json:"final_price"`
		} `json:"summary"`
		Samples []Row `json:"samples"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if doc.Stepper != "rk4" || doc.StockoutHour == nil || *doc.StockoutHour != 48 {
		t.Errorf("unexpected header fields: %+v", doc)
	}
	// 12 -> -6 over 24 hours crosses zero at 24 + 24*12/18 = 40
	if doc.Interpolated == nil || *doc.Interpolated != 40 {
		t.Errorf("expected interpolated stock-out at 40, got %v", doc.Interpolated)
	}
	if doc.Summary.FinalPrice != "47.17" {
		t.Errorf("expected decimal price 47.17, got %s", doc.Summary.FinalPrice)
	}
	if len(doc.Samples) != 3 || doc.Samples[1].Price != 44.6429 {
		t.Errorf("unexpected samples: %+v", doc.Samples)
	}
}

func TestWriteJSONStable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, stableResult()); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"stockout_hour": null`) {
		t.Errorf("expected null stock-out hour:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "interpolated_stockout_hour") {
		t.Error("interpolated hour should be omitted for a stable run")
	}
}

func TestExportFile(t *testing.T) {
	dir := t.TempDir()
	res := depletedResult()

	for _, name := range []string{"run.csv", "run.json", "RUN.JSON"} {
		path := filepath.Join(dir, name)
		if err := ExportFile(path, res); err != nil {
			t.Fatalf("export %s failed: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			t.Errorf("export %s produced no data", name)
		}
	}

	if err := ExportFile(filepath.Join(dir, "run.xlsx"), res); err == nil {
		t.Error("expected unsupported format error")
	}
}
