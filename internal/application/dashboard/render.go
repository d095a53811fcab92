package dashboard

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/erp/erpapi/internal/domain/dashboard"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

// Snapshot is the content of a generated report.
type Snapshot struct {
	Report      string          `json:"report"`
	GeneratedAt time.Time       `json:"generated_at"`
	Dashboard   *Detail         `json:"dashboard"`
	KPIs        []dashboard.KPI `json:"kpis"`
}

var snapshotHeader = []string{"section", "name", "type", "value", "status"}

// rows flattens the snapshot into one table.
func (s *Snapshot) rows() [][]string {
	d := s.Dashboard
	rows := [][]string{{"dashboard", d.Name, "", "", strconv.FormatBool(d.IsDefault)}}
	for _, w := range d.Widgets {
		rows = append(rows, []string{"widget", w.Title, string(w.WidgetType), strconv.Itoa(w.Position), visibility(w.IsVisible)})
	}
	for _, k := range s.KPIs {
		trend := ""
		if k.Trend != nil {
			trend = string(*k.Trend)
		}
		rows = append(rows, []string{"kpi", k.MetricName, trend, k.CurrentValue.StringFixed(2), string(k.Status)})
	}
	for _, a := range d.Alerts {
		rows = append(rows, []string{"alert", a.Title, string(a.AlertType), "", lo.Ternary(a.IsRead, "read", "unread")})
	}
	return rows
}

func visibility(visible bool) string { return lo.Ternary(visible, "visible", "hidden") }

type rendered struct {
	data        []byte
	contentType string
	extension   string
}

// render encodes the snapshot. PDF and e-mail reports are delivered as the
// JSON snapshot consumed by the mailer and print pipeline.
func render(format dashboard.ReportFormat, snap *Snapshot) (*rendered, error) {
	switch format {
	case dashboard.FormatCSV:
		data, err := renderCSV(snap)
		return &rendered{data: data, contentType: "text/csv", extension: "csv"}, err
	case dashboard.FormatExcel:
		data, err := renderExcel(snap)
		return &rendered{data: data, contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", extension: "xlsx"}, err
	case dashboard.FormatPDF, dashboard.FormatEmail:
		data, err := json.MarshalIndent(snap, "", "  ")
		return &rendered{data: data, contentType: "application/json", extension: "json"}, err
	}
	return nil, fmt.Errorf("unsupported report format %q", format)
}

func renderCSV(snap *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(snapshotHeader); err != nil {
		return nil, err
	}
	if err := w.WriteAll(snap.rows()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const reportSheet = "Report"

func renderExcel(snap *Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, err
	}
	rows := append([][]string{snapshotHeader}, snap.rows()...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(reportSheet, cell, &values); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(reportSheet, "A", "E", 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
