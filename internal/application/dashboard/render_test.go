package dashboard

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/erp/erpapi/internal/domain/dashboard"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testSnapshot() *Snapshot {
	up := dashboard.TrendUp
	return &Snapshot{
		Report:      "Weekly KPIs",
		GeneratedAt: time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC),
		Dashboard: &Detail{
			Dashboard: dashboard.Dashboard{Name: "Operations", IsDefault: true},
			Widgets: []dashboard.Widget{
				{Title: "Revenue", WidgetType: dashboard.WidgetCard, Position: 1, IsVisible: true},
			},
			Alerts: []dashboard.Alert{
				{Title: "Low stock", AlertType: dashboard.AlertWarning},
			},
		},
		KPIs: []dashboard.KPI{
			{MetricName: "revenue", CurrentValue: decimal.RequireFromString("75.5"), Trend: &up, Status: dashboard.KPIStatusActive},
		},
	}
}

func TestRender_CSV(t *testing.T) {
	out, err := render(dashboard.FormatCSV, testSnapshot())
	require.NoError(t, err)
	assert.Equal(t, "text/csv", out.contentType)
	assert.Equal(t, "csv", out.extension)

	records, err := csv.NewReader(bytes.NewReader(out.data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		snapshotHeader,
		{"dashboard", "Operations", "", "", "true"},
		{"widget", "Revenue", "CARD", "1", "visible"},
		{"kpi", "revenue", "UP", "75.50", "ACTIVE"},
		{"alert", "Low stock", "WARNING", "", "unread"},
	}, records)
}

func TestRender_Excel(t *testing.T) {
	out, err := render(dashboard.FormatExcel, testSnapshot())
	require.NoError(t, err)
	assert.Equal(t, "xlsx", out.extension)

	f, err := excelize.OpenReader(bytes.NewReader(out.data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, snapshotHeader, rows[0])
	assert.Equal(t, []string{"kpi", "revenue", "UP", "75.50", "ACTIVE"}, rows[3])
}

func TestRender_JSONForPDFAndEmail(t *testing.T) {
	for _, format := range []dashboard.ReportFormat{dashboard.FormatPDF, dashboard.FormatEmail} {
		out, err := render(format, testSnapshot())
		require.NoError(t, err, format)
		assert.Equal(t, "application/json", out.contentType)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out.data, &decoded))
		assert.Equal(t, "Weekly KPIs", decoded["report"])
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := render(dashboard.ReportFormat("DOCX"), testSnapshot())
	assert.ErrorContains(t, err, "unsupported report format")
}
