package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/wardenlabs/alarm-console/pkg/common"
	"github.com/wardenlabs/alarm-console/pkg/console"
	"github.com/wardenlabs/alarm-console/pkg/models"
)

// exportPageSize bounds a single export; the console is not a bulk ETL tool.
const exportPageSize = 10000

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exportHeaders = []string{
	"ID", "Type", "Sensor", "Coalition", "Group", "Location",
	"Profile", "Condition", "Reading", "Unit", "Status",
	"Acknowledged By", "Acknowledge Date", "Comment",
}

// ExportAlarms writes the filtered alarm list (same search/filter params as
// the list endpoint, unpaged) as an Excel workbook.
func (rs *RestfulServer) ExportAlarms(c *gin.Context) {
	if !rs.CheckClientLimiter(clientKey(c)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	page, err := rs.Console.Alarm.QueryAlarms(&console.AlarmQuery{
		Page:     1,
		PageSize: exportPageSize,
		Search:   c.Query("search"),
		Types:    typeFilters(c),
	})
	if err != nil {
		fail(c, err)
		return
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := "Alarms"
	file.SetSheetName("Sheet1", sheet)

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	rows := common.Mapper(page.Data, alarmExportRow)
	for rowIdx, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			file.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="alarms.xlsx"`)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)

	if err := file.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

func alarmExportRow(record models.AlarmRecord) []any {
	reading := ""
	if record.MeasurementCurrentReading != nil {
		reading = fmt.Sprintf("%.2f", *record.MeasurementCurrentReading)
	}
	acknowledgedBy := ""
	if record.AcknowledgedBy != nil {
		acknowledgedBy = *record.AcknowledgedBy
	}
	acknowledgeDate := ""
	if record.AcknowledgeDate != nil {
		acknowledgeDate = record.AcknowledgeDate.Format("2006-01-02 15:04:05")
	}

	return []any{
		record.ID,
		string(record.Type),
		record.SensorName,
		record.Coalition,
		record.GroupName,
		record.Location,
		record.AlarmProfileName,
		record.AlarmCondition,
		reading,
		record.MeasurementUnit,
		string(record.Status),
		acknowledgedBy,
		acknowledgeDate,
		record.AcknowledgementComment,
	}
}
