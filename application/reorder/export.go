package reorder

import (
	"context"

	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	"github.com/muhammadheryan/restock/utils/errors"
	"github.com/muhammadheryan/restock/utils/logger"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	defaultSheetName = "Reorder"
	riskSheetName    = "Delivery Risks"
)

var suggestionHeader = []interface{}{
	"Item ID", "Item", "Priority", "Current Stock", "Pending", "Burn Rate / Day",
	"Days Until Empty", "Supplier", "Lead Time (days)", "Next Delivery (days)",
	"Suggested Qty", "Estimated Cost", "Model", "Reason",
}

var riskHeader = []interface{}{
	"Order ID", "Supplier", "Expected Date", "Items", "Days Overdue",
}

// ExportSuggestions renders the same result GetSuggestions returns as an xlsx workbook.
func (s *reorderAppImpl) ExportSuggestions(ctx context.Context, tenantID uint64, req *model.ReorderRequest) ([]byte, error) {
	res, err := s.GetSuggestions(ctx, tenantID, req)
	if err != nil {
		return nil, err
	}

	sheet := defaultSheetName
	if s.config != nil && s.config.Reorder.ExportSheetName != "" {
		sheet = s.config.Reorder.ExportSheetName
	}

	body, err := renderWorkbook(sheet, res)
	if err != nil {
		logger.Error("[ExportSuggestions] renderWorkbook", zap.Uint64("tenant_id", tenantID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return body, nil
}

func renderWorkbook(sheet string, res *model.ReorderResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := writeRows(f, sheet, bold, suggestionHeader, suggestionRows(res.Suggestions)); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", "N", 16); err != nil {
		return nil, err
	}

	if len(res.Notifications) > 0 {
		if _, err := f.NewSheet(riskSheetName); err != nil {
			return nil, err
		}
		if err := writeRows(f, riskSheetName, bold, riskHeader, riskRows(res.Notifications)); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(riskSheetName, "A", "E", 16); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, headerStyle int, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func suggestionRows(suggestions []model.ReorderSuggestion) [][]interface{} {
	rows := make([][]interface{}, 0, len(suggestions))
	for _, s := range suggestions {
		rows = append(rows, []interface{}{
			s.ItemID,
			s.ItemName,
			string(s.Priority),
			s.CurrentStock,
			s.PendingQty,
			s.BurnRate,
			s.DaysUntilEmpty,
			s.SupplierName,
			s.LeadTimeDays,
			s.DaysToNextDelivery,
			s.SuggestedOrderQty,
			s.EstimatedCost.InexactFloat64(),
			string(s.Model),
			s.Reason,
		})
	}
	return rows
}

func riskRows(notices []model.DeliveryRiskNotice) [][]interface{} {
	rows := make([][]interface{}, 0, len(notices))
	for _, n := range notices {
		rows = append(rows, []interface{}{
			n.OrderID,
			n.SupplierName,
			n.ExpectedDate.Format("2006-01-02"),
			n.ItemCount,
			n.DaysOverdue,
		})
	}
	return rows
}
