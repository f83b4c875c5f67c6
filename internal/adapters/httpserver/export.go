package httpserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// handleExportOrders streams the full order book as an XLSX workbook, one row per
// order with a flattened item summary.
func (s *Server) handleExportOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}
	orders, err := s.orders.List(r.Context())
	if err != nil {
		http.Error(w, "err", 500)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Orders"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		http.Error(w, "err", 500)
		return
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"Order ID", "Date", "Status", "Customer", "Email", "Phone", "City", "Items", "Units", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, o := range orders {
		units := 0
		lines := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			units += it.Quantity
			lines = append(lines, fmt.Sprintf("%s x%d", it.Name, it.Quantity))
		}
		values := []any{o.ID, o.Date, string(o.Status), o.Customer.FullName, o.Customer.Email,
			o.Customer.Phone, o.Customer.City, strings.Join(lines, "; "), units, o.Total}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=orders_%s.xlsx", time.Now().Format("2006-01-02")))
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("export orders xlsx")
	}
}
