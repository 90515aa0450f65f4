package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const exportSheet = "Sellers"

var exportHeader = []string{"Id", "Name", "Email", "Birth Date", "Base Salary", "Department"}

// ExportXLSX 导出全部销售员（与列表同序）
func (s *SellerService) ExportXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", err
	}

	_ = f.SetColWidth(exportSheet, "A", "A", 8)
	_ = f.SetColWidth(exportSheet, "B", "C", 28)
	_ = f.SetColWidth(exportSheet, "D", "E", 14)
	_ = f.SetColWidth(exportSheet, "F", "F", 20)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	for i, h := range exportHeader {
		c := cell(i, 1)
		_ = f.SetCellValue(exportSheet, c, h)
		_ = f.SetCellStyle(exportSheet, c, c, headerStyle)
	}

	for r, sl := range list {
		row := r + 2
		if sl.ID != nil {
			_ = f.SetCellValue(exportSheet, cell(0, row), *sl.ID)
		}
		_ = f.SetCellValue(exportSheet, cell(1, row), sl.Name)
		_ = f.SetCellValue(exportSheet, cell(2, row), sl.Email)
		if sl.BirthDate != nil {
			_ = f.SetCellValue(exportSheet, cell(3, row), sl.BirthDate.Format("02/01/2006"))
		}
		if sl.BaseSalary != nil {
			_ = f.SetCellValue(exportSheet, cell(4, row), fmt.Sprintf("%.2f", *sl.BaseSalary))
		}
		if sl.Department != nil {
			_ = f.SetCellValue(exportSheet, cell(5, row), sl.Department.Name)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.log.Error("write xlsx failed", zap.Error(err))
		return nil, "", err
	}
	return buf, fmt.Sprintf("sellers_%s.xlsx", time.Now().Format("20060102")), nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
