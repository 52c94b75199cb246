package export

import (
	"StockKeeper/internal/service"
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// Заголовки колонок отчёта. Локаль — русская, как в интерфейсе системы.
var reportHeaders = []string{"Название", "Категория", "Количество", "Цена", "Сумма"}

// totalsLabel — подпись итоговой строки.
const totalsLabel = "Итого"

// ContentType — MIME-тип генерируемого документа.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// FileName — имя файла вложения.
const FileName = "inventory_report.xlsx"

var columns = []string{"A", "B", "C", "D", "E"}

// buildWorkbook сериализует отчёт в xlsx: шапка, строка на товар,
// итоговая строка с суммами количества и стоимости (остальные ячейки пустые).
func buildWorkbook(rep *service.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, err
	}

	for i, h := range reportHeaders {
		if err := f.SetCellValue(sheetName, columns[i]+"1", h); err != nil {
			return nil, err
		}
	}

	for i, row := range rep.Rows {
		n := fmt.Sprint(i + 2)
		if err := f.SetCellValue(sheetName, "A"+n, row.ItemName); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, "B"+n, row.CategoryName); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, "C"+n, row.Quantity); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, "D"+n, row.Price.InexactFloat64()); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, "E"+n, row.LineTotal.InexactFloat64()); err != nil {
			return nil, err
		}
	}

	// итоговая строка
	n := fmt.Sprint(len(rep.Rows) + 2)
	if err := f.SetCellValue(sheetName, "A"+n, totalsLabel); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, "C"+n, rep.TotalQuantity); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, "E"+n, rep.TotalValue.InexactFloat64()); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
