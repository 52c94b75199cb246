package export

import (
	"StockKeeper/internal/service"
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func testReport() *service.Report {
	return &service.Report{
		Rows: []service.ReportRow{
			{ItemName: "A", CategoryName: "Инструменты", Quantity: 10, Price: decimal.NewFromInt(2), LineTotal: decimal.NewFromInt(20)},
			{ItemName: "B", CategoryName: "—", Quantity: 5, Price: decimal.NewFromInt(3), LineTotal: decimal.NewFromInt(15)},
		},
		TotalQuantity: 15,
		TotalValue:    decimal.NewFromInt(35),
	}
}

func TestExporter_Render(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := NewExporter(ctx, 2, zap.NewNop().Sugar())
	data, err := e.Render(ctx, testReport())
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	// книга читается обратно
	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	cell := func(ref string) string {
		v, err := f.GetCellValue(sheetName, ref)
		assert.NoError(t, err)
		return v
	}

	// шапка
	for i, want := range reportHeaders {
		assert.Equal(t, want, cell(columns[i]+"1"))
	}

	// строки товаров
	assert.Equal(t, "A", cell("A2"))
	assert.Equal(t, "Инструменты", cell("B2"))
	assert.Equal(t, "10", cell("C2"))
	assert.Equal(t, "2", cell("D2"))
	assert.Equal(t, "20", cell("E2"))

	assert.Equal(t, "B", cell("A3"))
	assert.Equal(t, "—", cell("B3"))

	// итоговая строка: подпись, количество и сумма; остальное пусто
	assert.Equal(t, totalsLabel, cell("A4"))
	assert.Equal(t, "", cell("B4"))
	assert.Equal(t, "15", cell("C4"))
	assert.Equal(t, "", cell("D4"))
	assert.Equal(t, "35", cell("E4"))
}

func TestExporter_Render_EmptyReport(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := NewExporter(ctx, 1, zap.NewNop().Sugar())
	data, err := e.Render(ctx, &service.Report{TotalValue: decimal.Zero})
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	// сразу после шапки — итоговая строка
	v, err := f.GetCellValue(sheetName, "A2")
	assert.NoError(t, err)
	assert.Equal(t, totalsLabel, v)
}

// Отменённый контекст снимает ожидание результата
func TestExporter_Render_CanceledContext(t *testing.T) {
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	e := NewExporter(workerCtx, 1, zap.NewNop().Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Render(ctx, testReport())
	assert.ErrorIs(t, err, context.Canceled)
}
