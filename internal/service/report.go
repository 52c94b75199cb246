package service

import (
	"StockKeeper/internal/model"
	"StockKeeper/internal/repo"
	"context"

	"github.com/shopspring/decimal"
)

// NoCategoryPlaceholder подставляется вместо категории, когда её нет.
const NoCategoryPlaceholder = "—"

// ReportRow — строка отчёта по одному товару.
type ReportRow struct {
	ItemName     string          `json:"item_name"`
	CategoryName string          `json:"category_name"`
	Quantity     int64           `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// Report — оценка каталога: строки и итоги.
type Report struct {
	Rows          []ReportRow     `json:"rows"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// ReportService строит отчёт по живому каталогу на момент вызова.
// С сеансами инвентаризации отчёт не связан.
type ReportService struct {
	items repo.ItemRepository
}

func NewReportService(items repo.ItemRepository) *ReportService {
	return &ReportService{items: items}
}

// Generate собирает строки line_total = quantity × price и итоги.
// Читает репозиторий напрямую, минуя кеш листинга: отчёт считается
// по состоянию на момент вызова.
func (s *ReportService) Generate(ctx context.Context) (*Report, error) {
	items, err := s.items.List(ctx, repo.ItemFilter{})
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Rows:       make([]ReportRow, 0, len(items)),
		TotalValue: decimal.Zero,
	}
	for _, it := range items {
		lineTotal := it.Price.Mul(decimal.NewFromInt(it.Quantity))
		rep.Rows = append(rep.Rows, ReportRow{
			ItemName:     it.Name,
			CategoryName: categoryName(&it),
			Quantity:     it.Quantity,
			Price:        it.Price,
			LineTotal:    lineTotal,
		})
		rep.TotalQuantity += it.Quantity
		rep.TotalValue = rep.TotalValue.Add(lineTotal)
	}
	return rep, nil
}

func categoryName(it *model.Item) string {
	if it.Category == nil {
		return NoCategoryPlaceholder
	}
	return it.Category.Name
}
