// Package export сериализует отчёт каталога в xlsx.
// Сборка книги выполняется пулом воркеров, чтобы не занимать
// путь обработки запросов CPU-ёмкой работой.
package export

import (
	"StockKeeper/internal/service"
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type renderResult struct {
	data []byte
	err  error
}

type renderJob struct {
	id   string
	rep  *service.Report
	resp chan renderResult
}

// Exporter — очередь заданий на сериализацию и пул воркеров.
type Exporter struct {
	jobs   chan renderJob
	logger *zap.SugaredLogger
}

// NewExporter запускает workers воркеров; они живут до отмены ctx.
func NewExporter(ctx context.Context, workers int, logger *zap.SugaredLogger) *Exporter {
	if workers < 1 {
		workers = 1
	}
	e := &Exporter{
		jobs:   make(chan renderJob, 16),
		logger: logger,
	}
	for i := 0; i < workers; i++ {
		go e.worker(ctx)
	}
	return e
}

// Render ставит отчёт в очередь и ждёт готовую книгу.
// Отмена ctx снимает ожидание, задание при этом доработает впустую.
func (e *Exporter) Render(ctx context.Context, rep *service.Report) ([]byte, error) {
	job := renderJob{
		id:   uuid.NewString(),
		rep:  rep,
		resp: make(chan renderResult, 1),
	}

	select {
	case e.jobs <- job:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-job.resp:
		return res.data, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (e *Exporter) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-e.jobs:
			data, err := buildWorkbook(job.rep)
			if err != nil {
				e.logger.Errorw("export: render failed", "job_id", job.id, "error", err)
			}
			job.resp <- renderResult{data: data, err: err}
		}
	}
}
