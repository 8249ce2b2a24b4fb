package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"blog-service/internal/domain"
	"blog-service/internal/metrics"
	"blog-service/internal/repository"
)

// Supported export formats.
const (
	FormatCSV    = "csv"
	FormatNDJSON = "ndjson"
)

// ErrUnsupportedFormat is returned for an unknown export format.
var ErrUnsupportedFormat = fmt.Errorf("unsupported export format")

type exportService struct {
	articles repository.ArticleRepository
}

// NewExportService creates a new ExportService.
func NewExportService(articles repository.ArticleRepository) ExportService {
	return &exportService{articles: articles}
}

// StreamArticles writes the full article set to w in the requested format,
// one row per article, without buffering the whole set in memory.
func (s *exportService) StreamArticles(ctx context.Context, format string, w io.Writer) error {
	timer := metrics.NewTimer()

	var err error
	switch format {
	case FormatCSV:
		err = s.streamCSV(ctx, w)
	case FormatNDJSON:
		err = s.streamNDJSON(ctx, w)
	default:
		return ErrUnsupportedFormat
	}

	if err != nil {
		metrics.ExportsTotal.WithLabelValues(format, "error").Inc()
		return err
	}

	timer.ObserveDuration(metrics.ExportDuration.WithLabelValues(format))
	metrics.ExportsTotal.WithLabelValues(format, "success").Inc()

	return nil
}

func (s *exportService) streamCSV(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "body", "author_id", "created_at", "updated_at"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	err := s.articles.StreamAll(ctx, func(a domain.Article) error {
		return cw.Write([]string{
			a.ID,
			a.Title,
			a.Body,
			a.AuthorID,
			a.CreatedAt.Format(time.RFC3339),
			a.UpdatedAt.Format(time.RFC3339),
		})
	})
	if err != nil {
		return fmt.Errorf("stream articles: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

func (s *exportService) streamNDJSON(ctx context.Context, w io.Writer) error {
	enc := json.NewEncoder(w)

	err := s.articles.StreamAll(ctx, func(a domain.Article) error {
		return enc.Encode(a)
	})
	if err != nil {
		return fmt.Errorf("stream articles: %w", err)
	}

	return nil
}
