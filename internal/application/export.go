package application

import (
	"context"
	"log"
	"time"

	"github.com/linskybing/client-intake/internal/export"
	"github.com/linskybing/client-intake/internal/repository"
)

const csvContentType = "text/csv; charset=utf-8"

// ObjectStore receives archived exports.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type ExportResult struct {
	Filename string
	Data     []byte
	Count    int
	// Location is set when the export was archived.
	Location string
}

type ExportService struct {
	Repos *repository.Repos
	store ObjectStore
	now   func() time.Time
}

// NewExportService builds the service; store may be nil to skip archiving.
func NewExportService(repos *repository.Repos, store ObjectStore) *ExportService {
	return &ExportService{
		Repos: repos,
		store: store,
		now:   time.Now,
	}
}

// ExportCSV renders the submissions matching term. Archiving is best effort:
// a storage failure is logged and the export is still returned.
func (s *ExportService) ExportCSV(ctx context.Context, term string) (ExportResult, error) {
	subs, err := s.Repos.Submission.ListSubmissions(ctx)
	if err != nil {
		return ExportResult{}, err
	}
	subs = export.Filter(subs, term)

	now := s.now()
	res := ExportResult{
		Filename: export.Filename(now),
		Data:     export.Encode(subs),
		Count:    len(subs),
	}

	if s.store != nil {
		loc, err := s.store.Put(ctx, export.ArchiveKey(now), res.Data, csvContentType)
		if err != nil {
			log.Printf("[Export] archive failed: %v", err)
		} else {
			res.Location = loc
			log.Printf("[Export] archived %d rows to %s", res.Count, loc)
		}
	}
	return res, nil
}
