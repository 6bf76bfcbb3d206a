package inbound

import (
	"context"

	"github.com/shandysiswandi/godocstore/internal/document/entity"
	"github.com/shandysiswandi/godocstore/internal/document/usecase"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkgrouter"
)

// Route patterns, one or more decimal digits captured as "id".
const (
	PatternGet  = `^/(?P<id>\d+)$`
	PatternSave = `^/save/(?P<id>\d+)$`
)

type uc interface {
	Get(ctx context.Context, id entity.ID) (usecase.Document, error)
	Save(ctx context.Context, id entity.ID, body []byte) error
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET(PatternGet, end.Get)
	r.POST(PatternSave, end.Save)
}
