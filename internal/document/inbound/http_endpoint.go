package inbound

import (
	"context"
	"io"
	"net/http"

	"github.com/shandysiswandi/godocstore/internal/document/entity"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkgerror"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Get(ctx context.Context, _ *http.Request) (any, error) {
	doc, err := h.uc.Get(ctx, entity.ID(pkgrouter.GetParam(ctx, "id")))
	if err != nil {
		return nil, err
	}

	return pkgrouter.RawResponse{
		ContentType: contentTypeJSON,
		Body:        doc.Content,
	}, nil
}

func (h *HTTPEndpoint) Save(ctx context.Context, r *http.Request) (any, error) {
	if r.Body == nil {
		return nil, pkgerror.NewInvalidFormat(msgInvalidJSON)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, pkgerror.NewInvalidFormat(msgInvalidJSON)
	}

	if err := h.uc.Save(ctx, entity.ID(pkgrouter.GetParam(ctx, "id")), body); err != nil {
		return nil, err
	}

	return SaveResponse{Message: msgSaved}, nil
}
