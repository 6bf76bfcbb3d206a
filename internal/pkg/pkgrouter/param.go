package pkgrouter

import (
	"context"

	"github.com/julienschmidt/httprouter"
)

// GetParam reads a named path capture from the request context.
func GetParam(ctx context.Context, key string) string {
	return httprouter.ParamsFromContext(ctx).ByName(key)
}

// MatchedRoute returns the pattern of the route serving the request, or ""
// when the request fell through to the fallback handler.
func MatchedRoute(ctx context.Context) string {
	return httprouter.ParamsFromContext(ctx).MatchedRoutePath()
}
