package pkglog

import "context"

type correlationIDKey struct{}

// GetCorrelationID returns the ID stored by SetCorrelationID, or "" when the
// context carries none.
func GetCorrelationID(ctx context.Context) string {
	cid, _ := ctx.Value(correlationIDKey{}).(string)
	return cid
}

func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}
