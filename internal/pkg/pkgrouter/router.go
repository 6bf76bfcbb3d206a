package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"slices"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkgerror"
)

// Any matches every HTTP method when used as a route method.
const Any = ""

// WelcomeMessage is the greeting served on "/" and "/hello".
const WelcomeMessage = "Welcome to the JSON API!"

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded) or an error.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// RawResponse is written to the client as-is, without JSON encoding.
type RawResponse struct {
	ContentType string
	Body        []byte
}

type route struct {
	method  string
	pattern *regexp.Regexp
	names   []string
	handler http.Handler
}

// Router is an http.Handler that evaluates an ordered route table.
//
// Routes are tried in registration order and the first one whose method and
// path pattern both match serves the request. Patterns are anchored regular
// expressions compiled once at registration; named groups become path
// parameters readable with GetParam. Requests matching nothing go to the
// fallback handler, which answers 404 {"error":"Not Found"}.
type Router struct {
	routes     []route
	fallback   http.Handler
	notFound   http.Handler
	errorCodec func(ctx context.Context, w http.ResponseWriter, err error)
	encoder    func(ctx context.Context, w http.ResponseWriter, resp any)
	mws        []Middleware
}

// NewRouter builds the default application router with standard middleware
// and the welcome route.
func NewRouter(uuid Generator) *Router {
	errorCodec := func(ctx context.Context, w http.ResponseWriter, err error) {
		var gerr *pkgerror.Error
		if !errors.As(err, &gerr) {
			slog.ErrorContext(ctx, "unexpected handler error", "error", err)
			writeJSON(w, errorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
			return
		}

		if gerr.Type() == pkgerror.TypeServer {
			slog.ErrorContext(ctx, "request failed", "error", gerr.String())
		}

		writeJSON(w, errorResponse{Error: gerr.Msg()}, gerr.StatusCode())
	}

	okCodec := func(ctx context.Context, w http.ResponseWriter, resp any) {
		if raw, ok := resp.(RawResponse); ok {
			w.Header().Set("Content-Type", raw.ContentType)
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write(raw.Body); err != nil {
				slog.WarnContext(ctx, "server: failed to write response", "error", err)
			}
			return
		}

		code := http.StatusOK
		if sc, ok := resp.(interface {
			StatusCode() int
		}); ok {
			code = sc.StatusCode()
		}

		if code == http.StatusNoContent || resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, resp, code)
	}

	ro := &Router{
		errorCodec: errorCodec,
		encoder:    okCodec,
		notFound: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, errorResponse{Error: "Not Found"}, http.StatusNotFound)
		}),
		mws: []Middleware{
			middlewareRecoverer,
			middlewareCorrelationID(uuid),
			middlewareLogging,
		},
	}
	ro.fallback = Chain(ro.notFound, ro.mws...)

	ro.Any(`^/(?:hello)?$`, func(context.Context, *http.Request) (any, error) {
		return MessageResponse{Message: WelcomeMessage}, nil
	})

	return ro
}

// Use appends middleware to the existing middleware stack.
//
// Only routes registered afterwards (and the fallback) see the new middleware.
func (r *Router) Use(mws ...Middleware) {
	r.mws = append(r.mws, mws...)
	r.fallback = Chain(r.notFound, r.mws...)
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(pattern string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, pattern, h, mws...)
}

// POST registers a POST endpoint using the application Handler signature.
func (r *Router) POST(pattern string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPost, pattern, h, mws...)
}

// Any registers an endpoint that matches every HTTP method.
func (r *Router) Any(pattern string, h Handler, mws ...Middleware) {
	r.endpoint(Any, pattern, h, mws...)
}

// Handle registers a raw http.Handler with the router.
//
// It panics if pattern is not a valid regular expression, so a bad route
// table fails at startup rather than on the first request.
func (r *Router) Handle(method, pattern string, h http.Handler, mws ...Middleware) {
	re := regexp.MustCompile(pattern)

	r.routes = append(r.routes, route{
		method:  method,
		pattern: re,
		names:   re.SubexpNames(),
		handler: Chain(h, append(slices.Clone(r.mws), mws...)...),
	})
}

func (r *Router) endpoint(method, pattern string, h Handler, mws ...Middleware) {
	r.Handle(method, pattern, http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(re.Context(), re)
		if err != nil {
			r.errorCodec(re.Context(), w, err)
			return
		}
		r.encoder(re.Context(), w, resp)
	}), mws...)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	for _, rt := range r.routes {
		if rt.method != Any && rt.method != req.Method {
			continue
		}

		match := rt.pattern.FindStringSubmatch(path)
		if match == nil {
			continue
		}

		params := make(httprouter.Params, 0, len(match))
		for i, name := range rt.names {
			if i == 0 || name == "" {
				continue
			}
			params = append(params, httprouter.Param{Key: name, Value: match[i]})
		}
		params = append(params, httprouter.Param{Key: httprouter.MatchedRoutePathParam, Value: rt.pattern.String()})

		ctx := context.WithValue(req.Context(), httprouter.ParamsKey, params)
		rt.handler.ServeHTTP(w, req.WithContext(ctx))
		return
	}

	r.fallback.ServeHTTP(w, req)
}

type errorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the {"message": "..."} body used for plain acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("server: failed to encode data to json", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	//nolint:errcheck // client went away, nothing left to do
	w.Write(body)
}
