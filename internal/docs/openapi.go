package docs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	Title   = "JSON API"
	Version = "1.0.0"

	previewBytes = 200
)

// Build describes the service routes as an OpenAPI 3 document.
func Build() *openapi3.T {
	message := openapi3.NewObjectSchema().WithProperty("message", openapi3.NewStringSchema())
	failure := openapi3.NewObjectSchema().WithProperty("error", openapi3.NewStringSchema())

	idParam := &openapi3.ParameterRef{
		Value: openapi3.NewPathParameter("id").
			WithDescription("Document identifier, one or more decimal digits").
			WithSchema(openapi3.NewStringSchema().WithPattern(`^\d+$`)),
	}

	welcome := func(id string) *openapi3.Operation {
		return &openapi3.Operation{
			OperationID: id,
			Summary:     "Greeting",
			Tags:        []string{"general"},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, jsonResponse("Welcome message", message)),
			),
		}
	}

	paths := openapi3.NewPaths(
		openapi3.WithPath("/", &openapi3.PathItem{Get: welcome("welcomeRoot")}),
		openapi3.WithPath("/hello", &openapi3.PathItem{Get: welcome("welcomeHello")}),
		openapi3.WithPath(DescriptionPath, &openapi3.PathItem{Get: &openapi3.Operation{
			OperationID: "getDescription",
			Summary:     "This API description",
			Tags:        []string{"general"},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, jsonResponse("API description", openapi3.NewObjectSchema())),
				openapi3.WithStatus(http.StatusInternalServerError, textResponse("Description file unreadable")),
			),
		}}),
		openapi3.WithPath("/{id}", &openapi3.PathItem{Get: &openapi3.Operation{
			OperationID: "getDocument",
			Summary:     "Read a stored document",
			Tags:        []string{"documents"},
			Parameters:  openapi3.Parameters{idParam},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, jsonResponse("Stored document bytes", openapi3.NewSchema())),
				openapi3.WithStatus(http.StatusNotFound, jsonResponse("Document not found", failure)),
			),
		}}),
		openapi3.WithPath("/save/{id}", &openapi3.PathItem{Post: &openapi3.Operation{
			OperationID: "saveDocument",
			Summary:     "Create or replace a document",
			Tags:        []string{"documents"},
			Parameters:  openapi3.Parameters{idParam},
			RequestBody: &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().
					WithDescription("Any JSON value").
					WithJSONSchema(openapi3.NewSchema()).
					WithRequired(true),
			},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(http.StatusOK, jsonResponse("Saved", message)),
				openapi3.WithStatus(http.StatusBadRequest, jsonResponse("Body is not JSON", failure)),
				openapi3.WithStatus(http.StatusInternalServerError, jsonResponse("Write failed", failure)),
			),
		}}),
	)

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       Title,
			Version:     Version,
			Description: "Stores and serves JSON documents keyed by numeric identifiers.",
		},
		Paths: paths,
	}
}

func jsonResponse(desc string, schema *openapi3.Schema) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription(desc).
			WithContent(openapi3.NewContentWithJSONSchema(schema)),
	}
}

func textResponse(desc string) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription(desc).
			WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{"text/plain"})),
	}
}

// Generate writes the built description to file unless file already exists.
// It reports whether a file was written.
func Generate(ctx context.Context, file string) (bool, error) {
	if _, err := os.Stat(file); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	doc := Build()
	if err := doc.Validate(ctx); err != nil {
		return false, fmt.Errorf("invalid api description: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return false, err
	}

	//nolint:gosec // served publicly
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return false, err
	}

	return true, nil
}

// Summary is what the startup check reports about a description file.
type Summary struct {
	Title   string
	Version string
	Paths   int
	Preview string
}

// Inspect loads file with the OpenAPI loader. The preview is filled even when
// the document does not load, as long as the file is readable.
func Inspect(ctx context.Context, file string) (Summary, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Preview: string(data[:min(len(data), previewBytes)])}

	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return sum, fmt.Errorf("load api description: %w", err)
	}

	if doc.Info != nil {
		sum.Title = doc.Info.Title
		sum.Version = doc.Info.Version
	}
	if doc.Paths != nil {
		sum.Paths = doc.Paths.Len()
	}

	return sum, nil
}

// Check runs at startup: it optionally generates the description file and
// logs what it finds. Problems are logged, never fatal.
func Check(ctx context.Context, file string, generate bool) error {
	if generate {
		written, err := Generate(ctx, file)
		if err != nil {
			slog.WarnContext(ctx, "failed to generate api description", "file", file, "error", err)
		}
		if written {
			slog.InfoContext(ctx, "api description generated", "file", file)
		}
	}

	sum, err := Inspect(ctx, file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.WarnContext(ctx, "api description not found", "file", file)
	case err != nil && sum.Preview == "":
		slog.WarnContext(ctx, "failed to read api description", "file", file, "error", err)
	case err != nil:
		slog.WarnContext(ctx, "api description is not OpenAPI 3", "file", file, "error", err, "preview", sum.Preview)
	default:
		slog.InfoContext(ctx, "api description loaded",
			"file", file,
			"title", sum.Title,
			"version", sum.Version,
			"paths", sum.Paths,
			"preview", sum.Preview,
		)
	}

	return nil
}
