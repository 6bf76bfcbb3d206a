package docs

import (
	"bytes"
	"regexp"
	"strings"
)

const (
	// MountPath is where the documentation UI is served.
	MountPath = "/docs"
	// DescriptionPath is the route serving the API description.
	DescriptionPath = "/swagger.json"

	// upstreamExampleURL is the demo description bundled with Swagger UI.
	upstreamExampleURL = "https://petstore.swagger.io/v2/swagger.json"

	bootstrapBlock = `
window.onload = function () {
  window.ui = SwaggerUIBundle({
    url: "` + DescriptionPath + `",
    dom_id: "#swagger-ui",
  });
};
`
)

//nolint:gochecknoglobals // compiled once
var (
	reAttr   = regexp.MustCompile(`(href|src)="([^"]*)"`)
	reURLCfg = regexp.MustCompile(`url:\s*("[^"]*"|'[^']*')`)
)

// RewriteIndex points relative href/src attributes of the UI's index.html at
// the /docs mount. Values starting with "http", "//", "#" or "/docs" are kept.
func RewriteIndex(html []byte) []byte {
	return reAttr.ReplaceAllFunc(html, func(m []byte) []byte {
		sub := reAttr.FindSubmatch(m)
		attr, value := string(sub[1]), string(sub[2])

		if value == "" ||
			strings.HasPrefix(value, "http") ||
			strings.HasPrefix(value, "//") ||
			strings.HasPrefix(value, "#") ||
			strings.HasPrefix(value, MountPath) {
			return m
		}

		value = strings.TrimLeft(strings.TrimPrefix(value, "./"), "/")
		return []byte(attr + `="` + MountPath + "/" + value + `"`)
	})
}

// RewriteInitializer makes the UI's initializer script load this service's
// description. The bundled example URL is replaced first; failing that the
// first `url: "..."` setting is; failing that a bootstrap block is appended.
func RewriteInitializer(script []byte) []byte {
	if bytes.Contains(script, []byte(upstreamExampleURL)) {
		return bytes.ReplaceAll(script, []byte(upstreamExampleURL), []byte(DescriptionPath))
	}

	if loc := reURLCfg.FindIndex(script); loc != nil {
		out := make([]byte, 0, len(script))
		out = append(out, script[:loc[0]]...)
		out = append(out, `url: "`+DescriptionPath+`"`...)
		out = append(out, script[loc[1]:]...)
		return out
	}

	out := make([]byte, 0, len(script)+len(bootstrapBlock))
	out = append(out, script...)
	return append(out, bootstrapBlock...)
}
