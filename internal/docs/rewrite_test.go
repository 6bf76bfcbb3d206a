package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteIndex(t *testing.T) {
	in := `<!DOCTYPE html>
<html>
<head>
  <link rel="stylesheet" type="text/css" href="./swagger-ui.css" />
  <link rel="stylesheet" type="text/css" href="index.css" />
  <link rel="icon" type="image/png" href="/favicon-32x32.png" sizes="32x32" />
  <link rel="preconnect" href="https://fonts.example.com" />
</head>
<body>
  <a href="#top">top</a>
  <div id="swagger-ui"></div>
  <script src="./swagger-ui-bundle.js" charset="UTF-8"></script>
  <script src="/docs/swagger-initializer.js" charset="UTF-8"></script>
  <img src="" />
</body>
</html>`

	want := `<!DOCTYPE html>
<html>
<head>
  <link rel="stylesheet" type="text/css" href="/docs/swagger-ui.css" />
  <link rel="stylesheet" type="text/css" href="/docs/index.css" />
  <link rel="icon" type="image/png" href="/docs/favicon-32x32.png" sizes="32x32" />
  <link rel="preconnect" href="https://fonts.example.com" />
</head>
<body>
  <a href="#top">top</a>
  <div id="swagger-ui"></div>
  <script src="/docs/swagger-ui-bundle.js" charset="UTF-8"></script>
  <script src="/docs/swagger-initializer.js" charset="UTF-8"></script>
  <img src="" />
</body>
</html>`

	assert.Equal(t, want, string(RewriteIndex([]byte(in))))
}

func TestRewriteIndexKeepsProtocolRelative(t *testing.T) {
	in := `<script src="//cdn.example.com/a.js"></script><link href="/b.css">`

	got := string(RewriteIndex([]byte(in)))

	assert.Equal(t, `<script src="//cdn.example.com/a.js"></script><link href="/docs/b.css">`, got)
}

func TestRewriteIndexIsStable(t *testing.T) {
	in := []byte(`<script src="a.js"></script>`)

	once := RewriteIndex(in)

	assert.Equal(t, `<script src="/docs/a.js"></script>`, string(once))
	assert.Equal(t, once, RewriteIndex(once))
}

func TestRewriteInitializerReplacesExampleURL(t *testing.T) {
	in := `window.onload = function() {
  window.ui = SwaggerUIBundle({
    url: "https://petstore.swagger.io/v2/swagger.json",
    dom_id: '#swagger-ui',
  });
};`

	got := string(RewriteInitializer([]byte(in)))

	assert.Contains(t, got, `url: "/swagger.json",`)
	assert.NotContains(t, got, "petstore")
}

func TestRewriteInitializerReplacesFirstURLSetting(t *testing.T) {
	in := `SwaggerUIBundle({ url: 'https://api.example.com/openapi.json', dom_id: '#swagger-ui' });
const other = { url: "/keep" };`

	got := string(RewriteInitializer([]byte(in)))

	assert.Equal(t, `SwaggerUIBundle({ url: "/swagger.json", dom_id: '#swagger-ui' });
const other = { url: "/keep" };`, got)
}

func TestRewriteInitializerInjectsBootstrap(t *testing.T) {
	in := `console.log("custom initializer");`

	got := string(RewriteInitializer([]byte(in)))

	assert.Contains(t, got, in)
	assert.Contains(t, got, `SwaggerUIBundle({`)
	assert.Contains(t, got, `url: "/swagger.json"`)
	assert.Contains(t, got, `dom_id: "#swagger-ui"`)
}
