package preview

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrMalformedArchive is returned when the job archive cannot be read.
var ErrMalformedArchive = errors.New("preview: malformed archive")

// Renderer turns a generated project archive into a browsable HTML summary.
// The renderer is stateless so callers can reuse a single instance across
// requests without additional locking.
type Renderer struct {
	engine goldmark.Markdown
}

// NewRenderer constructs a renderer with GFM extensions and auto heading IDs.
func NewRenderer() *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// RenderMarkdown converts Markdown into HTML.
func (r *Renderer) RenderMarkdown(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("preview: render markdown: %w", err)
	}
	return buf.Bytes(), nil
}

type pageData struct {
	Project string
	Readme  template.HTML
	Files   []string
}

var pageTemplate = template.Must(template.New("preview").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<title>{{.Project}} - project preview</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #1e293b; }
h1, h2, h3 { color: #0f172a; }
code, pre { background: #f1f5f9; border-radius: 4px; padding: 2px 4px; }
ul.files { columns: 2; font-size: 0.9rem; }
.readme { border: 1px solid #e2e8f0; border-radius: 8px; padding: 1.5rem; margin-bottom: 2rem; }
</style>
</head>
<body>
<h1>{{.Project}}</h1>
{{if .Readme}}<div class="readme">{{.Readme}}</div>{{end}}
<h2>Archive contents</h2>
<ul class="files">
{{range .Files}}<li><code>{{.}}</code></li>
{{end}}</ul>
</body>
</html>
`))

// ProjectPage reads the generated archive and returns an HTML page with the
// rendered README followed by the archive's file listing.
func (r *Renderer) ProjectPage(projectName string, archive []byte) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArchive, err)
	}

	data := pageData{Project: projectName}
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		data.Files = append(data.Files, file.Name)
		if data.Readme == "" && strings.HasSuffix(file.Name, "README.md") {
			readme, err := readEntry(file)
			if err != nil {
				return nil, err
			}
			rendered, err := r.RenderMarkdown(readme)
			if err != nil {
				return nil, err
			}
			data.Readme = template.HTML(rendered)
		}
	}
	sort.Strings(data.Files)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("preview: render page: %w", err)
	}
	return buf.Bytes(), nil
}

func readEntry(file *zip.File) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("preview: open %s: %w", file.Name, err)
	}
	defer src.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(src); err != nil {
		return nil, fmt.Errorf("preview: read %s: %w", file.Name, err)
	}
	return buf.Bytes(), nil
}
