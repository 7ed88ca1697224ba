// Package render writes page declarations out as static HTML, plus the CSV
// data dumps that accompany mapper detail pages.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gbhwdb/sitegen/internal/mapper"
	"github.com/gbhwdb/sitegen/internal/page"
	"github.com/gbhwdb/sitegen/internal/parser"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer renders page declarations under a fixed output root.
type Renderer struct {
	root        string
	concurrency int
	tmpl        *template.Template
}

// New creates a renderer writing under root with at most concurrency page
// jobs in flight.
func New(root string, concurrency int) (*Renderer, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	tmpl, err := template.New("site").Funcs(template.FuncMap{
		"mapperName": func(id mapper.ID) string { return id.DisplayName() },
		"dateCode": func(stamp string) string {
			if code, ok := parser.ParseStamp(stamp); ok {
				return code.CalendarShort()
			}
			return ""
		},
	}).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	return &Renderer{
		root:        root,
		concurrency: concurrency,
		tmpl:        tmpl,
	}, nil
}

// RenderAll renders every declaration with bounded concurrency. All pages are
// attempted; if any page fails the whole run is reported as failed.
func (r *Renderer) RenderAll(decls []page.Declaration) error {
	slog.Info("Rendering pages", "pages", len(decls), "concurrency", r.concurrency)

	type pageResult struct {
		path string
		err  error
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, r.concurrency)
	results := make(chan pageResult, len(decls))

	for _, decl := range decls {
		wg.Add(1)
		go func(decl page.Declaration) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			path := r.outputPath(decl)
			results <- pageResult{path: path, err: r.renderOne(decl, path)}
		}(decl)
	}

	// Wait for all goroutines to finish
	go func() {
		wg.Wait()
		close(results)
	}()

	failed := 0
	for result := range results {
		if result.err != nil {
			slog.Error("Failed to render page", "path", result.path, "error", result.err)
			failed++
			continue
		}
		slog.Debug("Rendered page", "path", result.path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pages failed to render", failed, len(decls))
	}
	return nil
}

// outputPath joins the declaration's path segments under the output root,
// defaulting the filename to the last segment (or the page type if the path
// has only directory segments).
func (r *Renderer) outputPath(decl page.Declaration) string {
	name := string(decl.Type)
	dir := r.root
	if n := len(decl.Path); n > 0 {
		name = decl.Path[n-1]
		dir = filepath.Join(append([]string{r.root}, decl.Path[:n-1]...)...)
	}
	return filepath.Join(dir, name+".html")
}

func (r *Renderer) renderOne(decl page.Declaration, path string) error {
	var tmplName string
	switch decl.Type {
	case page.TypeIndex:
		tmplName = "index.html.tmpl"
	case page.TypeMapperDetail:
		tmplName = "mapper.html.tmpl"
	default:
		return fmt.Errorf("unknown page type %q", decl.Type)
	}

	var buf bytes.Buffer
	data := struct {
		Title string
		Props any
	}{Title: decl.Title, Props: decl.Props}
	if err := r.tmpl.ExecuteTemplate(&buf, tmplName, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", tmplName, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	// Mapper detail pages carry a CSV data dump next to the HTML.
	if props, ok := decl.Props.(page.MapperProps); ok {
		csvPath := path[:len(path)-len(".html")] + ".csv"
		if err := writeCSVDump(csvPath, props); err != nil {
			return fmt.Errorf("failed to write CSV dump: %w", err)
		}
	}

	return nil
}
