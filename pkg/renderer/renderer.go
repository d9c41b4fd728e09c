package renderer

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
	"github.com/resumesmith/resumesmith/pkg/resume"
	"github.com/rs/zerolog"
)

//go:embed template.html
var defaultTemplate string

// Documents holds the rendered output formats.
type Documents struct {
	DOCX []byte
	PDF  []byte
}

// RenderError indicates document rendering failed. Callers degrade to a
// JSON export of the resume data instead of failing the request.
type RenderError struct {
	Stage string
	Err   error
}

// Error implements the error interface.
func (e *RenderError) Error() (msg string) {
	msg = fmt.Sprintf("rendering failed during %s: %v", e.Stage, e.Err)
	return msg
}

// Unwrap exposes the underlying cause.
func (e *RenderError) Unwrap() (err error) {
	err = e.Err
	return err
}

// IsRenderError reports whether err is a RenderError.
func IsRenderError(err error) (render bool) {
	var re *RenderError
	render = errors.As(err, &re)
	return render
}

// Renderer merges resume data into an HTML template and produces PDF via
// headless Chrome and DOCX via pandoc.
type Renderer struct {
	templatePath string
	chromePath   string
	logger       zerolog.Logger
}

// New creates a Renderer. templatePath and chromePath may be empty: the
// embedded template and PATH lookup are used instead.
func New(templatePath, chromePath string, logger zerolog.Logger) (r *Renderer) {
	r = &Renderer{
		templatePath: templatePath,
		chromePath:   chromePath,
		logger:       logger,
	}
	return r
}

// Render produces both document formats for a resume.
func (r *Renderer) Render(ctx context.Context, data resume.ResumeData) (docs Documents, err error) {
	var html string
	html, err = r.merge(data)
	if err != nil {
		err = &RenderError{Stage: "template merge", Err: err}
		return docs, err
	}

	docs.PDF, err = renderPDF(ctx, html, r.chromePath)
	if err != nil {
		err = &RenderError{Stage: "pdf", Err: err}
		return docs, err
	}

	docs.DOCX, err = renderDOCX(html)
	if err != nil {
		err = &RenderError{Stage: "docx", Err: err}
		return docs, err
	}

	r.logger.Info().
		Int("pdf_bytes", len(docs.PDF)).
		Int("docx_bytes", len(docs.DOCX)).
		Msg("resume rendered")

	return docs, err
}

// templateView adapts resume data for the template. LinkedIn is written by
// the synthesizer as a fixed anchor tag, so it is marked safe here rather
// than entity-escaped into visible markup.
type templateView struct {
	resume.ResumeData
	LinkedInHTML template.HTML
}

// merge executes the HTML template against the resume data.
func (r *Renderer) merge(data resume.ResumeData) (html string, err error) {
	text := defaultTemplate
	if r.templatePath != "" {
		var custom []byte
		custom, err = readTemplate(r.templatePath)
		if err != nil {
			return html, err
		}
		text = string(custom)
	}

	var tmpl *template.Template
	tmpl, err = template.New("resume").Parse(text)
	if err != nil {
		err = errors.Wrap(err, "failed to parse resume template")
		return html, err
	}

	view := templateView{
		ResumeData:   data,
		LinkedInHTML: template.HTML(data.LinkedIn), //nolint:gosec // Anchor markup is produced locally, never from model output
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, view)
	if err != nil {
		err = errors.Wrap(err, "failed to execute resume template")
		return html, err
	}

	html = buf.String()
	return html, err
}

// ExportJSON serializes the resume for the degraded download path.
func ExportJSON(data resume.ResumeData) (out []byte, err error) {
	out, err = json.MarshalIndent(data, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal resume data")
		return out, err
	}
	return out, err
}
