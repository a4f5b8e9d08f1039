// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/graphgen/internal/render"
	"github.com/pdiddy/graphgen/pkg/types"
)

// rephraseHint is shown when nothing could be extracted.
const rephraseHint = `no data points found; try something like "50% residence, 10% commercial"`

// ExtractRequest is the body of POST /api/extract.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractResponse is the body returned by POST /api/extract.
type ExtractResponse struct {
	Series   types.Series `json:"series"`
	Strategy string       `json:"strategy"`
}

// errorResponse is the JSON body of every API error.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("writing JSON response failed", zap.Int("status", status), zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := s.wait(r.Context()); err != nil {
		s.logger.Debug("extract request abandoned", zap.Error(err))
		return
	}

	series, strategy := s.extractSeries(req.Text)
	s.writeJSON(w, http.StatusOK, ExtractResponse{Series: series, Strategy: strategy})
}

// chartOptions reads kind, format, size and title query parameters on top of
// the configured defaults.
func (s *Server) chartOptions(r *http.Request) (render.Options, error) {
	q := r.URL.Query()
	opts := s.opts

	if v := q.Get("kind"); v != "" {
		kind, err := types.ParseChartKind(v)
		if err != nil {
			return opts, err
		}
		opts.Kind = kind
	}
	if v := q.Get("format"); v != "" {
		format, err := types.ParseImageFormat(v)
		if err != nil {
			return opts, err
		}
		opts.Format = format
	}
	for _, p := range []struct {
		name string
		dst  *int
	}{{"width", &opts.Width}, {"height", &opts.Height}} {
		if v := q.Get(p.name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 || n > 4000 {
				return opts, fmt.Errorf("invalid %s %q: want 1-4000", p.name, v)
			}
			*p.dst = n
		}
	}
	if v := q.Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 || f > 4 {
			return opts, fmt.Errorf("invalid scale %q: want a number in (0, 4]", v)
		}
		opts.Scale = f
	}
	opts.Title = q.Get("title")
	return opts, nil
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	opts, err := s.chartOptions(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	series, _ := s.extractSeries(r.URL.Query().Get("text"))

	var buf bytes.Buffer
	err = s.renderer.Render(&buf, series, opts)
	switch {
	case errors.Is(err, render.ErrEmptySeries):
		s.writeError(w, http.StatusUnprocessableEntity, rephraseHint)
		return
	case errors.Is(err, render.ErrZeroTotal):
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		s.logger.Error("chart render failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to render chart")
		return
	}

	format := opts.Format
	if format == "" {
		format = types.ImagePNG
	}
	kind := opts.Kind
	if kind == "" {
		kind = types.ChartPie
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", render.Filename(kind, format)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Warn("writing chart response failed", zap.String("kind", string(kind)), zap.Error(err))
	}
}

// indexData feeds indexTemplate.
type indexData struct {
	Text   string
	Series types.Series
	Kinds  []types.ChartKind
	Hint   string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Text:  r.URL.Query().Get("text"),
		Kinds: types.ChartKinds,
	}

	if strings.TrimSpace(data.Text) != "" {
		if err := s.wait(r.Context()); err != nil {
			return
		}
		data.Series, _ = s.extractSeries(data.Text)
		if data.Series.IsEmpty() {
			data.Hint = rephraseHint
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Error("index template failed", zap.Error(err))
	}
}

var indexTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"share": func(s types.Series, i int) string { return fmt.Sprintf("%.0f%%", s.Share(i)*100) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Graph Generator</title>
</head>
<body>
<h1>Graph Generator</h1>
<p>Enter data in natural language and generate visualizations.</p>
<form method="get" action="/">
<input name="text" size="80" value="{{.Text}}" placeholder="e.g., 50% residence, 10% commercial, 10% institutional, 20% industrial">
<button type="submit">Generate</button>
</form>
{{- if .Hint}}
<p class="hint">{{.Hint}}</p>
{{- end}}
{{- if .Series}}
<table>
<tr><th>Name</th><th>Value</th><th>Share</th></tr>
{{- range $i, $p := .Series}}
<tr><td>{{$p.Name}}</td><td>{{$p.Value}}</td><td>{{share $.Series $i}}</td></tr>
{{- end}}
</table>
{{- range .Kinds}}
<figure>
<img alt="{{.}} chart" src="/api/chart?kind={{.}}&amp;text={{$.Text}}" width="800">
<figcaption><a href="/api/chart?kind={{.}}&amp;text={{$.Text}}">Download {{.}} chart</a></figcaption>
</figure>
{{- end}}
{{- end}}
</body>
</html>
`))
