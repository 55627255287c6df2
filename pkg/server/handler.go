// Package server publishes generated WSDLs over HTTP.
//
// Every adapter is served at /<adapter>. The query selects the
// representation: ?wsdl returns the document, ?zip the bundle with all
// schemas. Addresses in the document default to the URL of the request.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/getmockd/wsdlgen/pkg/logging"
	"github.com/getmockd/wsdlgen/pkg/pipeline"
	"github.com/getmockd/wsdlgen/pkg/schema"
	"github.com/getmockd/wsdlgen/pkg/wsdl"
)

// Content types of the responses.
const (
	ContentTypeWSDL = "application/xml"
	ContentTypeZip  = "application/octet-stream"
)

// Handler serves the WSDLs of a fixed set of adapters.
type Handler struct {
	adapters map[string]*pipeline.Adapter
	names    []string
	opts     wsdl.Options
	logger   *slog.Logger
	mux      *http.ServeMux
}

// AdapterInfo describes a served adapter in the index.
type AdapterInfo struct {
	Name string `json:"name"`
	WSDL string `json:"wsdl"`
	Zip  string `json:"zip"`
}

// NewHandler creates a handler for adapters. opts is used for every
// generation; a shared schema cache is created when it has none.
func NewHandler(adapters []*pipeline.Adapter, opts wsdl.Options) *Handler {
	if opts.Cache == nil {
		opts.Cache = schema.NewCache()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	h := &Handler{
		adapters: make(map[string]*pipeline.Adapter, len(adapters)),
		opts:     opts,
		logger:   opts.Logger,
		mux:      http.NewServeMux(),
	}
	for _, a := range adapters {
		if _, dup := h.adapters[a.Name]; dup {
			continue
		}
		h.adapters[a.Name] = a
		h.names = append(h.names, a.Name)
	}

	h.mux.HandleFunc("GET /{$}", h.serveIndex)
	h.mux.HandleFunc("GET /{adapter}", h.serveAdapter)
	return h
}

// ServeHTTP implements the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	base := requestURL(r)
	infos := make([]AdapterInfo, len(h.names))
	for i, name := range h.names {
		u := strings.TrimSuffix(base, "/") + "/" + name
		infos[i] = AdapterInfo{Name: name, WSDL: u + "?wsdl", Zip: u + "?zip"}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(infos)
}

func (h *Handler) serveAdapter(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("adapter")
	a, ok := h.adapters[name]
	if !ok {
		h.writeError(w, http.StatusNotFound, "Unknown adapter: "+name)
		return
	}

	zip := false
	switch {
	case hasQueryKey(r, "zip"):
		zip = true
	case hasQueryKey(r, "wsdl"):
	default:
		h.writeError(w, http.StatusBadRequest, "Add ?wsdl or ?zip to the URL")
		return
	}

	g, err := wsdl.New(a, h.opts)
	if err != nil {
		h.logger.Error("cannot generate wsdl", "adapter", name, "error", err)
		status := http.StatusInternalServerError
		if errors.Is(err, wsdl.ErrNoInputValidator) {
			status = http.StatusNotFound
		}
		h.writeError(w, status, err.Error())
		return
	}

	var buf bytes.Buffer
	location := requestURL(r)
	contentType, fileName, disposition := ContentTypeWSDL, g.FileName()+".wsdl", "inline"
	if zip {
		err = g.Zip(&buf, location)
		contentType, fileName, disposition = ContentTypeZip, g.FileName()+".zip", "attachment"
	} else {
		err = g.Generate(&buf, location)
	}
	if err != nil {
		h.logger.Error("cannot write wsdl", "adapter", name, "error", err)
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.logger.Info("served wsdl", "adapter", name, "file", fileName, "warnings", len(g.Warnings()))

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": fileName}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}

// hasQueryKey reports whether the query has key, ignoring case.
func hasQueryKey(r *http.Request, key string) bool {
	for k := range r.URL.Query() {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// requestURL rebuilds the URL the client used, without query. A
// X-Forwarded-Proto header set by a proxy wins over the connection scheme.
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(p, ",")[0]))
	}
	return scheme + "://" + r.Host + r.URL.EscapedPath()
}
