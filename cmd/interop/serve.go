package main

import (
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"

	"github.com/germtb/interop/logger"
)

// pageSource is the part of dom.Document the HTTP handler needs.
type pageSource interface {
	HTML() (string, error)
}

// refreshScript reloads the page once per second so the counters advance.
const refreshScript = `<script>setTimeout(function () { location.reload(); }, 1000);</script>`

// withRefresh appends refreshScript to the end of the page body.
func withRefresh(page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", errors.Wrap(err, "parse page")
	}
	doc.Find("body").AppendHtml(refreshScript)
	return doc.Html()
}

func pageHandler(doc pageSource) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		page, err := doc.HTML()
		if err == nil {
			page, err = withRefresh(page)
		}
		if err != nil {
			logger.Default().Error("render page", "err", err)
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}
