package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"
)

// compressedWriter routes the response body through a gzip writer while
// headers and status keep their usual path.
type compressedWriter struct {
	http.ResponseWriter
	gz *gzip.Writer
}

func (w compressedWriter) Write(b []byte) (int, error) {
	return w.gz.Write(b)
}

// CompressHandle gzips response bodies for clients advertising gzip support
// via Accept-Encoding. Other clients get the body as is.
func CompressHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}
		gz, err := gzip.NewWriterLevel(w, gzip.BestSpeed)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer gz.Close()
		w.Header().Set("Content-Encoding", "gzip")
		next.ServeHTTP(compressedWriter{ResponseWriter: w, gz: gz}, r)
	})
}

// DecompressHandle transparently inflates gzip-encoded request bodies, so
// handlers always decode plain JSON. A malformed gzip body is the client's
// fault and yields 400.
func DecompressHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}
		gz, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer gz.Close()
		r.Body = gz
		next.ServeHTTP(w, r)
	})
}
