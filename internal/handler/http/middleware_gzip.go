package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-ai-feedback/internal/app"
	"github.com/MKhiriev/go-ai-feedback/internal/utils"
	"github.com/go-chi/chi/v5/middleware"
)

// compressJSON gzips JSON responses only. WAV audio is already dense and
// goes out untouched.
var compressJSON = middleware.Compress(5, "application/json")

var gzipReaders sync.Pool

// withGunzipBody inflates request bodies sent with Content-Encoding: gzip.
// A body that is not valid gzip is rejected with 400. The reader goes back to
// the pool once the handler returns; net/http only closes the original body.
func withGunzipBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr, _ := gzipReaders.Get().(*gzip.Reader)
		var err error
		if zr == nil {
			zr, err = gzip.NewReader(r.Body)
		} else {
			err = zr.Reset(r.Body)
		}
		if err != nil {
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		body := &pooledGzipBody{Reader: zr, raw: r.Body}
		defer body.Close()

		r.Body = body
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

type pooledGzipBody struct {
	*gzip.Reader
	raw io.Closer
}

func (b *pooledGzipBody) Close() error {
	if b.Reader == nil {
		return nil
	}
	_ = b.Reader.Close()
	gzipReaders.Put(b.Reader)
	b.Reader = nil
	return b.raw.Close()
}
