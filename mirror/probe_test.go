package mirror

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytbascii/ytbascii/constant"
)

func TestHTTPProber(t *testing.T) {
	Convey("Given an HTTP prober", t, func() {
		prober := NewHTTPProber(500 * time.Millisecond)
		ctx := context.Background()

		Convey("A mirror answering 200 on the stats endpoint is online", func() {
			var path atomic.Value
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				path.Store(r.URL.Path)
				_, _ = w.Write([]byte(`{"version":"2.0"}`))
			}))
			defer srv.Close()

			So(prober.Probe(ctx, srv.URL+"/"), ShouldEqual, Online)
			So(path.Load(), ShouldEqual, constant.StatsEndpoint)
		})

		Convey("A mirror answering with an error status is still online", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer srv.Close()

			So(prober.Probe(ctx, srv.URL), ShouldEqual, Online)
		})

		Convey("A refused connection is offline", func() {
			srv := httptest.NewServer(http.NotFoundHandler())
			url := srv.URL
			srv.Close()

			So(prober.Probe(ctx, url), ShouldEqual, Offline)
		})

		Convey("A mirror slower than the timeout is offline", func() {
			release := make(chan struct{})
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-release:
				case <-r.Context().Done():
				}
			}))
			defer srv.Close()
			defer close(release)

			started := time.Now()
			So(prober.Probe(ctx, srv.URL), ShouldEqual, Offline)
			So(time.Since(started), ShouldBeLessThan, 5*time.Second)
		})

		Convey("A URL the HTTP layer rejects is offline", func() {
			So(prober.Probe(ctx, "://not a url"), ShouldEqual, Offline)
		})
	})
}
