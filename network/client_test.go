package network

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytbascii/ytbascii/constant"
)

func TestClients(t *testing.T) {
	Convey("Given a server echoing the User-Agent", t, func() {
		var seen string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		Convey("The probe client should send the application User-Agent", func() {
			client := NewProbeClient(time.Second)
			So(client.Timeout, ShouldEqual, time.Second)

			resp, err := client.Get(srv.URL)
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(seen, ShouldEqual, constant.UserAgent)
		})

		Convey("An explicit User-Agent should be preserved", func() {
			req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
			req.Header.Set("User-Agent", "custom")

			resp, err := Client.Do(req)
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(seen, ShouldEqual, "custom")
		})
	})
}
