package cmd

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/ytbascii/ytbascii/mirror"
)

// countingProber answers every probe with the current status.
type countingProber struct {
	status atomic.Int32
	calls  atomic.Int32
}

func (p *countingProber) Probe(context.Context, string) mirror.Status {
	p.calls.Add(1)
	return mirror.Status(p.status.Load())
}

func openFixture(fs afero.Fs, prober mirror.Prober) *mirror.Manager {
	manager, err := mirror.Open(&mirror.Options{
		Path:   "/ytbascii/mirrors.json",
		Fs:     fs,
		Prober: prober,
		Rand:   rand.New(rand.NewSource(7)),
		Seed:   []string{"https://a.example", "https://b.example"},
	})
	So(err, ShouldBeNil)
	return manager
}

func TestPickMirror(t *testing.T) {
	Convey("Given a pool that was probed just now with every mirror offline", t, func() {
		fs := afero.NewMemMapFs()
		prober := &countingProber{}
		prober.status.Store(int32(mirror.Offline))

		manager := openFixture(fs, prober)
		So(manager.ForceRefresh(context.Background(), time.Now()), ShouldBeNil)
		So(prober.calls.Load(), ShouldEqual, 2)

		Convey("When the mirrors come back", func() {
			prober.status.Store(int32(mirror.Online))

			Convey("pickMirror should force one refresh and succeed", func() {
				server, err := pickMirror(context.Background(), manager)
				So(err, ShouldBeNil)
				So(server.Status, ShouldEqual, mirror.Online)
				So(prober.calls.Load(), ShouldEqual, 4)
			})
		})

		Convey("When the mirrors stay down", func() {
			Convey("pickMirror should fail with ErrNoHealthyServer after a single retry", func() {
				_, err := pickMirror(context.Background(), manager)
				So(errors.Is(err, mirror.ErrNoHealthyServer), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, manager.Path())
				So(prober.calls.Load(), ShouldEqual, 4)
			})
		})
	})

	Convey("Given a pool that has never been probed", t, func() {
		fs := afero.NewMemMapFs()
		prober := &countingProber{}
		prober.status.Store(int32(mirror.Offline))
		manager := openFixture(fs, prober)

		Convey("pickMirror should not probe twice when the first refresh finds nothing", func() {
			_, err := pickMirror(context.Background(), manager)
			So(errors.Is(err, mirror.ErrNoHealthyServer), ShouldBeTrue)
			So(prober.calls.Load(), ShouldEqual, 2)
		})
	})
}

func TestParseValue(t *testing.T) {
	Convey("parseValue", t, func() {
		Convey("Should parse integers", func() {
			v, err := parseValue("mirrors.workers", "16")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 16)

			_, err = parseValue("mirrors.workers", "many")
			So(err, ShouldNotBeNil)
		})

		Convey("Should parse booleans", func() {
			v, err := parseValue("logs.write", "true")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
		})

		Convey("Should validate durations", func() {
			v, err := parseValue("mirrors.staleness", "30m")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "30m")

			_, err = parseValue("mirrors.staleness", "soon")
			So(err, ShouldNotBeNil)

			_, err = parseValue("mirrors.staleness", "0s")
			So(err, ShouldNotBeNil)

			_, err = parseValue("mirrors.probe_timeout", "-5s")
			So(err, ShouldNotBeNil)
		})

		Convey("Should keep plain strings", func() {
			v, err := parseValue("api.region", "DE")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "DE")
		})
	})
}

func TestClosest(t *testing.T) {
	Convey("closest should suggest the nearest candidate", t, func() {
		So(closest("https://a.exampel", []string{"https://a.example", "https://zzz.other"}), ShouldEqual, "https://a.example")
	})
}

func TestEnvNames(t *testing.T) {
	Convey("envNames should list the prefixed variables and the config path override", t, func() {
		names := envNames()
		So(names, ShouldContain, "YTBASCII_MIRRORS_WORKERS")
		So(names, ShouldContain, "YTBASCII_CONFIG_PATH")
	})
}

func TestEncodeYAML(t *testing.T) {
	Convey("encodeYAML should omit last_checked for unprobed mirrors", t, func() {
		checked := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		out, err := encodeYAML(mirror.Pool{
			{URL: "https://a.example", LastChecked: checked, Status: mirror.Online},
			{URL: "https://b.example", Status: mirror.Unknown},
		})
		So(err, ShouldBeNil)
		So(string(out), ShouldContainSubstring, "url: https://a.example")
		So(string(out), ShouldContainSubstring, `last_checked: "2024-05-01 12:00:00"`)
		So(strings.Count(string(out), "last_checked"), ShouldEqual, 1)
		So(string(out), ShouldContainSubstring, "status: unknown")
	})
}

func TestKnownMirrorURLs(t *testing.T) {
	Convey("Given no pool file", t, func() {
		fs := afero.NewMemMapFs()
		path := "/ytbascii/mirrors.json"

		Convey("knownMirrorURLs should return nothing and leave the disk untouched", func() {
			So(knownMirrorURLs(fs, path), ShouldBeEmpty)

			exists, err := afero.Exists(fs, path)
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("When the pool was saved", func() {
			So(mirror.NewStore(fs, path, nil).Save(mirror.NewPool([]string{"https://a.example"})), ShouldBeNil)

			Convey("knownMirrorURLs should list its mirrors", func() {
				So(knownMirrorURLs(fs, path), ShouldResemble, []string{"https://a.example"})
			})
		})

		Convey("When the pool file is malformed", func() {
			So(afero.WriteFile(fs, path, []byte("{"), 0o644), ShouldBeNil)

			Convey("knownMirrorURLs should return nothing without reseeding", func() {
				So(knownMirrorURLs(fs, path), ShouldBeEmpty)
				data, err := afero.ReadFile(fs, path)
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, "{")
			})
		})
	})
}
