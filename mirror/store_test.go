package mirror

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

const wellFormed = `{
  "servers": [
    {
      "url": "https://a.example",
      "last_checked": "2023-10-26 12:10:01",
      "status": "online"
    },
    {
      "url": "https://b.example",
      "last_checked": "2023-10-26 12:10:02",
      "status": "offline"
    },
    {
      "url": "https://c.example",
      "status": "unknown"
    }
  ]
}
`

func TestStore(t *testing.T) {
	Convey("Given an empty filesystem", t, func() {
		fs := afero.NewMemMapFs()
		store := NewStore(fs, "/pool.json", []string{"https://a.example", "https://b.example"})

		Convey("When loading the pool", func() {
			pool, err := store.Load()

			Convey("Then it should be seeded with unknown servers", func() {
				So(err, ShouldBeNil)
				So(pool.URLs(), ShouldResemble, []string{"https://a.example", "https://b.example"})
				for _, server := range pool {
					So(server.Status, ShouldEqual, Unknown)
					So(server.Probed(), ShouldBeFalse)
				}
			})

			Convey("And the file should be created with the seed", func() {
				data, err := afero.ReadFile(fs, "/pool.json")
				So(err, ShouldBeNil)

				persisted, err := Decode(data)
				So(err, ShouldBeNil)
				So(persisted, ShouldResemble, pool)
			})
		})
	})

	Convey("Given a well-formed pool file", t, func() {
		fs := afero.NewMemMapFs()
		So(afero.WriteFile(fs, "/pool.json", []byte(wellFormed), 0o644), ShouldBeNil)
		store := NewStore(fs, "/pool.json", nil)

		Convey("Loading should keep order, status and timestamps", func() {
			pool, err := store.Load()
			So(err, ShouldBeNil)
			So(len(pool), ShouldEqual, 3)
			So(pool[0].Status, ShouldEqual, Online)
			So(pool[0].LastChecked.Equal(time.Date(2023, 10, 26, 12, 10, 1, 0, time.UTC)), ShouldBeTrue)
			So(pool[1].Status, ShouldEqual, Offline)
			So(pool[2].Probed(), ShouldBeFalse)
		})

		Convey("Saving what was loaded should reproduce the file", func() {
			pool, err := store.Load()
			So(err, ShouldBeNil)
			So(store.Save(pool), ShouldBeNil)

			data, err := afero.ReadFile(fs, "/pool.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, wellFormed)
		})
	})

	Convey("Given a compact file written by an older release", t, func() {
		fs := afero.NewMemMapFs()
		legacy := `{"servers":[{"url":"https://a.example","last_checked":"2023-10-26 12:10:01","status":"offline"},{"url":"https://b.example"}]}`
		So(afero.WriteFile(fs, "/pool.json", []byte(legacy), 0o644), ShouldBeNil)
		store := NewStore(fs, "/pool.json", nil)

		Convey("The endpoint list should survive a save and reload unchanged", func() {
			first, err := store.Load()
			So(err, ShouldBeNil)
			So(store.Save(first), ShouldBeNil)

			second, err := store.Load()
			So(err, ShouldBeNil)
			So(second, ShouldResemble, first)
			So(second[1].Status, ShouldEqual, Unknown)
		})
	})

	Convey("Given malformed pool files", t, func() {
		fs := afero.NewMemMapFs()
		store := NewStore(fs, "/pool.json", nil)

		cases := map[string]string{
			"invalid json":     `{"servers": [`,
			"missing servers":  `{"mirrors": []}`,
			"empty url":        `{"servers": [{"url": ""}]}`,
			"unknown status":   `{"servers": [{"url": "https://a.example", "status": "degraded"}]}`,
			"bad last_checked": `{"servers": [{"url": "https://a.example", "last_checked": "2023-10-26T12:10:01Z"}]}`,
		}

		for name, content := range cases {
			Convey("Loading should fail on "+name, func() {
				So(afero.WriteFile(fs, "/pool.json", []byte(content), 0o644), ShouldBeNil)
				_, err := store.Load()
				So(errors.Is(err, ErrMalformedPool), ShouldBeTrue)
			})
		}
	})

	Convey("Given a read-only filesystem", t, func() {
		store := NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/pool.json", DefaultMirrors)

		Convey("Seeding should surface the write error", func() {
			_, err := store.Load()
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrMalformedPool), ShouldBeFalse)
		})
	})
}
