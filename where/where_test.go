package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ytbascii/ytbascii/constant"
	"github.com/ytbascii/ytbascii/filesystem"
	"github.com/ytbascii/ytbascii/key"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Mirrors()", func() {
			Convey("Defaults to the config directory", func() {
				viper.Set(key.MirrorsPath, "")
				So(Mirrors(), ShouldEqual, filepath.Join(Config(), constant.DefaultMirrorsFile))
			})

			Convey("Honors mirrors.path", func() {
				viper.Set(key.MirrorsPath, "/tmp/pool.json")
				defer viper.Set(key.MirrorsPath, "")
				So(Mirrors(), ShouldEqual, "/tmp/pool.json")
			})
		})
	})
}
