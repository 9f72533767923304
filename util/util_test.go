package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytbascii/ytbascii/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "mirror", "mirrors"), ShouldEqual, "1 mirror")
		So(Quantify(2, "mirror", "mirrors"), ShouldEqual, "2 mirrors")
		So(Quantify(0, "mirror", "mirrors"), ShouldEqual, "0 mirrors")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestTerminalWidth(t *testing.T) {
	Convey("TerminalWidth should never be zero", t, func() {
		So(TerminalWidth(80), ShouldBeGreaterThan, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a file and a directory", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/dir", 0o755), ShouldBeNil)
		So(fs.WriteFile("/tmp/file.json", []byte("{}"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/tmp/dir/nested.json", []byte("{}"), 0o644), ShouldBeNil)

		Convey("Delete should remove both", func() {
			So(Delete("/tmp/file.json"), ShouldBeNil)
			So(Delete("/tmp/dir"), ShouldBeNil)

			exists, _ := fs.Exists("/tmp/file.json")
			So(exists, ShouldBeFalse)
			exists, _ = fs.Exists("/tmp/dir")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete should fail on a missing path", func() {
			So(Delete("/tmp/missing"), ShouldNotBeNil)
		})
	})
}
