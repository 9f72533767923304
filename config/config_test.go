package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ytbascii/ytbascii/filesystem"
	"github.com/ytbascii/ytbascii/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
		})

		Convey("Should register every defined key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("Mirror durations should parse", func() {
			_ = Setup()
			So(viper.GetDuration(key.MirrorsStaleness), ShouldEqual, time.Hour)
			So(viper.GetDuration(key.MirrorsProbeTimeout), ShouldEqual, 5*time.Second)
			So(viper.GetInt(key.MirrorsWorkers), ShouldEqual, 8)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("mirrors.probe_timeout")
			So(result, ShouldEqual, "mirrors_probe_timeout")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.MirrorsWorkers]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "YTBASCII_MIRRORS_WORKERS")
		})

		Convey("TypeName should reflect the default value", func() {
			So(field.TypeName(), ShouldEqual, "int")
			staleness := Default[key.MirrorsStaleness]
			So(staleness.TypeName(), ShouldEqual, "duration")
		})
	})
}
