// Package main is the entry point of ytbascii.
package main

import (
	"github.com/samber/lo"
	"github.com/ytbascii/ytbascii/cmd"
	"github.com/ytbascii/ytbascii/config"
	"github.com/ytbascii/ytbascii/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
