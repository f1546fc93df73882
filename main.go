// Package main is the entry point for nasaimg.
package main

import (
	"github.com/nasaimg/nasaimg/cmd"
	"github.com/nasaimg/nasaimg/config"
	"github.com/nasaimg/nasaimg/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
