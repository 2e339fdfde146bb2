package main

import (
	"io"

	"github.com/urfave/cli"
)

const (
	ProdFName        = "prod"
	AsciiFName       = "ascii"
	ShortFName       = "short"
	JsonFName        = "json"
	CountFName       = "count"
	HandsFName       = "hands"
	WorkersFName     = "workers"
	PortFName        = "port"
	MetricsPortFName = "metrics_port"
	HandAFName       = "a"
	HandBFName       = "b"
)

var globalFlags = []cli.Flag{
	cli.BoolFlag{Name: ProdFName, Usage: "production logging"},
	cli.BoolFlag{Name: AsciiFName, Usage: "print cards as ascii, e.g. Aa"},
	cli.BoolFlag{Name: ShortFName, Usage: "print cards as single glyphs"},
	cli.BoolFlag{Name: JsonFName, Usage: "print json"},
}

type config struct {
	prod  bool
	ascii bool
	short bool
	json  bool
	out   io.Writer

	count       int
	hands       int
	workers     int
	port        int
	metricsPort int
	handA       string
	handB       string
}

func configFrom(c *cli.Context) config {
	return config{
		prod:        c.GlobalBool(ProdFName),
		ascii:       c.GlobalBool(AsciiFName),
		short:       c.GlobalBool(ShortFName),
		json:        c.GlobalBool(JsonFName),
		out:         c.App.Writer,
		count:       c.Int(CountFName),
		hands:       c.Int(HandsFName),
		workers:     c.Int(WorkersFName),
		port:        c.Int(PortFName),
		metricsPort: c.Int(MetricsPortFName),
		handA:       c.String(HandAFName),
		handB:       c.String(HandBFName),
	}
}
