package main

import (
	"context"
	"io"

	"github.com/kalyug-papa-bolo/vahan"
)

// Dependencies holds services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Config  vahan.Config
	Fetcher vahan.Fetcher
	Parser  vahan.Parser
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve  ServeCmd  `cmd:"" help:"Run the RC lookup API server"`
	Lookup LookupCmd `cmd:"" help:"Fetch and print records for one or more RC numbers"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Host  string `help:"Listen host (overrides config)"`
	Port  int    `help:"Listen port (overrides config)"`
	Debug bool   `help:"Enable debug logging"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	RCs         []string `arg:"" name:"rc" help:"RC numbers to look up"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
}
