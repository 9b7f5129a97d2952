package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/DS123-ally/websummary/chain"
	"github.com/DS123-ally/websummary/config"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *config.Config
	Runner *chain.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve     ServeCmd     `cmd:"" help:"Serve the browser UI"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize a single URL and print the result"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides ADDR)"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL    string `arg:"" help:"Web page URL to summarize"`
	Length string `short:"l" default:"medium" enum:"short,medium,detailed" help:"Summary length"`
	Chain  string `short:"c" default:"stuff" enum:"stuff,map_reduce,refine" help:"Summarization strategy"`
	Debug  bool   `short:"d" help:"Print prompt and timing details to stderr"`
}
