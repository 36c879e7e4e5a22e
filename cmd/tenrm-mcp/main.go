package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/tenrm/internal/load"
	"github.com/claude/tenrm/internal/mcp"
	"github.com/claude/tenrm/internal/program"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	apiURL := flag.String("api", "", "tenrm server URL; when empty tables are computed in-process")
	catalogPath := flag.String("catalog", "", "program catalog YAML (built-in programs when empty)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("tenrm-mcp", Version)
		return
	}

	// stdout carries the MCP protocol, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	if *apiURL != "" {
		ds = mcp.NewHTTPClient(*apiURL)
		log.Info("using remote server", "url", *apiURL)
	} else {
		catalog, err := program.Open(*catalogPath)
		if err != nil {
			log.Error("failed to load program catalog", "path", *catalogPath, "error", err)
			os.Exit(1)
		}
		ds = mcp.NewLocal(load.NewCalculator(catalog, log))
	}

	if err := server.ServeStdio(mcp.New(ds, Version, log)); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
