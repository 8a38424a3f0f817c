package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawler     string        `name:"crawler" required:"" enum:"klexikon,miniklexikon" help:"Which crawler to run (klexikon or miniklexikon)."`
	MaxPages    int           `name:"max_pages" default:"0" help:"Limit the number of category pages to crawl (0 = no limit)."`
	Output      string        `name:"output" help:"Output JSON filename (default: <crawler>_dataset.json)."`
	Concurrency int           `short:"c" default:"2" help:"Concurrent article fetch limit."`
	Rate        float64       `default:"2" help:"Maximum requests per second per domain."`
	Timeout     time.Duration `default:"10s" help:"Per-request timeout."`
	Quiet       bool          `short:"q" help:"Disable the progress bar."`
	Verbose     bool          `short:"v" help:"Enable debug logging."`
}
