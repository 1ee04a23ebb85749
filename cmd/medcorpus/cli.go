package main

import (
	"context"
	"io"
)

// Catalog slice sizes for the quick-check modes.
const (
	testLimit   = 5
	sampleLimit = 50
)

// Dependencies holds the execution context for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Delay        float64 `default:"2" help:"Minimum seconds between request starts"`
	Output       string  `default:"crawled_data" help:"Output directory"`
	Catalog      string  `default:"webmd_links.json" help:"Catalog file path"`
	IncludeDrugs bool    `help:"Include drug entries alongside conditions"`
	DB           string  `env:"MEDCORPUS_DB" help:"SQLite crawl history path (enables per-entry records)"`
	SkipExisting bool    `help:"Skip entries already crawled successfully (requires --db)"`
	Verbose      bool    `short:"v" help:"Log every fetch"`

	Test   TestCmd   `cmd:"" help:"Crawl the first 5 entries"`
	Sample SampleCmd `cmd:"" help:"Crawl the first 50 entries"`
	All    AllCmd    `cmd:"" help:"Crawl the full catalog"`
	Resume ResumeCmd `cmd:"" help:"Resume crawling from a start index"`
}

// TestCmd is the "test" subcommand.
type TestCmd struct{}

// Run executes the test command.
func (c *TestCmd) Run(cli *CLI, deps *Dependencies) error {
	return runCrawl(cli, deps, 0, testLimit)
}

// SampleCmd is the "sample" subcommand.
type SampleCmd struct{}

// Run executes the sample command.
func (c *SampleCmd) Run(cli *CLI, deps *Dependencies) error {
	return runCrawl(cli, deps, 0, sampleLimit)
}

// AllCmd is the "all" subcommand.
type AllCmd struct{}

// Run executes the all command.
func (c *AllCmd) Run(cli *CLI, deps *Dependencies) error {
	return runCrawl(cli, deps, 0, 0)
}

// ResumeCmd is the "resume" subcommand.
type ResumeCmd struct {
	Start int `arg:"" help:"Index into the filtered catalog to resume from"`
	Limit int `help:"Number of entries to process (0 = to catalog end)"`
}

// Run executes the resume command.
func (c *ResumeCmd) Run(cli *CLI, deps *Dependencies) error {
	return runCrawl(cli, deps, c.Start, c.Limit)
}
