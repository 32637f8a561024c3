/*
Package main is the entry point for the toolbelt CLI.

toolbelt is a Swiss-army-knife utilities hub: a curated catalog of PDF, image,
developer, text and SEO tools with relevance-ranked search, recent searches,
and local text processors.

Usage:
  toolbelt [command]

Available Commands:
  search      Search the tool catalog
  popular     List the most popular tools
  recent      Show or clear recent searches
  tools       List catalog tools
  run         Run a text tool locally
  browse      Search interactively as you type
  serve       Run the MCP server (stdio transport)
  history     Summarize recorded search analytics
  config      Inspect or create the configuration file
  version     Show version information

Examples:
  toolbelt search compress pdf
  toolbelt run json-formatter --file data.json --opt mode=minify
  toolbelt browse
*/
package main

import (
	"fmt"
	"os"

	"github.com/khanglvm/toolbelt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
