/*
Package main is the tagsum cli tool: it fetches every tag of a Docker Hub
repository, merges the platform images that share a digest, and prints each
platform's images most relevant first.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/containerkit/tagsum"
	"github.com/containerkit/tagsum/hub"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
)

type Options struct {
	// Platform and status filters
	OptionsFilter OptionsFilter `group:"Filters"`
	// Fetch behavior
	OptionsFetch OptionsFetch `group:"Fetch"`
	// Output format
	OptionsOutput OptionsOutput `group:"Output"`

	Positional struct {
		Repository string `positional-arg-name:"repository" description:"Docker Hub repository, \"name\" or \"namespace/name\""`
	} `positional-args:"yes" required:"yes"`
}

type OptionsFilter struct {
	Architecture string `short:"a" long:"arch"        description:"Keep only this architecture (empty = all)" default:"amd64"`
	OS           string `short:"o" long:"os"          description:"Keep only this operating system (empty = all)"`
	ActiveOnly   bool   `short:"A" long:"active-only" description:"Drop tags not reported as active"`
}

type OptionsFetch struct {
	Timeout time.Duration `short:"t" long:"timeout" description:"Per-request timeout" default:"30s"`
	Verbose bool          `short:"v" long:"verbose" description:"Log fetch progress"`
}

type OptionsOutput struct {
	Limit   int  `short:"n" long:"limit"    description:"Max images per platform (<=0 = unlimited)" default:"0"`
	NoColor bool `short:"C" long:"no-color" description:"Disable colored platform headers"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default)
	parser.LongDescription = `tagsum — container image tag summarizer.
Fetches all tags of a Docker Hub repository, groups the platform images by
content digest, merges tags naming the same digest, and prints each
platform's images newest-and-broadest first with their dominant tag leading.`
	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opt.OptionsFetch.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if opt.OptionsOutput.NoColor {
		color.NoColor = true
	}

	client := hub.NewClient(opt.OptionsFetch.Timeout)
	tags, err := client.Tags(context.Background(), opt.Positional.Repository)
	if err != nil {
		log.Error("fetch failed", "err", err)
		os.Exit(2)
	}

	summary, err := tagsum.Summarize(hub.Records(tags), tagsum.Options{
		Architecture: opt.OptionsFilter.Architecture,
		OS:           opt.OptionsFilter.OS,
		ActiveOnly:   opt.OptionsFilter.ActiveOnly,
		Limit:        opt.OptionsOutput.Limit,
	})
	if err != nil {
		log.Error("grouping failed", "err", err)
		os.Exit(2)
	}

	if len(summary) == 0 {
		fmt.Fprintln(os.Stderr, "no images match the requested platform")
		os.Exit(0)
	}

	header := color.New(color.FgCyan, color.Bold)
	for _, group := range summary {
		header.Println(group.Platform.String()) //nolint:errcheck
		for _, row := range group.Rows {
			fmt.Printf("%s  %s\n", row.LastUpdated.UTC().Format(time.RFC3339), row.TagList())
		}
	}
}
