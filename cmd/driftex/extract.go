package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jkoval/driftex"
	"github.com/jkoval/driftex/fs"
	driftexslog "github.com/jkoval/driftex/slog"
	"github.com/jkoval/driftex/visit"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	for _, s := range c.Sections {
		if _, ok := expectedShapes[s]; !ok {
			fmt.Fprintf(deps.Stderr, "error: unknown section %q\n", s)
			return driftex.Errorf(driftex.EINVALID, "unknown section %q", s)
		}
	}

	registry := driftex.SelectorRegistry(deps.Registry)
	if deps.Logger != nil {
		registry = driftexslog.NewLoggingRegistry(deps.Registry, deps.Logger)
	}

	extractor := &ProfileExtractor{
		Registry:  registry,
		Navigator: deps.Navigator,
		Healer:    deps.Healer,
		Threshold: c.Threshold,
		Sections:  c.Sections,
		Logger:    deps.Logger,
	}

	visitor := &visit.Visitor{
		Navigator:   deps.Navigator,
		Limiter:     visit.NewDomainLimiter(1.0),
		Concurrency: c.Concurrency,
	}

	progress := func(p visit.Progress) {
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", p.URL, p.Err)
			return
		}
		fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", p.Completed, p.Total, p.URL)
	}

	result, err := visitor.VisitAll(deps.Ctx, c.URLs, func(ctx context.Context, root driftex.Node, url string) (*driftex.Profile, error) {
		return extractor.ExtractProfile(ctx, root, url)
	}, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", driftex.ErrorMessage(err))
		return err
	}

	var exporter *fs.Exporter
	if c.Out != "" {
		exporter = fs.NewExporter(c.Out)
	}

	for _, profile := range result.Profiles {
		if err := deps.Profiles.CreateProfile(deps.Ctx, profile); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", driftex.ErrorMessage(err))
			return err
		}

		if exporter != nil {
			if err := exporter.ExportProfile(deps.Ctx, profile); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", driftex.ErrorMessage(err))
				return err
			}
		}

		if c.JSON {
			enc := json.NewEncoder(deps.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(profile); err != nil {
				return err
			}
			continue
		}
		printSummary(deps, profile)
	}

	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "Saved %d profiles, %d failed\n", len(result.Profiles), result.Failed)
	} else {
		fmt.Fprintf(deps.Stdout, "Saved %d profiles\n", len(result.Profiles))
	}
	return nil
}

func printSummary(deps *Dependencies, profile *driftex.Profile) {
	name := profile.URL
	if profile.TopCard != nil {
		name = profile.TopCard.Name
	}
	fmt.Fprintf(deps.Stdout, "%s  %s\n", profile.ID, name)
	fmt.Fprintf(deps.Stdout, "  experiences=%d educations=%d accomplishments=%d patents=%d contacts=%d interests=%d\n",
		len(profile.Experiences), len(profile.Educations), len(profile.Accomplishments),
		len(profile.Patents), len(profile.Contacts), len(profile.Interests))

	for _, d := range profile.Diagnostics {
		if d.ItemsFound == 0 {
			fmt.Fprintf(deps.Stderr, "  warn: section %q found nothing\n", d.Section)
		}
	}
}
