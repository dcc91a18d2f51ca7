package main

import (
	"fmt"
	"sort"

	"github.com/jkoval/driftex"
)

// Run executes the selectors list command.
func (c *SelectorsListCmd) Run(deps *Dependencies) error {
	active := deps.Registry.ActiveVersion()

	ids := deps.Registry.Versions()
	sort.Strings(ids)
	for _, id := range ids {
		marker := " "
		if id == active.Version {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s\n", marker, id)
	}

	names := make([]string, 0, len(active.Sections))
	for name := range active.Sections {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(deps.Stdout, "\nActive version %s (updated %s):\n", active.Version, active.UpdatedAt.Format("2006-01-02"))
	for _, name := range names {
		sels := active.Sections[name]
		fmt.Fprintf(deps.Stdout, "  %-16s %d item selectors, %d container selectors\n",
			name, len(sels.ItemSelectors), len(sels.ContainerSelectors))
	}

	return nil
}

// Run executes the selectors export command.
func (c *SelectorsExportCmd) Run(deps *Dependencies) error {
	if err := deps.Registry.Save(c.Path); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", driftex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported version %q to %s\n", deps.Registry.ActiveVersion().Version, c.Path)
	return nil
}

// Run executes the selectors import command.
func (c *SelectorsImportCmd) Run(deps *Dependencies) error {
	if err := deps.Registry.Load(c.Path); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", driftex.ErrorMessage(err))
		return err
	}

	active := deps.Registry.ActiveVersion()
	fmt.Fprintf(deps.Stdout, "Imported %s; active version is now %q\n", c.Path, active.Version)

	if c.Out != "" {
		if err := deps.Registry.Save(c.Out); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", driftex.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Out)
	}
	return nil
}

// Run executes the selectors activate command.
func (c *SelectorsActivateCmd) Run(deps *Dependencies) error {
	if !deps.Registry.SetActiveVersion(c.Version) {
		fmt.Fprintf(deps.Stderr, "error: version %q not registered. Use 'driftex selectors list' to see registered versions.\n", c.Version)
		return driftex.Errorf(driftex.ENOTFOUND, "selector version %q not registered", c.Version)
	}

	fmt.Fprintf(deps.Stdout, "Activated version %q\n", c.Version)

	if c.Out != "" {
		if err := deps.Registry.Save(c.Out); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", driftex.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Out)
	}
	return nil
}
