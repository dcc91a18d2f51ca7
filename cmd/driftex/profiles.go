package main

import (
	"encoding/json"
	"fmt"

	"github.com/jkoval/driftex"
)

// Run executes the profiles list command.
func (c *ProfilesListCmd) Run(deps *Dependencies) error {
	filter := driftex.ProfileFilter{}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	profiles, err := deps.Profiles.FindProfiles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", driftex.ErrorMessage(err))
		return err
	}

	if len(profiles) == 0 {
		fmt.Fprintln(deps.Stdout, "No profiles found. Use 'driftex extract' to create one.")
		return nil
	}

	for _, p := range profiles {
		name := ""
		if p.TopCard != nil {
			name = p.TopCard.Name
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", p.ID, p.FetchedAt.Format("2006-01-02 15:04"), p.URL, name)
	}

	return nil
}

// Run executes the profiles show command.
func (c *ProfilesShowCmd) Run(deps *Dependencies) error {
	profile, err := deps.Profiles.FindProfileByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", driftex.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(profile)
}

// Run executes the profiles delete command.
func (c *ProfilesDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return driftex.Errorf(driftex.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Profiles.DeleteProfile(deps.Ctx, c.ID); err != nil {
		if driftex.ErrorCode(err) == driftex.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: profile %q not found. Use 'driftex profiles list' to see stored profiles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", driftex.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted profile %q\n", c.ID)
	return nil
}
