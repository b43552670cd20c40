package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/customer-search/internal/client"
	"github.com/aanand-mishra/customer-search/internal/config"
	"github.com/aanand-mishra/customer-search/internal/prompt"
	"github.com/aanand-mishra/customer-search/internal/render"
	"github.com/aanand-mishra/customer-search/internal/render/htmlview"
	"github.com/aanand-mishra/customer-search/internal/render/text"
	"github.com/aanand-mishra/customer-search/internal/types"
)

type searchOptions struct {
	firstName   string
	lastName    string
	dateOfBirth string
	set         map[string]string
	interactive bool
	baseURL     string
}

func searchCmd(configPath *string) *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search a running server and print the results",
		Example: `  customer-search search --last-name=smith
  customer-search search --set dateOfBirth=1990-05-15
  customer-search search -i`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if opts.baseURL != "" {
				cfg.Client.BaseURL = opts.baseURL
			}

			registry, err := loadRegistry(cfg)
			if err != nil {
				return fmt.Errorf("load field registry: %w", err)
			}

			var values map[string]string
			if opts.interactive {
				values, err = prompt.Ask(cmd.Context(), prompt.Survey(), registry.SearchFields())
				if err != nil {
					return err
				}
			} else {
				values, err = flagValues(registry.SearchFields(), opts)
				if err != nil {
					return err
				}
			}

			c := client.New(cfg.Client.BaseURL, cfg.Client.Timeout)
			customers, err := c.SearchCustomers(cmd.Context(), values)
			if err != nil {
				return err
			}

			table := render.NewTable(registry.ResultFields(), customers, time.Now())
			if err := text.WriteTable(cmd.OutOrStdout(), table); err != nil {
				return err
			}
			if !table.Empty {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), htmlview.Summary(len(customers)))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.firstName, "first-name", "", "Filter by first name (case-insensitive substring)")
	f.StringVar(&opts.lastName, "last-name", "", "Filter by last name (case-insensitive substring)")
	f.StringVar(&opts.dateOfBirth, "date-of-birth", "", "Filter by exact date of birth (YYYY-MM-DD)")
	f.StringToStringVar(&opts.set, "set", nil, "Set any search field by name, e.g. --set firstName=ann")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for every search field")
	f.StringVar(&opts.baseURL, "base-url", "", "Server base URL (overrides client.base_url)")

	cmd.MarkFlagsMutuallyExclusive("interactive", "set")

	return cmd
}

// flagValues maps the command line onto the search fields. Named flags
// win over --set entries for the same field.
func flagValues(descriptors []types.FieldDescriptor, opts searchOptions) (map[string]string, error) {
	known := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		known[d.Name] = true
	}

	values := make(map[string]string, len(descriptors))
	for name, v := range opts.set {
		if !known[name] {
			return nil, fmt.Errorf("unknown search field %q", name)
		}
		values[name] = strings.TrimSpace(v)
	}

	named := map[string]string{
		"firstName":   opts.firstName,
		"lastName":    opts.lastName,
		"dateOfBirth": opts.dateOfBirth,
	}
	for name, v := range named {
		if v != "" && known[name] {
			values[name] = strings.TrimSpace(v)
		}
	}
	return values, nil
}
