package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/customer-search/internal/config"
	"github.com/aanand-mishra/customer-search/internal/fields"
	"github.com/aanand-mishra/customer-search/internal/types"
)

func fieldsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "Validate the field registry and list it in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			registry, err := loadRegistry(cfg)
			if err != nil {
				return fmt.Errorf("load field registry: %w", err)
			}

			out := cmd.OutOrStdout()
			if err := writeFields(out, "Search fields", registry.SearchFields()); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return writeFields(out, "Result fields", registry.ResultFields())
		},
	}
}

func writeFields(w io.Writer, title string, list []types.FieldDescriptor) error {
	fmt.Fprintf(w, "%s:\n", title)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tNAME\tLABEL\tTYPE\tREQUIRED")
	for _, f := range fields.Sorted(list) {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%t\n", f.Order, f.Name, f.Label, f.Kind, f.Required)
	}
	return tw.Flush()
}
