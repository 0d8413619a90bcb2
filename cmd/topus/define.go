package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topus-dev/topus/pkg/customelement"
)

func defineCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "define tag-name",
		Short: "Print a custom element registration script",
		Long: `Print the script element that registers a custom element class
for a dashed tag name. "my-custom" registers class MyCustom.

Examples:
  topus define my-custom
  topus define pop-up-info --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw {
				snippet, err := customelement.Snippet(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), snippet)
				return nil
			}

			el, err := customelement.Define(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), el.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the script body without the script element")

	return cmd
}
