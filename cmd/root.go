package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "telecarezone",
		Short:         "TeleCareZone marketing site",
		Long:          "Serves the TeleCareZone landing page, expert directory, contact form and legal pages.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newVersionCmd())
	return root
}
