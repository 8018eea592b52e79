// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"confsite/internal/routes"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printRoutes(cmd, routes.Default(cfg.Routes.Extended))
	},
}

func printRoutes(cmd *cobra.Command, t *routes.Table) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATH\tLABEL")
	for _, r := range t.Routes() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Path, r.Label)
	}
	return w.Flush()
}
