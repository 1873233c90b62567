package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/skillgap"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List roles with built-in skill requirements",
	RunE:  runRoles,
}

var rolesOutFlag string

func init() {
	rolesCmd.Flags().StringVarP(&rolesOutFlag, "out", "o", "", "Path to output JSON file (default: stdout)")
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(_ *cobra.Command, _ []string) error {
	return writeOutput(rolesOutFlag, map[string][]string{"roles": skillgap.KnownRoles()})
}
