package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPersonCommand(opts *options) *cobra.Command {
	personCmd := &cobra.Command{
		Use:   "person",
		Short: "Manage the journey roster",
	}
	personCmd.AddCommand(newPersonAddCommand(opts), newPersonListCommand(opts))
	return personCmd
}

func newPersonAddCommand(opts *options) *cobra.Command {
	var phone, email string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(opts)
			if err != nil {
				return err
			}
			p, err := e.svc.AddPerson(args[0], phone, email)
			if err != nil {
				return err
			}
			if _, err := e.record("person add", p.Name, "person: add "+p.Name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&email, "email", "", "email address")

	return cmd
}

func newPersonListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List participants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(opts)
			if err != nil {
				return err
			}
			people, err := e.svc.People()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range people {
				marker := " "
				if p.ID == e.cfg.CurrentUser {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-20s %s", marker, p.Name, p.ID)
				if p.Phone != "" {
					fmt.Fprintf(out, "  %s", p.Phone)
				}
				if p.Email != "" {
					fmt.Fprintf(out, "  %s", p.Email)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
