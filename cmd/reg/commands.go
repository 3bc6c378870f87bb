package reg

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ion-oset/electorate-vanadium-core/lib/model"
)

var (
	submitCmd = &cobra.Command{
		Use:   "submit [registration-json]",
		Short: "Submits a new registration and prints its tracking identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRegistration(args[0])
			if err != nil {
				return err
			}
			trackingID, err := regClient.Submit(r)
			if err != nil {
				return err
			}
			fmt.Printf("tracking_id=%s\n", trackingID)
			return nil
		},
	}
	statusCmd = &cobra.Command{
		Use:   "status [tracking-id]",
		Short: "Prints the registration stored under a tracking identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trackingID := args[0]
			r, found, err := regClient.Status(trackingID)
			if err != nil {
				return err
			}
			if !found {
				fmt.Printf("tracking_id=%s, found=false\n", trackingID)
				return nil
			}
			return printRegistration(r)
		},
	}
	updateCmd = &cobra.Command{
		Use:   "update [tracking-id] [registration-json]",
		Short: "Replaces the registration stored under a tracking identifier",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			trackingID := args[0]
			r, err := parseRegistration(args[1])
			if err != nil {
				return err
			}
			updated, found, err := regClient.Update(trackingID, r)
			if err != nil {
				return err
			}
			if !found {
				fmt.Printf("tracking_id=%s, found=false\n", trackingID)
				return nil
			}
			return printRegistration(updated)
		},
	}
	cancelCmd = &cobra.Command{
		Use:   "cancel [tracking-id]",
		Short: "Withdraws the registration stored under a tracking identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trackingID := args[0]
			r, found, err := regClient.Cancel(trackingID)
			if err != nil {
				return err
			}
			if !found {
				fmt.Printf("tracking_id=%s, found=false\n", trackingID)
				return nil
			}
			fmt.Printf("tracking_id=%s, cancelled=true\n", trackingID)
			return printRegistration(r)
		},
	}
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Lists all stored registrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := regClient.List()
			if err != nil {
				return err
			}
			fmt.Printf("count=%d\n", len(all))
			for _, r := range all {
				if err := printRegistration(r); err != nil {
					return err
				}
			}
			return nil
		},
	}
)

// parseRegistration decodes the json document passed on the command line
func parseRegistration(arg string) (*model.Registration, error) {
	var r model.Registration
	if err := json.Unmarshal([]byte(arg), &r); err != nil {
		return nil, fmt.Errorf("invalid registration document: %w", err)
	}
	return &r, nil
}

// printRegistration pretty-prints one registration
func printRegistration(r *model.Registration) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
