package reg

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ion-oset/electorate-vanadium-core/api/client"
	"github.com/ion-oset/electorate-vanadium-core/cmd/util"
)

var (
	regClient *client.RegistrationClient

	// RegistrationCommands represents the reg command group
	RegistrationCommands = &cobra.Command{
		Use:               "reg",
		Short:             "Perform voter registration operations",
		PersistentPreRunE: setupRegistrationClient,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common connection flags to the reg command
	util.SetupClientFlags(RegistrationCommands)

	// Set the dataset the registrations are stored in
	RegistrationCommands.PersistentFlags().String("dataset", client.RegistrationsDataset, util.WrapString("Name of the dataset holding the registrations"))

	// Add subcommands
	RegistrationCommands.AddCommand(submitCmd)
	RegistrationCommands.AddCommand(statusCmd)
	RegistrationCommands.AddCommand(updateCmd)
	RegistrationCommands.AddCommand(cancelCmd)
	RegistrationCommands.AddCommand(listCmd)
}

// setupRegistrationClient initializes the registration client
func setupRegistrationClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Get client configuration components
	config := util.GetClientConfig()

	// Get codec
	c, err := util.GetCodec()
	if err != nil {
		return err
	}

	// Create the data client and wrap it in the registration workflow
	dataClient, err := client.NewClient(*config, c)
	if err != nil {
		return err
	}
	regClient = client.NewRegistrationClient(dataClient, viper.GetString("dataset"))

	return nil
}
