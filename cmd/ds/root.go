package ds

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ion-oset/electorate-vanadium-core/api/client"
	"github.com/ion-oset/electorate-vanadium-core/cmd/util"
)

var (
	dataClient *client.Client

	// DatasetCommands represents the ds command group
	DatasetCommands = &cobra.Command{
		Use:               "ds",
		Short:             "Perform raw dataset operations",
		PersistentPreRunE: setupDataClient,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common connection flags to the ds command
	util.SetupClientFlags(DatasetCommands)

	// Set default dataset for raw operations
	DatasetCommands.PersistentFlags().String("dataset", client.RegistrationsDataset, util.WrapString("Name of the dataset to operate on"))

	// Add subcommands
	DatasetCommands.AddCommand(lookupCmd)
	DatasetCommands.AddCommand(insertCmd)
	DatasetCommands.AddCommand(updateCmd)
	DatasetCommands.AddCommand(upsertCmd)
	DatasetCommands.AddCommand(removeCmd)
	DatasetCommands.AddCommand(keysCmd)
	DatasetCommands.AddCommand(valuesCmd)
	DatasetCommands.AddCommand(perfCmd)
}

// setupDataClient initializes the data client
func setupDataClient(cmd *cobra.Command, _ []string) error {
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

	// Create the data client
	dataClient, err = client.NewClient(*config, c)

	return err
}

// dataset returns the configured dataset name
func dataset() string {
	return viper.GetString("dataset")
}
