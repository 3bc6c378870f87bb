package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ion-oset/electorate-vanadium-core/cmd/ds"
	"github.com/ion-oset/electorate-vanadium-core/cmd/reg"
	"github.com/ion-oset/electorate-vanadium-core/cmd/serve"
	"github.com/ion-oset/electorate-vanadium-core/cmd/util"
)

const (
	Version = "0.3.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "vanadium",
		Short: "in-memory data store for election-system prototyping",
		Long: fmt.Sprintf(`vanadium (v%s)

An in-memory key-value data service written in Go. It serves named
datasets over HTTP and carries the voter registration workflow used
by the electorate prototypes.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of vanadium",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vanadium v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(serve.ServeCmd)
	RootCmd.AddCommand(ds.DatasetCommands)
	RootCmd.AddCommand(reg.RegistrationCommands)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "codec"
	RootCmd.PersistentFlags().String(key, "json", util.WrapString("codec to use (json, gob, binary)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
