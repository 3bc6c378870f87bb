package serve

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ion-oset/electorate-vanadium-core/api/codec"
	"github.com/ion-oset/electorate-vanadium-core/api/common"
	"github.com/ion-oset/electorate-vanadium-core/api/server"
	cmdUtil "github.com/ion-oset/electorate-vanadium-core/cmd/util"
)

var (
	serveCmdConfig = &common.ServerConfig{}
	ServeCmd       = &cobra.Command{
		Use:     "serve",
		Short:   "Start the vanadium server",
		Long:    `Start the vanadium server with the specified configuration. The configuration can be set via command line flags or environment variables. The format of the environment variables is VANADIUM_<flag> (e.g. VANADIUM_TIMEOUT=15)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(initConfig)

	// add flags
	key := "datasets"
	ServeCmd.PersistentFlags().String(key, "registrations", cmdUtil.WrapString("Comma-separated list of datasets to serve. Each dataset is an independent key-value namespace"))

	key = "id-source"
	ServeCmd.PersistentFlags().String(key, "timestamp", cmdUtil.WrapString("Generator used for keys of values stored without one (timestamp, uuid)"))

	key = "timeout"
	ServeCmd.PersistentFlags().Int64(key, 10, cmdUtil.WrapString("HTTP read/write timeout in seconds"))

	key = "endpoint"
	ServeCmd.PersistentFlags().String(key, "0.0.0.0:8080", cmdUtil.WrapString("The address on which the API will listen (e.g. localhost:8080)"))

	key = "log-level"
	ServeCmd.PersistentFlags().String(key, "info", cmdUtil.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// processConfig reads the configuration from the command line flags and environment variables and converts them to the server configuration
func processConfig(cmd *cobra.Command, _ []string) error {
	// bind the flags to viper
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// parse datasets
	datasetsConfig := viper.GetString("datasets")
	serveCmdConfig.Datasets = []string{}
	for _, name := range strings.Split(datasetsConfig, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("invalid datasets %q (dataset names must not be empty)", datasetsConfig)
		}
		serveCmdConfig.Datasets = append(serveCmdConfig.Datasets, name)
	}

	// read the configuration from the command line flags and environment variables
	serveCmdConfig.IDSource = viper.GetString("id-source")
	serveCmdConfig.TimeoutSecond = viper.GetInt64("timeout")
	serveCmdConfig.Endpoint = viper.GetString("endpoint")
	serveCmdConfig.LogLevel = viper.GetString("log-level")

	return nil
}

// run starts the vanadium server
func run(_ *cobra.Command, _ []string) error {
	// parse the codec
	c, err := codec.New(viper.GetString("codec"))
	if err != nil {
		return err
	}

	serv, err := server.NewDataServer(*serveCmdConfig, c)
	if err != nil {
		return err
	}

	return serv.Serve()
}

// initConfig reads in serveCmdConfig file and ENV variables if set.
func initConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("vanadium")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}
