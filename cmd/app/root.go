package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jadiha/little-prince/internal/config"
	"github.com/jadiha/little-prince/internal/util"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Tend your goals and watch your sky fill with stars",
		Long:          "littleprince is a small habit tracker. Each goal is a planet, each day you show up releases a star, and a rose blooms or wilts with how you have tended things this week.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			initConfig(cfgFile)
			util.SetVerbose(viper.GetBool("verbose"))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default .littleprince.toml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.String("data-dir", "", "directory holding the database")
	flags.String("db", "", "database file name or absolute path")
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("data_dir", flags.Lookup("data-dir"))
	_ = viper.BindPFlag("db_file", flags.Lookup("db"))

	root.AddCommand(
		newTUICmd(),
		newGoalCmd(),
		newLogCmd(),
		newStatusCmd(),
		newVisitCmd(),
		newReflectCmd(),
		newPlanetsCmd(),
		newExportCmd(),
		newImportCmd(),
		newReportCmd(),
		newServeCmd(),
		newConfigCmd(),
		newValidateCmd(),
	)
	return root
}

func initConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(config.ConfigFileName)
		viper.SetConfigType(config.ConfigFileType)
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.BindEnv(viper.GetViper())

	// It's fine if no config file is found; we use defaults.
	if err := viper.ReadInConfig(); err == nil {
		util.Debugf("config: using %s", viper.ConfigFileUsed())
	}
}

// defaultConfigPath is where "config init" writes when no path is given.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return config.ConfigFileName + "." + config.ConfigFileType
	}
	return filepath.Join(home, config.ConfigFileName+"."+config.ConfigFileType)
}
