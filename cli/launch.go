// Package cli implements materials command line interface.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaptide/materials/config"
	"github.com/yaptide/materials/log"
)

// Launch ...
func Launch() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("%s", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	app := &application{}
	var logLevel, libraryPath string

	rootCmd := &cobra.Command{
		Use:           "materials",
		Short:         "compile materials and optical property tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.SetupConfig()
			if err != nil {
				return err
			}
			if logLevel != "" {
				level, err := log.ParseLevel(strings.ToLower(logLevel))
				if err != nil {
					return err
				}
				log.SetLoggerLevel(level)
			}
			if libraryPath != "" {
				conf.LibraryPath = libraryPath
			}
			initialized, err := newApplication(conf)
			if err != nil {
				return err
			}
			*app = *initialized
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "logging level, overrides YAPTIDE_MATERIALS_LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&libraryPath, "library", "", "YAML file with additional materials, overrides YAPTIDE_MATERIALS_LIBRARY")

	rootCmd.AddCommand(
		generateListCmd(app),
		generateShowCmd(app),
		generateTableCmd(app),
		generateExportCmd(app),
		generateVerifyCmd(app),
		generateDatasetsCmd(app),
	)
	return rootCmd
}
