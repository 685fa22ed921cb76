package cmd

import (
	"fmt"

	"github.com/snakesafe/snakeid-go/cmd/identify"
	"github.com/snakesafe/snakeid-go/cmd/regional"
	"github.com/snakesafe/snakeid-go/cmd/serve"
	"github.com/snakesafe/snakeid-go/internal/conf"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "snakeid",
		Short: "SnakeID-Go CLI",
	}

	// Set up the global flags for the root command.
	if err := setupFlags(rootCmd, settings); err != nil {
		fmt.Printf("error setting up flags: %v\n", err)
	}

	subcommands := []*cobra.Command{
		serve.Command(settings),
		identify.Command(settings),
		regional.Command(settings),
	}

	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := cmd.Flags().Parse(args); err != nil {
			return err
		}
		return conf.ValidateSettings(settings)
	}

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) error {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&settings.SnakeNet.ModelPath, "model", viper.GetString("snakenet.modelpath"), "Path to the TFLite model file")
	rootCmd.PersistentFlags().StringVar(&settings.SnakeNet.LabelPath, "labels", viper.GetString("snakenet.labelpath"), "Path to the model label file")
	rootCmd.PersistentFlags().Float64VarP(&settings.SnakeNet.Sensitivity, "sensitivity", "s", viper.GetFloat64("snakenet.sensitivity"), "Sigmoid sensitivity value between 0.0 and 1.5")
	rootCmd.PersistentFlags().IntVar(&settings.SnakeNet.TopResults, "topresults", viper.GetInt("snakenet.topresults"), "Number of ranked labels considered for matching")
	rootCmd.PersistentFlags().StringVar(&settings.SnakeNet.OnClassifierError, "onclassifiererror", viper.GetString("snakenet.onclassifiererror"), "Classifier failure policy: fallback or propagate")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return fmt.Errorf("error binding flags: %v", err)
	}

	return nil
}
