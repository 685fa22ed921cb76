package identify

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/snakesafe/snakeid-go/internal/conf"
	"github.com/snakesafe/snakeid-go/internal/describe"
	"github.com/snakesafe/snakeid-go/internal/snakenet"
	"github.com/snakesafe/snakeid-go/internal/species"
	"github.com/spf13/cobra"
)

// Command creates the identify command for one-shot identification from the
// command line.
func Command(settings *conf.Settings) *cobra.Command {
	var description string
	var location string

	cmd := &cobra.Command{
		Use:   "identify [image file]",
		Short: "Identify a snake from an image or description",
		Long: `Identify a snake species from an image file, or from a free-text
description with --description and --location. Prints the matching catalog
record as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if description != "" {
				return identifyDescription(description, location)
			}
			if len(args) == 0 {
				return fmt.Errorf("an image file or --description is required")
			}
			return identifyImage(cmd.Context(), settings, args[0])
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Free-text description of the snake")
	cmd.Flags().StringVar(&location, "location", "", "Location label accompanying the description")

	return cmd
}

func identifyImage(ctx context.Context, settings *conf.Settings, path string) error {
	imageData, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read image %s: %w", path, err)
	}

	classifier, err := snakenet.GetClassifier(settings)
	if err != nil {
		return fmt.Errorf("failed to initialize classifier: %w", err)
	}

	matcher := snakenet.NewMatcher(classifier, settings)
	result, err := matcher.Identify(ctx, imageData, species.Catalog())
	if err != nil {
		return err
	}

	if result.Record == nil {
		fmt.Println("no snake detected")
		return nil
	}
	return printJSON(result)
}

func identifyDescription(description, location string) error {
	rec, err := describe.Match(description, location)
	if err != nil {
		return err
	}
	return printJSON(rec)
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
