package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/generator"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/spf13/cobra"
)

// Global variables for dependencies
var (
	appLogger       *slog.Logger
	generatorLogger *slog.Logger
	kruskal         *generator.Kruskal
)

var rootCmd = &cobra.Command{
	Use:          "vinom-maze",
	Short:        "Carve a perfect maze and print it",
	Long:         "vinom-maze builds a rectangular grid, joins its cells with a disjoint-set forest and prints the resulting perfect maze.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntP("width", "W", config.Envs.Width, "number of maze columns")
	rootCmd.Flags().IntP("height", "H", config.Envs.Height, "number of maze rows")
	rootCmd.Flags().Int64P("seed", "s", config.Envs.Seed, "random seed, 0 picks one from the clock")
}

func initLoggers() {
	level := logger.ParseLevel(config.Envs.LogLevel)

	var err error
	appLogger, err = logger.NewWithLevel("APP", config.ColorGreen, os.Stderr, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating app logger: %v\n", err)
		os.Exit(1)
	}

	generatorLogger, err = logger.NewWithLevel("GENERATOR", config.ColorCyan, os.Stderr, level)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating generator logger: %v", err))
		os.Exit(1)
	}
}

func initGenerator(seed int64) {
	kruskal = generator.NewKruskal(&generator.Options{
		Seed:   seed,
		Logger: generatorLogger,
	})
	appLogger.Info("Generator initialized", "seed", kruskal.Seed())
}

func run(cmd *cobra.Command, _ []string) error {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	seed, _ := cmd.Flags().GetInt64("seed")

	initGenerator(seed)

	grid, err := maze.New(width, height)
	if err != nil {
		return fmt.Errorf("building grid: %w", err)
	}

	if _, err := kruskal.Generate(grid); err != nil {
		return fmt.Errorf("generating maze: %w", err)
	}

	if !generator.Perfect(grid) {
		return errors.New("generated maze is not a spanning tree")
	}

	fmt.Fprint(cmd.OutOrStdout(), grid.String())
	return nil
}

func main() {
	initLoggers()

	if err := rootCmd.Execute(); err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
}
