// Package main implements the assetclass CLI for classifying asset names
// into risk assessment categories.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/assetclass/internal/classifier"
	"github.com/fyrsmithlabs/assetclass/internal/config"
	"github.com/fyrsmithlabs/assetclass/internal/lexicon"
	"github.com/fyrsmithlabs/assetclass/internal/logging"
	"github.com/fyrsmithlabs/assetclass/internal/traindata"
)

var (
	// configPath is the optional YAML config file
	configPath string
	// trainingPath overrides the training CSV from config
	trainingPath string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "assetclass",
	Short: "Classify asset names into risk assessment categories",
	Long: `assetclass predicts the risk assessment category of a short asset
label (軟體, 實體, 資料, 人員 or 服務) from reserved-word segmentation,
keyword profiles and text similarity against labeled training data.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&trainingPath, "training", "", "training CSV (asset name, category); overrides config")
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(segmentCmd)
}

// setup loads config, builds the logger and assembles the classifier. Every
// subcommand starts here.
func setup(ctx context.Context) (*config.Config, *zap.Logger, *classifier.Classifier, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := logging.New(&cfg.Logging)
	if err != nil {
		return nil, nil, nil, err
	}

	rows, err := loadRows(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	lex := lexicon.Default()
	if len(cfg.Lexicon.Extra) > 0 {
		lex = lex.Merge(cfg.Lexicon.Extra)
	}

	c, err := classifier.New(ctx, classifier.Config{
		Rows:        rows,
		Profiles:    cfg.Classifier.Profiles,
		Lexicon:     lex,
		Weights:     cfg.Classifier.Weights,
		Multipliers: cfg.Classifier.Multipliers,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("building classifier: %w", err)
	}

	return cfg, logger, c, nil
}

// loadRows resolves the training set: --training flag, then config path,
// then the built-in default set.
func loadRows(cfg *config.Config) ([]traindata.Row, error) {
	path := trainingPath
	if path == "" {
		path = cfg.Training.Path
	}
	if path == "" {
		return traindata.Default(), nil
	}
	return traindata.LoadFile(path)
}
