package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/assetclass/internal/classifier"
	"github.com/fyrsmithlabs/assetclass/internal/logging"
)

var (
	classifyJSON bool
	classifyTopK int
)

// classifyCmd classifies asset names given as arguments or on stdin.
var classifyCmd = &cobra.Command{
	Use:   "classify [name]...",
	Short: "Classify one or more asset names",
	Long: `Classify asset names into risk assessment categories.

Examples:
  # Classify arguments
  assetclass classify 防火牆設備 資料庫管理系統

  # Classify names from stdin, one per line
  cat assets.txt | assetclass classify -

  # Full score breakdown as JSON
  assetclass classify --json 防火牆設備`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "print full results as JSON")
	classifyCmd.Flags().IntVar(&classifyTopK, "top", 0, "ranked categories to print (0 = config, then all)")
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, logger, c, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer logging.Sync(logger) //nolint:errcheck

	names, err := inputNames(args)
	if err != nil {
		return err
	}

	topK := classifyTopK
	if topK == 0 {
		topK = cfg.Classifier.TopK
	}

	enc := json.NewEncoder(os.Stdout)
	for _, name := range names {
		result := c.Classify(cmd.Context(), name)
		if classifyJSON {
			if err := enc.Encode(trimRanked(result, topK)); err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
			continue
		}
		printResult(result, topK)
	}
	return nil
}

// inputNames expands a single "-" argument into stdin lines.
func inputNames(args []string) ([]string, error) {
	if len(args) != 1 || args[0] != "-" {
		return args, nil
	}

	var names []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			names = append(names, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no asset names on stdin")
	}
	return names, nil
}

func trimRanked(result classifier.Result, topK int) classifier.Result {
	if topK > 0 && topK < len(result.Ranked) {
		result.Ranked = result.Ranked[:topK]
	}
	return result
}

func printResult(result classifier.Result, topK int) {
	fmt.Printf("%s\t%s\t%.4f\n", result.Input, result.Category, result.Confidence)
	ranked := trimRanked(result, topK).Ranked
	if topK <= 1 {
		return
	}
	for _, cs := range ranked {
		fmt.Printf("  %s\t%.4f\t(reserved %.2f keyword %.2f pattern %.2f similarity %.2f)\n",
			cs.Category, cs.Breakdown.Combined,
			cs.Breakdown.Reserved, cs.Breakdown.Keyword,
			cs.Breakdown.Pattern, cs.Breakdown.Similarity)
	}
}
