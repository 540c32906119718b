package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/assetclass/internal/classifier"
	"github.com/fyrsmithlabs/assetclass/internal/logging"
	"github.com/fyrsmithlabs/assetclass/internal/traindata"
)

var batchShowErrors bool

// batchCmd classifies a labeled CSV and reports accuracy.
var batchCmd = &cobra.Command{
	Use:   "batch <csv>",
	Short: "Classify a labeled CSV and report accuracy",
	Long: `Classify every row of a labeled CSV (asset name, category) and
report overall and per-category accuracy against the labels.

Examples:
  # Evaluate against a labeled file
  assetclass batch holdout.csv

  # Also list every misclassified row
  assetclass batch --show-errors holdout.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&batchShowErrors, "show-errors", false, "list misclassified rows")
}

// batchReport aggregates evaluation counts.
type batchReport struct {
	Total       int
	Correct     int
	PerCategory map[string]*categoryTally
	Mistakes    []mistake
}

type categoryTally struct {
	Total   int
	Correct int
}

type mistake struct {
	AssetName string
	Expected  string
	Predicted string
}

func runBatch(cmd *cobra.Command, args []string) error {
	_, logger, c, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer logging.Sync(logger) //nolint:errcheck

	rows, err := traindata.LoadFile(args[0])
	if err != nil {
		return err
	}

	report := evaluate(cmd.Context(), c, rows)
	printReport(report)
	return nil
}

// evaluate classifies every row and tallies hits against the labels.
func evaluate(ctx context.Context, c *classifier.Classifier, rows []traindata.Row) batchReport {
	report := batchReport{PerCategory: make(map[string]*categoryTally)}
	for _, row := range rows {
		result := c.Classify(ctx, row.AssetName)

		report.Total++
		tally := report.PerCategory[row.Category]
		if tally == nil {
			tally = &categoryTally{}
			report.PerCategory[row.Category] = tally
		}
		tally.Total++

		if result.Category == row.Category {
			report.Correct++
			tally.Correct++
			continue
		}
		report.Mistakes = append(report.Mistakes, mistake{
			AssetName: row.AssetName,
			Expected:  row.Category,
			Predicted: result.Category,
		})
	}
	return report
}

func printReport(report batchReport) {
	fmt.Printf("rows: %d\ncorrect: %d\naccuracy: %.2f%%\n",
		report.Total, report.Correct, accuracy(report.Correct, report.Total))

	categories := make([]string, 0, len(report.PerCategory))
	for category := range report.PerCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		tally := report.PerCategory[category]
		fmt.Printf("  %s\t%d/%d\t%.2f%%\n",
			category, tally.Correct, tally.Total, accuracy(tally.Correct, tally.Total))
	}

	if batchShowErrors {
		for _, m := range report.Mistakes {
			fmt.Printf("MISS\t%s\texpected %s\tgot %s\n", m.AssetName, m.Expected, m.Predicted)
		}
	}
}

func accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(correct) / float64(total)
}
