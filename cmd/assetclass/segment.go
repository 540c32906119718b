package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/assetclass/internal/logging"
)

var segmentJSON bool

// segmentCmd shows how an asset name is segmented without classifying it.
var segmentCmd = &cobra.Command{
	Use:   "segment <name>...",
	Short: "Show reserved-word segmentation of asset names",
	Long: `Show how asset names are segmented: which reserved lexicon phrases
match, what regular tokens remain and the expanded decomposition.

Examples:
  assetclass segment 防火牆設備
  assetclass segment --json 資料庫管理系統`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSegment,
}

func init() {
	segmentCmd.Flags().BoolVar(&segmentJSON, "json", false, "print segmentation as JSON")
}

func runSegment(cmd *cobra.Command, args []string) error {
	_, logger, c, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer logging.Sync(logger) //nolint:errcheck

	enc := json.NewEncoder(os.Stdout)
	for _, name := range args {
		processed := c.Segment(name)
		if segmentJSON {
			if err := enc.Encode(processed); err != nil {
				return fmt.Errorf("encoding segmentation: %w", err)
			}
			continue
		}
		fmt.Printf("%s\n", processed.Original)
		fmt.Printf("  reserved: %s\n", strings.Join(processed.ReservedWords, " "))
		fmt.Printf("  regular:  %s\n", strings.Join(processed.RegularWords, " "))
		fmt.Printf("  expanded: %s\n", strings.Join(processed.Expanded, " "))
	}
	return nil
}
