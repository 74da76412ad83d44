package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mvidal/launchbox/internal/output"
	"github.com/mvidal/launchbox/internal/reconcile"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Import newly installed applications and drop stale ones",
	Long: `Scan the desktop entry directories and reconcile the config:

  - every discovered application is imported into each category its entry
    declares (or its single taxonomy bucket with --buckets)
  - applications whose executables no longer resolve are removed
    (skip with --no-clean)`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().Bool("buckets", false, "Import into taxonomy buckets instead of raw entry categories")
	syncCmd.Flags().Bool("no-clean", false, "Skip the stale-application cleanup pass")
}

func runSync(cmd *cobra.Command, args []string) error {
	buckets, _ := cmd.Flags().GetBool("buckets")
	noClean, _ := cmd.Flags().GetBool("no-clean")

	rec := newReconciler(openStore())

	var res reconcile.Result
	if buckets {
		res.Imported = rec.ImportByBucket()
	} else {
		res.Imported = rec.ImportByCategory()
	}
	if !noClean {
		res.Removed = rec.Clean()
	}
	return output.Print(res)
}
