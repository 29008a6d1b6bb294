// Command droptool lists and drops tables/views in the Dune Trino
// metastore. Dry-run by default; production drops require exact targeting
// and an interactive confirmation.
//
// Note that DROP TABLE only removes the metastore entry. Orphaned data in
// S3 is cleaned up separately by scheduled jobs.
package main

import (
	"log/slog"
	"os"

	"github.com/duneanalytics/droptool"
	"github.com/duneanalytics/droptool/internal/logging"
	"github.com/spf13/cobra"
)

type options struct {
	target  string
	schema  string
	table   string
	execute bool
	apiKey  string
	verbose bool

	host    string
	port    int
	catalog string
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "droptool",
		Short: "Drop tables and views in a Dune schema via the Trino API",
		Long: `Droptool connects to the Dune Trino API endpoint and drops tables and
views based on a schema pattern or a specific table name.

Without --execute nothing is dropped; the DROP statements that would run
are printed instead. Production drops require both --schema and --table
and an interactive confirmation.`,
		Example: `  # Dry run - drop all dev tables (DUNE_TEAM_NAME__tmp_% pattern)
  droptool

  # Execute drop for dev tables
  droptool --execute

  # Drop specific dev table (execute)
  droptool --table my_table --schema dune__tmp_jeff --execute

  # Drop specific prod table (requires confirmation)
  droptool --target prod --schema dune --table my_table --execute`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), &opts)
		},
	}

	root.Flags().StringVar(&opts.target, "target", "dev", "Target environment: 'dev' (uses __tmp_ pattern) or 'prod'")
	root.Flags().StringVar(&opts.schema, "schema", "", "Schema name or pattern (overrides --target default)")
	root.Flags().StringVar(&opts.table, "table", "", "Specific table or view name to drop (requires --schema)")
	root.Flags().BoolVar(&opts.execute, "execute", false, "Execute the drop operations (default is dry-run mode)")
	root.Flags().StringVar(&opts.apiKey, "api-key", "", "Dune API key (defaults to DUNE_API_KEY env var)")
	root.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose (debug) logging")
	root.Flags().StringVar(&opts.host, "host", droptool.DefaultHost, "Trino host endpoint")
	root.Flags().IntVar(&opts.port, "port", droptool.DefaultPort, "Trino port")
	root.Flags().StringVar(&opts.catalog, "catalog", droptool.DefaultCatalog, "Trino catalog")

	return root
}

func main() {
	logging.Init(false)

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("failed to complete operation", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
