package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ambertools/amberscan/internal/duckdb"
	"github.com/ambertools/amberscan/internal/fasta"
	"github.com/ambertools/amberscan/internal/output"
	"github.com/ambertools/amberscan/internal/report"
	"github.com/ambertools/amberscan/internal/scan"
)

func newScanCmd() *cobra.Command {
	var (
		outputFile   string
		duckdbFile   string
		residue      string
		workers      int
		minExtension int
		showStats    bool
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "scan <fasta-file>",
		Short: "Scan a transcript FASTA file for amber readthrough candidates",
		Long: `Scan a protein-coding transcript FASTA file (plain or gzipped) whose
headers carry pipe-delimited GENCODE annotations, e.g.

  >ENST00000456328.2|ENSG00000290825.1|...|CDS:201-459|UTR3:460-1657|

and write a tab-delimited table of every amber-terminated transcript with
its simulated suppression readthrough product.`,
		Example: `  amberscan scan gencode.v46.pc_transcripts.fa.gz
  amberscan scan -o candidates.tsv --residue Q transcripts.fa
  amberscan scan --duckdb results.duckdb --stats transcripts.fa.gz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("residue") {
				if r := viper.GetString("scan.residue"); r != "" {
					residue = r
				}
			}
			if !cmd.Flags().Changed("workers") {
				workers = viper.GetInt("scan.workers")
			}
			if len(residue) != 1 || residue[0] < 'A' || residue[0] > 'Z' {
				return fmt.Errorf("residue must be a single uppercase amino acid letter, got %q", residue)
			}

			return runScan(scanOptions{
				inputPath:    args[0],
				outputFile:   outputFile,
				duckdbFile:   duckdbFile,
				residue:      residue[0],
				workers:      workers,
				minExtension: minExtension,
				showStats:    showStats,
				verbose:      verbose,
			})
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&duckdbFile, "duckdb", "", "also write results to a DuckDB database at this path")
	cmd.Flags().StringVar(&residue, "residue", "K", "amino acid inserted at the amber codon by the suppressor tRNA")
	cmd.Flags().IntVar(&workers, "workers", 0, "simulation worker count (0 = all CPUs)")
	cmd.Flags().IntVar(&minExtension, "min-extension", 0, "only report products whose extension has at least this many residues")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print scan summary and extension length statistics to stderr")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-record data-quality rejections")

	return cmd
}

type scanOptions struct {
	inputPath    string
	outputFile   string
	duckdbFile   string
	residue      byte
	workers      int
	minExtension int
	showStats    bool
	verbose      bool
}

func runScan(opts scanOptions) error {
	reader, err := fasta.Open(opts.inputPath)
	if err != nil {
		return err
	}
	defer reader.Close()

	sim := scan.NewSimulator()
	sim.Residue = opts.residue

	scanner := scan.NewScanner(sim)
	scanner.SetWorkers(opts.workers)

	if opts.verbose {
		logger, err := newStderrLogger()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()
		scanner.SetLogger(logger)
	}

	res, err := scanner.ScanAll(reader)
	if err != nil {
		return err
	}

	records := res.Amber
	if opts.minExtension > 0 {
		records = report.FilterMinExtension(records, opts.minExtension)
	}

	out := os.Stdout
	if opts.outputFile != "" {
		out, err = os.Create(opts.outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	if err := output.NewTabWriter(out).WriteAll(records); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	if opts.duckdbFile != "" {
		store, err := duckdb.Open(opts.duckdbFile)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.WriteAmberRecords(records); err != nil {
			return fmt.Errorf("write duckdb: %w", err)
		}
	}

	if opts.showStats {
		report.WriteSummary(os.Stderr, res)
	}

	return nil
}

// newStderrLogger builds a console logger for data-quality warnings.
func newStderrLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
