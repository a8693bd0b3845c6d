package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath  string
	folderPath  string
	baseFolder  string
	outputCSV   string
	deleteEmpty bool
	batchSize   int
	logLevel    string
	quiet       bool
)

var rootCmd = &cobra.Command{
	Use:   "tuneshelf",
	Short: "Organize music files into an artist/album library",
	Long: `tuneshelf - organize music files by embedded metadata

Scans a folder for music files, reads their tags, and moves each file
into <base>/<letter>/<artist>/<album>/. Every move is recorded in a
CSV manifest so the run can be audited later.

Files without readable tags are skipped and logged; existing files at a
destination are never overwritten.`,
	RunE:          runOrganize,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to config file (optional)")
	rootCmd.Flags().StringVar(&folderPath, "folder", "", "Folder to scan for music files")
	rootCmd.Flags().StringVar(&baseFolder, "base", "", "Base folder to organize into")
	rootCmd.Flags().StringVar(&outputCSV, "output", "", "CSV manifest file name")
	rootCmd.Flags().BoolVar(&deleteEmpty, "delete-empty", false, "Delete empty folders after processing")
	rootCmd.Flags().IntVar(&batchSize, "batch-size", 0, "Files to process per batch")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Disable the progress bar")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("tuneshelf {{.Version}}\n")
}
