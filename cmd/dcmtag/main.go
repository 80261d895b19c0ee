package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	apppkg "github.com/kk-code-lab/dcmtag/internal/app"
	"github.com/kk-code-lab/dcmtag/internal/config"
)

func main() {
	// Set UTF-8 as fallback encoding so person names and accented tag
	// values display correctly on limited terminals.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	var noRestore bool

	rootCmd := &cobra.Command{
		Use:   "dcmtag [file]",
		Short: "dcmtag - terminal DICOM tag browser",
		Long: `dcmtag opens a DICOM file and shows its data set as a navigable
Tag/Name/VR/Value tree with incremental multi-field search.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(path, !noRestore)
		},
	}
	rootCmd.Flags().BoolVar(&noRestore, "no-restore", false, "do not reopen the last session's file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, restore bool) error {
	if path == "" && restore {
		if session, err := config.Load(); err == nil && session.LastFilePath != "" {
			if _, statErr := os.Stat(session.LastFilePath); statErr == nil {
				path = session.LastFilePath
			}
		}
	}

	app, err := apppkg.NewApplication(apppkg.Options{Path: path})
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()

	if opened := app.CurrentFilePath(); opened != "" {
		if err := config.Save(config.Session{LastFilePath: opened}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save session: %v\n", err)
		}
	}
	return nil
}
