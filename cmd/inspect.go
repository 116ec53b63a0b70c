package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spaghettifunk/affine/engine/assets"
	"github.com/spaghettifunk/affine/engine/core"
	"github.com/spaghettifunk/affine/engine/resources"
	"github.com/spf13/cobra"
)

func newInspectCmd(opts *options) *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Report every transform of a document",
		Long: `Loads a TOML transform document and prints, for each transform, its
local and world matrices, the decomposition of the world matrix and its
determinant. With --watch the report is printed again after every change
to the file, until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			only, _ := cmd.Flags().GetString("transform")
			path := args[0]

			if !watch {
				doc, err := resources.LoadDocument(path)
				if err != nil {
					return err
				}
				return writeReport(cmd.OutOrStdout(), opts, doc, only)
			}
			return watchDocument(cmd.Context(), cmd.OutOrStdout(), opts, path, only)
		},
	}

	inspectCmd.Flags().Bool("watch", false, "reprint the report whenever the file changes")
	inspectCmd.Flags().String("transform", "", "only report the named transform")

	return inspectCmd
}

func writeReport(w io.Writer, opts *options, doc *resources.Document, only string) error {
	rows, err := doc.Report()
	if err != nil {
		return err
	}
	if only != "" {
		if _, err := doc.Entry(only); err != nil {
			return err
		}
		for _, row := range rows {
			if row.Name == only {
				rows = []resources.ReportRow{row}
				break
			}
		}
	}

	if opts.format() == formatTOML {
		data, err := resources.EncodeReport(rows, opts.epsilon())
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	eps := opts.epsilon()
	for i := range rows {
		row := &rows[i]
		if i > 0 {
			fmt.Fprintln(w)
		}
		if row.Parent != "" {
			fmt.Fprintf(w, "%s (parent %s) %s\n", row.Name, row.Parent, row.ID)
		} else {
			fmt.Fprintf(w, "%s %s\n", row.Name, row.ID)
		}
		printMatrix(w, "local", &row.Local, eps)
		printMatrix(w, "world", &row.World, eps)
		printTRS(w, row.Position, row.Rotation, row.Scale, eps)
		printDeterminant(w, row.Determinant, eps)
	}
	return nil
}

/**
 * @brief Prints the report of path, then again after every change, until
 * ctx is cancelled. Reload errors are logged and watching continues.
 */
func watchDocument(ctx context.Context, w io.Writer, opts *options, path, only string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	watcher, err := assets.NewWatcher(path, nil, 0)
	if err != nil {
		return err
	}
	defer watcher.Close()

	doc, err := resources.LoadDocument(path)
	if err != nil {
		core.LogError(err.Error())
	} else if err := writeReport(w, opts, doc, only); err != nil {
		core.LogError(err.Error())
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case doc, ok := <-watcher.Documents():
			if !ok {
				return core.ErrWatcherClosed
			}
			fmt.Fprintf(w, "\n# reloaded %s\n", doc.Path)
			if err := writeReport(w, opts, doc, only); err != nil {
				core.LogError(err.Error())
			}
		case err, ok := <-watcher.Errors():
			if !ok {
				return core.ErrWatcherClosed
			}
			core.LogError(err.Error())
		}
	}
}
