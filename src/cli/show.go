// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/logbuffer/src/logbuffer"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

func (a *app) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show LOG_FILE",
		Short: "Render a flushed log file as a markdown table",
		Long: `Parses LOG_FILE as written by record and prints its entries as a markdown
table. --level applies the same filter rules as a flush; without it every
entry is shown.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runShow,
	}
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	filter, _, err := a.levelOverride()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("error reading log file: %w", err)
	}
	defer f.Close()

	entries, err := logbuffer.ReadEntries(f)
	if err != nil {
		return err
	}

	shown := entries[:0]
	for _, e := range entries {
		if filter.Allows(e.Severity) {
			shown = append(shown, e)
		}
	}

	a.log.Printf("Showing %d of %d entries from %s", len(shown), len(entries), args[0])
	return renderTable(cmd.OutOrStdout(), shown)
}

// renderTable writes entries as a markdown table.
func renderTable(w io.Writer, entries []logbuffer.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No entries to display")
		return err
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header("#", "Time", "Level", "Message")

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.Time.Format(logbuffer.TimeLayout),
			e.Severity.String(),
			e.Message,
		})
	}

	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
