package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/coregx/guestbook"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		req          guestbook.BrowseRequest
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of stored messages",
		Long: `List stored messages, oldest first.

When more messages may exist, the command prints the token for the next page.
Tokens are only valid for the backend that produced them.

Examples:
  guestbook-cli list                           # First page, default size
  guestbook-cli list --max-results 50          # Larger page
  guestbook-cli list --page-token 50           # Continue from a previous page
  guestbook-cli list --format json             # Machine-readable output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat != "table" && outputFormat != "json" {
				return fmt.Errorf("invalid format %q (table, json)", outputFormat)
			}

			return withGuestbook(cmd, func(gb *guestbook.Guestbook) error {
				page, err := gb.Browse(cmd.Context(), req)
				if err != nil {
					return err
				}
				if outputFormat == "json" {
					return printJSON(cmd, page)
				}
				return printTable(cmd, page)
			})
		},
	}

	cmd.Flags().IntVar(&req.MaxResults, "max-results", 0, "Page size (0 uses the default)")
	cmd.Flags().StringVar(&req.PageToken, "page-token", "", "Token returned by a previous list")
	cmd.Flags().StringVar(&outputFormat, "format", "table", "Output format: table or json")
	return cmd
}

type listedMessage struct {
	Time    string `json:"time"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func printJSON(cmd *cobra.Command, page *guestbook.Page) error {
	out := struct {
		Messages      []listedMessage `json:"messages"`
		NextPageToken string          `json:"nextPageToken,omitempty"`
	}{
		Messages:      make([]listedMessage, 0, len(page.Messages)),
		NextPageToken: page.NextPageToken,
	}
	for _, m := range page.Messages {
		out.Messages = append(out.Messages, listedMessage{
			Time:    m.Timestamp().UTC().Format(time.RFC3339),
			Name:    m.Name().String(),
			Email:   m.Email().String(),
			Message: m.Contents().String(),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printTable(cmd *cobra.Command, page *guestbook.Page) error {
	if len(page.Messages) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No messages found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tNAME\tEMAIL\tMESSAGE")
	for _, m := range page.Messages {
		fmt.Fprintf(w, "%s\t%s\t%s\t%q\n",
			m.Timestamp().UTC().Format(time.RFC3339), m.Name(), m.Email(), m.Contents().String())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if page.HasNextPage {
		fmt.Fprintf(cmd.OutOrStdout(), "\nNext page: --page-token %s\n", page.NextPageToken)
	}
	return nil
}
