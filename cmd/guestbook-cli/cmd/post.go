package cmd

import (
	"fmt"

	"github.com/coregx/guestbook"
	"github.com/spf13/cobra"
)

func newPostCmd() *cobra.Command {
	var req guestbook.SubmitRequest

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Store a new message",
		Long: `Validate and store a message, exactly like a contact form submission.

Examples:
  guestbook-cli post --name Jane --email jane@example.com --message "Hello!"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withGuestbook(cmd, func(gb *guestbook.Guestbook) error {
				msg, err := gb.Submit(cmd.Context(), req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Stored message from %s at %s\n", msg.Name(), msg.Timestamp().UTC().Format("2006-01-02T15:04:05Z07:00"))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Sender name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Sender email address")
	cmd.Flags().StringVar(&req.Contents, "message", "", "Message text")
	return cmd
}
