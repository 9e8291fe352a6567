package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/mail"

	"github.com/spf13/cobra"

	"github.com/mepost/mepost-go"
)

// recipients parses "addr@example.com" or "Display Name <addr@example.com>"
// entries. A bare address is sent with an empty name.
func recipients(entries []string) ([]mepost.Recipient, error) {
	out := make([]mepost.Recipient, 0, len(entries))
	for _, e := range entries {
		addr, err := mail.ParseAddress(e)
		if err != nil {
			return nil, fmt.Errorf("invalid recipient %q: %w", e, err)
		}
		out = append(out, mepost.Recipient{Email: addr.Address, Name: addr.Name})
	}
	return out, nil
}

func newGroupCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage email groups",
	}

	var limit, page int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List email groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.BaseResult[mepost.EmailGroupWithCounts]], error) {
				return c.ListGroups(ctx, mepost.WithLimit(limit), mepost.WithPage(page))
			})
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", mepost.DefaultLimit, "page size")
	listCmd.Flags().IntVar(&page, "page", mepost.DefaultPage, "page number, starting at 1")

	var name string
	var to []string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an email group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rcpts, err := recipients(to)
			if err != nil {
				return err
			}
			return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.EmailGroup], error) {
				return c.CreateGroup(ctx, mepost.CreateGroupRequest{Name: name, Recipients: rcpts})
			})
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "group name (required)")
	createCmd.Flags().StringSliceVar(&to, "to", nil, "initial recipients, as addr@example.com or \"Name <addr@example.com>\"")
	_ = createCmd.MarkFlagRequired("name")

	var newName string
	renameCmd := &cobra.Command{
		Use:   "rename <group-id>",
		Short: "Rename an email group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.EmailGroup], error) {
				return c.RenameGroup(ctx, args[0], mepost.RenameGroupRequest{Name: newName})
			})
		},
	}
	renameCmd.Flags().StringVar(&newName, "name", "", "new group name (required)")
	_ = renameCmd.MarkFlagRequired("name")

	cmd.AddCommand(
		listCmd,
		createCmd,
		&cobra.Command{
			Use:   "get <group-id>",
			Short: "Show an email group",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.EmailGroupWithCounts], error) {
					return c.GetGroup(ctx, args[0])
				})
			},
		},
		renameCmd,
		&cobra.Command{
			Use:   "delete <group-id>",
			Short: "Delete an email group",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[json.RawMessage], error) {
					return c.DeleteGroup(ctx, args[0])
				})
			},
		},
	)

	return cmd
}

func newSubscriberCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscriber",
		Short: "Manage the subscribers of an email group",
	}

	var limit, page int
	listCmd := &cobra.Command{
		Use:   "list <group-id>",
		Short: "List a group's subscribers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.BaseResult[mepost.Subscriber]], error) {
				return c.ListSubscribers(ctx, args[0], mepost.WithLimit(limit), mepost.WithPage(page))
			})
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", mepost.DefaultLimit, "page size")
	listCmd.Flags().IntVar(&page, "page", mepost.DefaultPage, "page number, starting at 1")

	var addEmails []string
	addCmd := &cobra.Command{
		Use:   "add <group-id>",
		Short: "Add recipients to a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rcpts, err := recipients(addEmails)
			if err != nil {
				return err
			}
			return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[[]mepost.Subscriber], error) {
				return c.AddSubscriber(ctx, args[0], mepost.AddSubscriberRequest{Recipients: rcpts})
			})
		},
	}
	addCmd.Flags().StringSliceVar(&addEmails, "email", nil, "recipient to add, as addr@example.com or \"Name <addr@example.com>\" (repeatable, required)")
	_ = addCmd.MarkFlagRequired("email")

	var deleteEmails []string
	deleteCmd := &cobra.Command{
		Use:   "delete <group-id>",
		Short: "Remove addresses from a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[json.RawMessage], error) {
				return c.DeleteSubscriber(ctx, args[0], mepost.DeleteSubscriberRequest{Emails: deleteEmails})
			})
		},
	}
	deleteCmd.Flags().StringSliceVar(&deleteEmails, "email", nil, "address to remove (repeatable, required)")
	_ = deleteCmd.MarkFlagRequired("email")

	cmd.AddCommand(
		listCmd,
		addCmd,
		&cobra.Command{
			Use:   "get <group-id> <email>",
			Short: "Show one subscriber",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, o, func(ctx context.Context, c *mepost.Client) (*mepost.Response[mepost.Subscriber], error) {
					return c.GetSubscriber(ctx, args[0], args[1])
				})
			},
		},
		deleteCmd,
	)

	return cmd
}
