package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vincent-gallery/pkg/clients/gallery"
	"vincent-gallery/pkg/config"
	"vincent-gallery/pkg/form"
)

func newRootCmd(cfg *config.Config, log *zap.Logger) *cobra.Command {
	var (
		apiURL  string
		timeout time.Duration
	)

	root := &cobra.Command{
		Use:   "gallery-cli",
		Short: "Talk to the Vincent Gallery API",
		Long: `gallery-cli sends the contact form and reads the gallery catalog,
biography and health status from a running gallery server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&apiURL, "api", cfg.APIURL, "base URL of the gallery server")
	root.PersistentFlags().DurationVar(&timeout, "timeout", cfg.ClientTimeout, "request timeout (0 waits indefinitely)")

	client := func() gallery.Client {
		return gallery.NewClient(apiURL, timeout)
	}

	root.AddCommand(
		newContactCmd(cfg, log, client),
		newCatalogCmd(client),
		newBiographyCmd(client),
		newHealthCmd(client),
	)
	return root
}

func newContactCmd(cfg *config.Config, log *zap.Logger, client func() gallery.Client) *cobra.Command {
	var name, email, message string

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message through the contact form",
		RunE: func(cmd *cobra.Command, args []string) error {
			dialog := form.WriterDialog{W: cmd.OutOrStdout()}
			f := form.NewForm(client(), dialog, log, cfg.SourceLabel)
			f.SetFields(name, email, message)

			res := f.Submit(cmd.Context())
			log.Debug("Contact form finished", zap.Stringer("outcome", res.Outcome))

			switch res.Outcome {
			case form.Rejected, form.Busy:
				return res.Err
			case form.Delivered:
				if res.Receipt != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Reference: %d\n", res.Receipt.ID)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&email, "email", "", "your email address")
	cmd.Flags().StringVar(&message, "message", "", "the message to send")
	return cmd
}

func newCatalogCmd(client func() gallery.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [id]",
		Short: "List the paintings, or show one painting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				resp, err := client().Catalog(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd, resp)
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid painting id %q: %w", args[0], err)
			}
			resp, err := client().Painting(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func newBiographyCmd(client func() gallery.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "biography",
		Short: "Show the artist biography",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().Biography(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func newHealthCmd(client func() gallery.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().Health(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
