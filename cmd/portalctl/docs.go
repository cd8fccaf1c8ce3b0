package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"alu_portal/internal/app"
	"alu_portal/internal/domain/documents"
	"alu_portal/internal/infrastructure/render"

	"github.com/spf13/cobra"
)

func docsCmd(open containerOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Render order documents to text files",
	}
	cmd.AddCommand(docCmd(open, "receipt", "Receipt / tax invoice of an order",
		func(ctx context.Context, c *app.Container, id string) (documents.Document, error) {
			return c.Documents.Receipt(ctx, id)
		}))
	cmd.AddCommand(docCmd(open, "delivery", "Delivery note of an order",
		func(ctx context.Context, c *app.Container, id string) (documents.Document, error) {
			return c.Documents.DeliveryNote(ctx, id)
		}))
	return cmd
}

type docFunc func(ctx context.Context, c *app.Container, orderID string) (documents.Document, error)

func docCmd(open containerOpener, name, short string, build docFunc) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   name + " <order-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, open, func(c *app.Container) error {
				doc, err := build(cmd.Context(), c, args[0])
				if err != nil {
					return err
				}
				path, err := writeDocument(outDir, doc)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&outDir, "out", ".", "Directory to write the file into")
	return cmd
}

func writeDocument(dir string, doc documents.Document) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, render.TextFilename(doc))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := render.Text(f, doc); err != nil {
		_ = f.Close()
		return "", err
	}
	return path, f.Close()
}

