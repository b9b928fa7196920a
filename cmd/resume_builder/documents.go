package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/spf13/cobra"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List a user's saved documents",
	Long:  "Lists documents stored with render --save, newest first. With --latest, writes the most recent document instead.",
	RunE:  runDocuments,
}

var (
	documentsUserID string
	documentsLimit  int
	documentsLatest bool
	documentsOutput string
)

func init() {
	documentsCmd.Flags().StringVarP(&documentsUserID, "user-id", "u", "", "User ID whose documents to list")
	documentsCmd.Flags().IntVar(&documentsLimit, "limit", 20, "Maximum number of documents to list")
	documentsCmd.Flags().BoolVar(&documentsLatest, "latest", false, "Write the most recent document instead of listing")
	documentsCmd.Flags().StringVarP(&documentsOutput, "out", "o", "", "Path to write the latest document (defaults to stdout)")

	rootCmd.AddCommand(documentsCmd)
}

func runDocuments(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{UserID: documentsUserID, Out: documentsOutput})
	if err != nil {
		return err
	}
	if cfg.UserID == "" {
		return fmt.Errorf("--user-id is required")
	}
	userID, err := uuid.Parse(cfg.UserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if documentsLatest {
		doc, err := database.GetLatestDocument(ctx, userID)
		if err != nil {
			return err
		}
		if doc == nil {
			return fmt.Errorf("no saved documents for user %s", userID)
		}
		if cfg.Out == "" {
			_, _ = fmt.Fprint(os.Stdout, doc.Content)
			return nil
		}
		if err := writeOutput(cfg.Out, []byte(doc.Content)); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote document %s to %s\n", doc.ID, cfg.Out)
		return nil
	}

	docs, err := database.ListDocuments(ctx, userID, documentsLimit)
	if err != nil {
		return err
	}
	writeDocumentList(os.Stdout, docs)
	return nil
}

// writeDocumentList prints one line per document with its syntax status.
func writeDocumentList(w io.Writer, docs []db.Document) {
	if len(docs) == 0 {
		_, _ = fmt.Fprintln(w, "No saved documents")
		return
	}
	for _, d := range docs {
		status := "valid"
		if !d.Valid {
			status = fmt.Sprintf("%d problem(s): %s", len(d.Errors), strings.Join(d.Errors, "; "))
		}
		_, _ = fmt.Fprintf(w, "%s  %s  %s\n", d.ID, d.CreatedAt.Format("2006-01-02 15:04:05"), status)
	}
}
