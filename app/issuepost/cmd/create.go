package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/croneill/issuepost/internal/github"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new issue",
	Long: `Creates a single issue in the configured repository.

Creation is not idempotent: running the same command twice creates two
distinct issues.`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&qualifiedRepoName, "repo", "", "Repository name in the format 'owner/repo'")
	createCmd.Flags().StringVar(&issueTitle, "title", "", "Issue title")
	createCmd.Flags().StringVar(&issueBody, "body", "", "Issue body")
	createCmd.Flags().StringArrayVar(&issueLabels, "label", nil, "Label to apply (repeatable)")
	createCmd.Flags().StringArrayVar(&issueAssignees, "assignee", nil, "User to assign (repeatable)")
	createCmd.Flags().DurationVar(&requestTimeout, "timeout", 0, "Per-request timeout (default 10s)")

	_ = createCmd.MarkFlagRequired("title")

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := setupContext()

	// Parse repository owner and name
	owner, repo := cfg.Owner, cfg.Repo
	if qualifiedRepoName != "" {
		parts := strings.Split(qualifiedRepoName, "/")
		if len(parts) != 2 {
			return fmt.Errorf("invalid repository format '%s', expected owner/repo", qualifiedRepoName)
		}
		owner, repo = parts[0], parts[1]
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	tel, err := createTelemetryProvider(ctx)
	if err != nil {
		return fmt.Errorf("failed to set up telemetry: %w", err)
	}
	defer func() {
		if err := tel.Shutdown(context.Background()); err != nil {
			log.Printf("Failed to shut down telemetry provider: %v", err)
		}
	}()

	client, err := createIssueClient(owner, repo)
	if err != nil {
		return err
	}

	issue := github.Issue{
		Title:     issueTitle,
		Body:      issueBody,
		Labels:    issueLabels,
		Assignees: issueAssignees,
	}

	log.Printf("Creating issue in %s/%s", owner, repo)

	ctx, span := tel.Tracer().Start(ctx, "issuepost.create")
	span.SetAttributes(
		attribute.String("github.repository", owner+"/"+repo),
		attribute.String("github.issue.title", issue.Title),
	)

	result, err := client.Create(ctx, issue)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "issue creation failed")
		span.End()
		return err
	}
	span.SetAttributes(attribute.Int("github.issue.number", result.Number))
	span.End()

	log.Printf("Issue #%d created by %s at %s", result.Number, result.Author, result.CreatedAt)
	fmt.Println(result.IssueURL)
	return nil
}
