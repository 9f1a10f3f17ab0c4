package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/garrettladley/tock/internal/client/github"
	"github.com/garrettladley/tock/internal/version"
)

const (
	repoOwner  = "garrettladley"
	repoName   = "tock"
	installPkg = "github.com/garrettladley/tock/cmd/tock@latest"
)

func upgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Check for updates and install if available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			currentVersion := version.Get()

			client := github.NewClient()
			latest, err := client.GetLatestRelease(ctx, repoOwner, repoName)
			if errors.Is(err, github.ErrNoRelease) {
				fmt.Printf("no tock release published yet (%s)\n", currentVersion)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}

			if !version.IsNewer(currentVersion, latest.TagName) {
				fmt.Printf("tock is up to date (%s)\n", currentVersion)
				return nil
			}

			fmt.Printf("Updating tock %s → %s\n", currentVersion, latest.TagName)

			if version.IsHomebrew() {
				return brewUpgrade(ctx)
			}

			return goInstallUpgrade(ctx)
		},
	}
}

func goInstallUpgrade(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "go", "install", installPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("upgrade failed: %w", err)
	}
	fmt.Println("Successfully updated!")
	return nil
}

func brewUpgrade(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "brew", "upgrade", repoName)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("brew upgrade failed: %w", err)
	}
	return nil
}
