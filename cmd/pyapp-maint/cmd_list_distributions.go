package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/ochairo/pyapp-maint/internal/domain/entities"
	"github.com/ochairo/pyapp-maint/internal/domain/services"
	"github.com/spf13/cobra"
)

var listFlags struct {
	format string
}

var listDistributionsCmd = &cobra.Command{
	Use:   "list-distributions",
	Short: "Print the distributions that would be written to the build script",
	Example: `  pyapp-maint list-distributions
  pyapp-maint list-distributions --format records`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		applyReleaseFlags(cmd, app.config)
		return executeListDistributions(cmd, app.config, listFlags.format)
	},
}

func init() {
	addReleaseFlags(listDistributionsCmd)
	listDistributionsCmd.Flags().StringVar(&listFlags.format, "format", "json", "Output format: json or records")
}

// distributionJSON is the review format of a selected distribution
type distributionJSON struct {
	Version     string `json:"version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	ABI         string `json:"abi"`
	CPUVariant  string `json:"cpu_variant"`
	GILVariant  string `json:"gil_variant"`
	Release     string `json:"release"`
	ReleaseDate int64  `json:"release_date"`
	URL         string `json:"url"`
}

func executeListDistributions(cmd *cobra.Command, config *entities.Config, format string) error {
	if format != "json" && format != "records" {
		return services.ErrConfig.New("unknown format %q (want json or records)", format)
	}

	orch, err := newDistributionOrchestrator(config)
	if err != nil {
		return err
	}

	entries, err := orch.CollectDistributions(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "records" {
		renderer := services.NewTableRenderer(config.Distributions.TableMarker, config.Distributions.EndMarker)
		for _, line := range renderer.RenderRecords(entries) {
			fmt.Fprintln(out, line)
		}
		return nil
	}

	rows := make([]distributionJSON, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, distributionJSON{
			Version:     e.Key.MinorVersion(),
			OS:          e.Key.OS,
			Arch:        e.Key.Arch,
			ABI:         e.Key.ABI,
			CPUVariant:  e.Key.CPUVariant,
			GILVariant:  e.Key.GILVariant,
			Release:     strings.TrimPrefix(e.Version, "v"),
			ReleaseDate: e.ReleaseDate,
			URL:         e.URL,
		})
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}
