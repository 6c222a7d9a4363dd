package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tally/pkg/project"
)

// ProjectsOptions holds command-line options for the projects command.
type ProjectsOptions struct {
	Output string
}

// NewProjectsCommand creates the projects command.
func NewProjectsCommand() *cobra.Command {
	opts := &ProjectsOptions{}

	cmd := &cobra.Command{
		Use:   "projects <path>",
		Short: "List discoverable projects without aggregating",
		Long: `List the log files that a report over <path> would process.

For a directory, every immediate subdirectory containing a log.md is a
project; subdirectories without one are skipped. For a file, the file
itself is listed.

Example:
  tally projects ~/timesheets`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjects(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")

	return cmd
}

// projectInfo is one discovered project in JSON output.
type projectInfo struct {
	Name    string `json:"name"`
	LogFile string `json:"log_file"`
}

func runProjects(target string, opts *ProjectsOptions) error {
	files, err := project.Discover(target)
	if err != nil {
		return err
	}

	infos := make([]projectInfo, 0, len(files))
	for _, file := range files {
		name, err := project.Name(file)
		if err != nil {
			return err
		}
		infos = append(infos, projectInfo{Name: name, LogFile: file})
	}

	switch opts.Output {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	case "text":
		for _, info := range infos {
			fmt.Printf("%s\t%s\n", info.Name, info.LogFile)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}
