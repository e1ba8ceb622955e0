package main

import (
	"github.com/spf13/cobra"

	"github.com/wsbootstrap/ws/internal/project"
)

func newNewCmd(a *app) *cobra.Command {
	var (
		in       newInput
		noHooks  bool
		dryRun   bool
		copyPath bool
	)

	cmd := &cobra.Command{
		Use:     "new [project_type] [name]",
		Short:   "Create a new project from the bootstrap templates",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(2),
		Long: `Create a new project with the bootstrap repo's scaffolding script
(scripts/new_project.sh).

Anything not given on the command line is asked for interactively: the
project type (python, next or data), the folder name and whether to add a
DevContainer, the devstack, a dbt stub and a git repository. Devstack and
dbt default to yes for data projects only.

The plan is shown before anything runs and must be confirmed.`,
		Example: `  ws new                               # Ask for everything
  ws new data etl --devstack --dbt     # Ask only for the rest
  ws new python api --dir ~/src --no-devcontainer --git --no-devstack --no-dbt
  ws new next web --dry-run            # Show the plan and command only`,
		ValidArgsFunction: completeNewArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) > 0 {
				in.Type = args[0]
			}
			if len(args) > 1 {
				in.Name = args[1]
			}
			in.Devcontainer = boolPair(c, "devcontainer", "no-devcontainer")
			in.Devstack = boolPair(c, "devstack", "no-devstack")
			in.DBT = boolPair(c, "dbt", "no-dbt")
			in.InitGit = boolPair(c, "git", "no-git")
			in.NoHooks = noHooks
			in.DryRun = dryRun
			in.Copy = copyPath
			return runNew(c.Context(), a, in)
		},
	}

	cmd.Flags().StringVar(&in.Dir, "dir", "", "Base directory for the project (default $WS_REPOS_DIR, repos_dir or ~/dev/repos)")
	cmd.Flags().Bool("devcontainer", false, "Add a DevContainer")
	cmd.Flags().Bool("no-devcontainer", false, "Do not add a DevContainer")
	cmd.Flags().Bool("devstack", false, "Add the devstack (postgres/mongo/clickhouse)")
	cmd.Flags().Bool("no-devstack", false, "Do not add the devstack")
	cmd.Flags().Bool("dbt", false, "Add a dbt stub")
	cmd.Flags().Bool("no-dbt", false, "Do not add a dbt stub")
	cmd.Flags().Bool("git", false, "Initialize a git repository")
	cmd.Flags().Bool("no-git", false, "Do not initialize a git repository")
	cmd.Flags().BoolVar(&noHooks, "no-hooks", false, "Skip installing git hooks")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the plan and scaffolder command without running it")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Copy the new project path to the clipboard")

	cmd.MarkFlagsMutuallyExclusive("devcontainer", "no-devcontainer")
	cmd.MarkFlagsMutuallyExclusive("devstack", "no-devstack")
	cmd.MarkFlagsMutuallyExclusive("dbt", "no-dbt")
	cmd.MarkFlagsMutuallyExclusive("git", "no-git")
	_ = cmd.MarkFlagDirname("dir")

	return cmd
}

// boolPair reads a --x/--no-x flag pair. It returns nil when neither was
// given so the value gets prompted for.
func boolPair(c *cobra.Command, on, off string) *bool {
	flags := c.Flags()
	if flags.Changed(on) {
		v, _ := flags.GetBool(on)
		return &v
	}
	if flags.Changed(off) {
		v, _ := flags.GetBool(off)
		v = !v
		return &v
	}
	return nil
}

// completeNewArgs completes the project type for the first positional argument.
func completeNewArgs(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return project.TypeNames(), cobra.ShellCompDirectiveNoFileComp
}
