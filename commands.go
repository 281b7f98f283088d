package main

import (
	"bluebot/logic"
	"bluebot/shared"
	"bluebot/texts"
	"fmt"
	"github.com/spf13/cobra"
	"os"
)

var modeFlag string
var searchLimit int

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bluebot",
		Short: "Bluesky automation bot",
		Long: `bluebot replies to, likes and follows posts on Bluesky and publishes its own text and image posts.

Without a subcommand it runs the scheduler and the HTTP status server until interrupted.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runServiceCmd,
	}
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "execution mode: prod or test (overrides BOT_MODE)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the scheduler and HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServiceCmd,
	}
	replyCmd := &cobra.Command{
		Use:   "reply",
		Short: "Run the reply workflow once",
		Args:  cobra.NoArgs,
		RunE:  workflowCmd(shared.WorkflowReply),
	}
	likeFollowCmd := &cobra.Command{
		Use:   "like-follow [term]",
		Short: "Run the like/follow workflow once, for all configured terms or a single one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLikeFollowCmd,
	}
	postImageCmd := &cobra.Command{
		Use:   "post-image",
		Short: "Generate and publish one image post",
		Args:  cobra.NoArgs,
		RunE:  workflowCmd(shared.WorkflowImagePost),
	}
	postTextCmd := &cobra.Command{
		Use:   "post-text",
		Short: "Generate and publish one text post",
		Args:  cobra.NoArgs,
		RunE:  workflowCmd(shared.WorkflowTextPost),
	}
	quotaCmd := &cobra.Command{
		Use:   "quota",
		Short: "Print the quota usage report",
		Args:  cobra.NoArgs,
		RunE:  runQuotaCmd,
	}
	searchCmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search posts and show which ones would be reply candidates; never acts",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearchCmd,
	}
	searchCmd.Flags().IntVar(&searchLimit, "limit", 25, "maximum number of posts to fetch")

	rootCmd.AddCommand(runCmd, replyCmd, likeFollowCmd, postImageCmd, postTextCmd, quotaCmd, searchCmd)
	return rootCmd
}

func runServiceCmd(cmd *cobra.Command, args []string) error {
	loadConfig(modeFlag, true)
	runService()
	return nil
}

func workflowCmd(workflow string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		loadConfig(modeFlag, true)
		var runner logic.IWorkflowRunner
		app, err := startOneShot(&runner)
		if err != nil {
			return err
		}
		defer stopOneShot(app)

		res, err := runner.RunWorkflow(cmd.Context(), workflow)
		if res != nil {
			fmt.Fprintln(cmd.OutOrStdout(), res)
		}
		return err
	}
}

func runLikeFollowCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return workflowCmd(shared.WorkflowLikeFollow)(cmd, args)
	}
	loadConfig(modeFlag, true)
	var likeFollow logic.ILikeFollowWorkflow
	app, err := startOneShot(&likeFollow)
	if err != nil {
		return err
	}
	defer stopOneShot(app)

	res, err := likeFollow.RunTerm(cmd.Context(), args[0], cfg.LikesPerTerm())
	if res != nil {
		fmt.Fprintln(cmd.OutOrStdout(), res)
	}
	return err
}

func runQuotaCmd(cmd *cobra.Command, args []string) error {
	loadConfig(modeFlag, false)
	var quota logic.IQuotaManager
	app, err := startOneShot(&quota)
	if err != nil {
		return err
	}
	defer stopOneShot(app)

	quota.PrintReport(os.Stdout)
	return nil
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	loadConfig(modeFlag, true)
	var client logic.ISocialClient
	var finder logic.ICandidateFinder
	var txt texts.ITexts
	app, err := startOneShot(&client, &finder, &txt)
	if err != nil {
		return err
	}
	defer stopOneShot(app)

	ctx := cmd.Context()
	if err = client.Login(ctx); err != nil {
		return err
	}
	candidates, err := client.Search(ctx, args[0], searchLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	accepted := 0
	for _, c := range candidates {
		// Accepts may set the detected language, so it runs first
		ok, reason := finder.Accepts(c)
		vals := map[string]string{
			"handle": c.AuthorHandle,
			"lang":   c.ReplyLang(),
			"uri":    c.Uri,
			"text":   shared.TruncateWithEllipsis(shared.OneLine(c.Text), 120),
		}
		fmt.Fprintln(out, txt.WithVals("search-result.txt", vals))
		if ok {
			accepted++
			fmt.Fprintln(out, "    -> candidate")
		} else {
			fmt.Fprintf(out, "    -> skipped: %s\n", reason)
		}
	}
	fmt.Fprintf(out, "%d posts, %d candidates\n", len(candidates), accepted)
	return nil
}
