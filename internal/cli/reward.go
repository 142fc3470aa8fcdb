package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jokarl/helixctl/internal/helix"
	"github.com/jokarl/helixctl/internal/resolve"
)

var (
	rewardBroadcasterFlag   string
	rewardBroadcasterIDFlag string

	rewardTitleFlag   string
	rewardPromptFlag  string
	rewardCostFlag    int
	rewardEnableFlag  bool
	rewardDisableFlag bool
	rewardPauseFlag   bool
	rewardResumeFlag  bool
	rewardInputFlag   bool
)

var rewardCmd = &cobra.Command{
	Use:     "reward",
	Aliases: []string{"rewards"},
	Short:   "Manage channel point rewards",
}

var rewardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom rewards",
	Args:  cobra.NoArgs,
	RunE:  runRewardList,
}

var rewardFindCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Find a reward by title",
	Long: `Find a reward by title.

The query is compared with reward titles exactly, then case-insensitively,
then fuzzily (the letters of the query in order, e.g. "bnns" finds
"Banana Split"). Each step only succeeds if it finds a single reward.`,
	Args: cobra.ExactArgs(1),
	RunE: runRewardFind,
}

var rewardCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a custom reward",
	Args:  cobra.ExactArgs(1),
	RunE:  runRewardCreate,
}

var rewardUpdateCmd = &cobra.Command{
	Use:   "update <query>",
	Short: "Update a reward found by title",
	Args:  cobra.ExactArgs(1),
	RunE:  runRewardUpdate,
}

func init() {
	rootCmd.AddCommand(rewardCmd)
	rewardCmd.AddCommand(rewardListCmd, rewardFindCmd, rewardCreateCmd, rewardUpdateCmd)

	addBroadcasterFlags(rewardListCmd, &rewardBroadcasterFlag, &rewardBroadcasterIDFlag)
	addBroadcasterFlags(rewardFindCmd, &rewardBroadcasterFlag, &rewardBroadcasterIDFlag)
	addBroadcasterFlags(rewardCreateCmd, &rewardBroadcasterFlag, &rewardBroadcasterIDFlag)
	addBroadcasterFlags(rewardUpdateCmd, &rewardBroadcasterFlag, &rewardBroadcasterIDFlag)

	for _, cmd := range []*cobra.Command{rewardCreateCmd, rewardUpdateCmd} {
		cmd.Flags().StringVar(&rewardPromptFlag, "prompt", "", "Reward description")
		cmd.Flags().IntVar(&rewardCostFlag, "cost", 0, "Cost in channel points")
		cmd.Flags().BoolVar(&rewardInputFlag, "user-input", false, "Require the viewer to enter text")
	}
	rewardCreateCmd.MarkFlagRequired("cost")

	rewardUpdateCmd.Flags().StringVar(&rewardTitleFlag, "title", "", "New title")
	rewardUpdateCmd.Flags().BoolVar(&rewardEnableFlag, "enable", false, "Enable the reward")
	rewardUpdateCmd.Flags().BoolVar(&rewardDisableFlag, "disable", false, "Disable the reward")
	rewardUpdateCmd.Flags().BoolVar(&rewardPauseFlag, "pause", false, "Pause redemptions")
	rewardUpdateCmd.Flags().BoolVar(&rewardResumeFlag, "resume", false, "Resume redemptions")
	rewardUpdateCmd.MarkFlagsMutuallyExclusive("enable", "disable")
	rewardUpdateCmd.MarkFlagsMutuallyExclusive("pause", "resume")
}

func runRewardList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	id, err := s.broadcasterID(cmd.Context(), rewardBroadcasterFlag, rewardBroadcasterIDFlag)
	if err != nil {
		return err
	}

	rewards, err := s.client.GetCustomRewards(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to list rewards: %w", err)
	}
	return s.renderer.RenderRewards(s.out, rewards)
}

func runRewardFind(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	m, err := s.findReward(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if err := s.renderer.RenderRewardMatch(s.out, args[0], m); err != nil {
		return err
	}
	return rewardMatchError(args[0], m)
}

func runRewardCreate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	id, err := s.broadcasterID(cmd.Context(), rewardBroadcasterFlag, rewardBroadcasterIDFlag)
	if err != nil {
		return err
	}

	body := rewardBodyFromFlags(cmd)
	body.Title = &args[0]

	reward, err := s.client.CreateCustomReward(cmd.Context(), id, body)
	if err != nil {
		return fmt.Errorf("failed to create reward: %w", err)
	}
	return s.renderer.RenderRewards(s.out, []helix.Reward{*reward})
}

func runRewardUpdate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	body := rewardBodyFromFlags(cmd)
	if body == (helix.RewardBody{}) {
		return errors.New("nothing to update: pass at least one of --title, --prompt, --cost, --user-input, --enable, --disable, --pause, --resume")
	}

	m, err := s.findReward(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if err := rewardMatchError(args[0], m); err != nil {
		if rerr := s.renderer.RenderRewardMatch(s.out, args[0], m); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}

	reward, err := s.client.UpdateCustomReward(cmd.Context(), m.Reward.BroadcasterID, m.Reward.ID, body)
	if err != nil {
		return fmt.Errorf("failed to update reward %q: %w", m.Reward.Title, err)
	}
	return s.renderer.RenderRewards(s.out, []helix.Reward{*reward})
}

// findReward resolves the broadcaster flags and looks the query up among
// that broadcaster's rewards.
func (s *session) findReward(ctx context.Context, query string) (resolve.Match, error) {
	id, err := s.broadcasterID(ctx, rewardBroadcasterFlag, rewardBroadcasterIDFlag)
	if err != nil {
		return resolve.Match{}, err
	}
	m, err := s.rewardResolver().Resolve(ctx, id, query)
	if err != nil {
		return resolve.Match{}, err
	}
	if m.Found() && m.Reward.BroadcasterID == "" {
		m.Reward.BroadcasterID = id
	}
	return m, nil
}

// rewardMatchError turns an unsuccessful match into an error for the exit code.
func rewardMatchError(query string, m resolve.Match) error {
	switch m.Outcome {
	case resolve.Resolved:
		return nil
	case resolve.Ambiguous:
		return fmt.Errorf("reward query %q matches %d rewards", query, len(m.Candidates))
	default:
		return fmt.Errorf("no reward matches %q", query)
	}
}

// rewardBodyFromFlags collects only the flags the user actually set.
func rewardBodyFromFlags(cmd *cobra.Command) helix.RewardBody {
	var body helix.RewardBody
	flags := cmd.Flags()

	if flags.Changed("title") {
		body.Title = &rewardTitleFlag
	}
	if flags.Changed("prompt") {
		body.Prompt = &rewardPromptFlag
	}
	if flags.Changed("cost") {
		body.Cost = &rewardCostFlag
	}
	if flags.Changed("user-input") {
		body.IsUserInputRequired = &rewardInputFlag
	}
	if flags.Changed("enable") || flags.Changed("disable") {
		enabled := rewardEnableFlag && !rewardDisableFlag
		body.IsEnabled = &enabled
	}
	if flags.Changed("pause") || flags.Changed("resume") {
		paused := rewardPauseFlag && !rewardResumeFlag
		body.IsPaused = &paused
	}
	return body
}
