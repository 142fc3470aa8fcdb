package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	tagsLocaleFlag        string
	tagsBroadcasterFlag   string
	tagsBroadcasterIDFlag string
	tagsStrictFlag        bool
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Look up and replace stream tags",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tag catalog",
	Args:  cobra.NoArgs,
	RunE:  runTagsList,
}

var tagsResolveCmd = &cobra.Command{
	Use:   "resolve <name>...",
	Short: "Resolve tag names to tag IDs",
	Long: `Resolve tag names to tag IDs without changing anything.

Names are matched case-insensitively in --locale first and in English second.
Auto-generated tags are never matched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTagsResolve,
}

var tagsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the tags currently set on a channel",
	Args:  cobra.NoArgs,
	RunE:  runTagsShow,
}

var tagsSetCmd = &cobra.Command{
	Use:   "set [name]...",
	Short: "Replace the tags of a channel",
	Long: `Replace the manually set tags of a channel.

Names that do not match any tag are reported and skipped unless --strict is
given. Calling set without names removes all tags.`,
	RunE: runTagsSet,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.AddCommand(tagsListCmd, tagsResolveCmd, tagsShowCmd, tagsSetCmd)

	tagsCmd.PersistentFlags().StringVarP(&tagsLocaleFlag, "locale", "l", "", "Locale of the tag names (default from config, en-us)")
	addBroadcasterFlags(tagsShowCmd, &tagsBroadcasterFlag, &tagsBroadcasterIDFlag)
	addBroadcasterFlags(tagsSetCmd, &tagsBroadcasterFlag, &tagsBroadcasterIDFlag)
	tagsSetCmd.Flags().BoolVar(&tagsStrictFlag, "strict", false, "Fail if any name does not match a tag")
}

func runTagsList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	locale, err := s.locale(tagsLocaleFlag)
	if err != nil {
		return err
	}

	tags, err := s.tagResolver().FetchAllTags(cmd.Context())
	if err != nil {
		return err
	}
	return s.renderer.RenderTags(s.out, tags, locale)
}

func runTagsResolve(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	locale, err := s.locale(tagsLocaleFlag)
	if err != nil {
		return err
	}

	report, err := s.tagResolver().ResolveReport(cmd.Context(), args, locale)
	if err != nil {
		return err
	}
	return s.renderer.RenderTagReport(s.out, report)
}

func runTagsShow(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	locale, err := s.locale(tagsLocaleFlag)
	if err != nil {
		return err
	}
	id, err := s.broadcasterID(cmd.Context(), tagsBroadcasterFlag, tagsBroadcasterIDFlag)
	if err != nil {
		return err
	}

	tags, err := s.client.GetStreamTags(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get tags of %s: %w", id, err)
	}
	return s.renderer.RenderTags(s.out, tags, locale)
}

func runTagsSet(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	locale, err := s.locale(tagsLocaleFlag)
	if err != nil {
		return err
	}
	id, err := s.broadcasterID(cmd.Context(), tagsBroadcasterFlag, tagsBroadcasterIDFlag)
	if err != nil {
		return err
	}

	var ids []string
	if len(args) > 0 {
		report, err := s.tagResolver().ResolveReport(cmd.Context(), args, locale)
		if err != nil {
			return err
		}
		if err := s.renderer.RenderTagReport(s.out, report); err != nil {
			return err
		}
		if len(report.Unmatched) > 0 && tagsStrictFlag {
			return fmt.Errorf("unknown tags: %s", strings.Join(report.Unmatched, ", "))
		}
		ids = report.IDs()
	}

	if err := s.client.ReplaceStreamTags(cmd.Context(), id, ids); err != nil {
		return fmt.Errorf("failed to replace tags: %w", err)
	}
	s.logger.Info("replaced stream tags", "broadcaster_id", id, "tags", len(ids))
	return nil
}
