package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jokarl/helixctl/internal/config"
	"github.com/jokarl/helixctl/internal/helix"
)

var (
	channelBroadcasterFlag   string
	channelBroadcasterIDFlag string
	channelTitleFlag         string
	channelLanguageFlag      string
	channelCategoryFlag      string
	channelTagsFlag          []string
	channelLocaleFlag        string
)

var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Update channel information",
}

var channelSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set title, language, category and tags",
	Long: `Set the title, broadcast language, category and tags of a channel.

--category takes a category name; the first search result is used.
--tags takes tag names in --locale and replaces all manually set tags.`,
	Example: `  helixctl channel set --title "Speedruns" --category "Celeste" --tags speedrun,english`,
	Args:    cobra.NoArgs,
	RunE:    runChannelSet,
}

func init() {
	rootCmd.AddCommand(channelCmd)
	channelCmd.AddCommand(channelSetCmd)

	addBroadcasterFlags(channelSetCmd, &channelBroadcasterFlag, &channelBroadcasterIDFlag)
	channelSetCmd.Flags().StringVar(&channelTitleFlag, "title", "", "Stream title")
	channelSetCmd.Flags().StringVar(&channelLanguageFlag, "language", "", "Broadcast language (e.g. en, de)")
	channelSetCmd.Flags().StringVar(&channelCategoryFlag, "category", "", "Category name")
	channelSetCmd.Flags().StringSliceVar(&channelTagsFlag, "tags", nil, "Comma-separated tag names")
	channelSetCmd.Flags().StringVarP(&channelLocaleFlag, "locale", "l", "", "Locale of the tag names (default from config, en-us)")
}

func runChannelSet(cmd *cobra.Command, args []string) error {
	tagsChanged := cmd.Flags().Changed("tags")
	if channelTitleFlag == "" && channelLanguageFlag == "" && channelCategoryFlag == "" && !tagsChanged {
		return errors.New("nothing to update: pass at least one of --title, --language, --category, --tags")
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	id, err := s.broadcasterID(ctx, channelBroadcasterFlag, channelBroadcasterIDFlag)
	if err != nil {
		return err
	}

	info := helix.ChannelInfo{Title: channelTitleFlag}
	if channelLanguageFlag != "" {
		lang, err := config.NormalizeLocale(channelLanguageFlag)
		if err != nil {
			return err
		}
		info.Language = lang
	}
	if channelCategoryFlag != "" {
		category, err := s.client.SearchCategory(ctx, channelCategoryFlag)
		if err != nil {
			return fmt.Errorf("failed to search category %q: %w", channelCategoryFlag, err)
		}
		if category == nil {
			return fmt.Errorf("no category matches %q", channelCategoryFlag)
		}
		s.logger.Debug("resolved category", "query", channelCategoryFlag, "name", category.Name, "id", category.ID)
		info.CategoryID = category.ID
	}

	// Resolve every tag before the first write so a failed lookup leaves the
	// channel untouched.
	var tagIDs []string
	if tagsChanged {
		if tagIDs, err = s.resolveChannelTags(ctx); err != nil {
			return err
		}
	}

	if !info.IsEmpty() {
		if err := s.client.ModifyChannelInformation(ctx, id, info); err != nil {
			return fmt.Errorf("failed to modify channel information: %w", err)
		}
		s.logger.Info("updated channel information", "broadcaster_id", id)
	}

	if !tagsChanged {
		return nil
	}
	if err := s.client.ReplaceStreamTags(ctx, id, tagIDs); err != nil {
		return fmt.Errorf("failed to replace tags: %w", err)
	}
	s.logger.Info("replaced stream tags", "broadcaster_id", id, "tags", len(tagIDs))
	return nil
}

// resolveChannelTags resolves --tags in --locale. An empty list clears the tags.
func (s *session) resolveChannelTags(ctx context.Context) ([]string, error) {
	locale, err := s.locale(channelLocaleFlag)
	if err != nil {
		return nil, err
	}
	names := nonEmpty(channelTagsFlag)
	if len(names) == 0 {
		return nil, nil
	}

	report, err := s.tagResolver().ResolveReport(ctx, names, locale)
	if err != nil {
		return nil, err
	}
	if err := s.renderer.RenderTagReport(s.out, report); err != nil {
		return nil, err
	}
	return report.IDs(), nil
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
