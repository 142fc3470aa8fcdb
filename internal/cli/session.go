package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jokarl/helixctl/internal/config"
	"github.com/jokarl/helixctl/internal/helix"
	"github.com/jokarl/helixctl/internal/output"
	"github.com/jokarl/helixctl/internal/resolve"
)

// errNoToken is returned when neither --token nor HELIX_TOKEN is set.
var errNoToken = errors.New("no access token: pass --token or set HELIX_TOKEN")

// session bundles everything a command needs to talk to Helix as the
// authenticated user.
type session struct {
	cfg      *config.Config
	client   *helix.Client
	logger   hclog.Logger
	user     *helix.TokenInfo
	renderer output.Renderer
	out      io.Writer
}

// newLogger creates the process logger. Warnings (such as tag locale
// fallbacks) always reach stderr; --verbose adds request tracing.
func newLogger(w io.Writer) hclog.Logger {
	level := hclog.Warn
	if verboseFlag {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "helixctl",
		Level:  level,
		Output: w,
	})
}

// newSession loads configuration, validates the token and prepares a client.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr())
	if cfg.ConfigPath() != "" {
		logger.Debug("loaded config", "path", cfg.ConfigPath())
	}

	token := tokenFlag
	if token == "" {
		token = cfg.Token
	}
	if token == "" {
		return nil, errNoToken
	}

	client := helix.NewClient(helix.Options{
		Token:    token,
		ClientID: cfg.API.ClientID,
		BaseURL:  cfg.API.BaseURL,
		AuthURL:  cfg.API.AuthURL,
		Logger:   logger,
	})

	user, err := client.ValidateToken(cmd.Context())
	if err != nil {
		if helix.IsUnauthorized(err) {
			return nil, fmt.Errorf("access token rejected: %w", err)
		}
		return nil, err
	}
	logger.Debug("authenticated", "login", user.Login, "user_id", user.UserID)

	format := output.Format(formatFlag)
	if format == "" {
		format = output.Format(cfg.Output.Format)
	}
	if !slices.Contains(output.ValidFormats(), string(format)) {
		return nil, fmt.Errorf("invalid output format: %s (must be one of %s)", format, strings.Join(output.ValidFormats(), ", "))
	}
	mode := colorFlag
	if mode == "" {
		mode = cfg.Output.Color
	}

	out := cmd.OutOrStdout()
	return &session{
		cfg:      cfg,
		client:   client,
		logger:   logger,
		user:     user,
		renderer: output.NewRenderer(format, shouldUseColor(mode, out)),
		out:      out,
	}, nil
}

// broadcasterID resolves the --broadcaster/--broadcaster-id flags, falling
// back to the configured default broadcaster and then to the token's owner.
func (s *session) broadcasterID(ctx context.Context, login, id string) (string, error) {
	if login == "" && id == "" {
		login = s.cfg.Defaults.Broadcaster
	}
	r := resolve.NewBroadcasterResolver(s.client, s.user.UserID)
	return r.Resolve(ctx, resolve.IdentFromFlags(login, id))
}

// locale returns the normalized --locale value or the configured default.
func (s *session) locale(flag string) (string, error) {
	if flag == "" {
		return s.cfg.Defaults.Locale, nil
	}
	return config.NormalizeLocale(flag)
}

func (s *session) tagResolver() *resolve.TagResolver {
	r := resolve.NewTagResolver(s.client, s.logger)
	r.MaxPages = s.cfg.API.MaxPages
	return r
}

func (s *session) rewardResolver() *resolve.RewardResolver {
	return resolve.NewRewardResolver(s.client, s.logger)
}

func shouldUseColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
}

// addBroadcasterFlags registers --broadcaster and --broadcaster-id on cmd.
func addBroadcasterFlags(cmd *cobra.Command, login, id *string) {
	cmd.Flags().StringVarP(login, "broadcaster", "b", "", "Broadcaster login (default: the token's owner)")
	cmd.Flags().StringVar(id, "broadcaster-id", "", "Broadcaster ID; takes precedence over --broadcaster")
}
