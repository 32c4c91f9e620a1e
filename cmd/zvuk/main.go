// Command zvuk is a thin CLI over the client package, mostly useful for
// poking at the API during development.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/zvuklib/zvuk-go/pkg/models"
	"github.com/zvuklib/zvuk-go/pkg/zvuk"
)

var (
	flagToken   string
	flagProxy   string
	flagTimeout time.Duration
	flagVerbose bool
	flagLogFile string
)

func main() {
	// Missing .env is fine; flags and real env still apply.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "zvuk",
		Short:         "Query the Zvuk streaming API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagToken, "token", os.Getenv("ZVUK_TOKEN"), "auth token (defaults to ZVUK_TOKEN)")
	root.PersistentFlags().StringVar(&flagProxy, "proxy", os.Getenv("ZVUK_PROXY"), "proxy URL (defaults to ZVUK_PROXY)")
	root.PersistentFlags().DurationVar(&flagTimeout, "timeout", 10*time.Second, "per-request timeout")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging to stderr")
	root.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "also log to this file, with rotation")

	root.AddCommand(searchCmd(), trackCmd(), streamURLCmd(), likeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newLogger builds the CLI logger: console on stderr when verbose, plus a
// rotating file sink when --log-file is set.
func newLogger() *zap.Logger {
	var cores []zapcore.Core
	encCfg := zap.NewDevelopmentEncoderConfig()

	if flagVerbose {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			zapcore.DebugLevel,
		))
	}
	if flagLogFile != "" {
		sink := &lumberjack.Logger{
			Filename:   flagLogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(sink),
			zapcore.DebugLevel,
		))
	}
	if len(cores) == 0 {
		return zap.NewNop()
	}
	return zap.New(zapcore.NewTee(cores...))
}

// newClient wires the client from flags, bootstrapping an anonymous token
// when none is configured.
func newClient(ctx context.Context) (*zvuk.Client, error) {
	opts := []zvuk.Option{
		zvuk.WithTimeout(flagTimeout),
		zvuk.WithLogger(newLogger()),
	}
	if flagProxy != "" {
		opts = append(opts, zvuk.WithProxy(flagProxy))
	}

	token := flagToken
	if token == "" {
		anon, err := zvuk.GetAnonymousToken(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("fetch anonymous token: %w", err)
		}
		token = anon
	}
	opts = append(opts, zvuk.WithToken(token))

	return zvuk.NewClient(opts...)
}

func searchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search tracks, artists, releases and more",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			params := zvuk.NewSearchParams()
			params.Limit = limit
			result, err := client.Search(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			printSearchResult(cmd, result)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", zvuk.DefaultSearchLimit, "results per category")
	return cmd
}

func printSearchResult(cmd *cobra.Command, result *models.SearchResult) {
	if result.Tracks != nil {
		for _, t := range result.Tracks.Items {
			cmd.Printf("track\t%s\t%s — %s\n", t.ID, joinArtists(t.Artists), t.Title)
		}
	}
	if result.Artists != nil {
		for _, a := range result.Artists.Items {
			cmd.Printf("artist\t%s\t%s\n", a.ID, a.Title)
		}
	}
	if result.Releases != nil {
		for _, r := range result.Releases.Items {
			cmd.Printf("release\t%s\t%s\n", r.ID, r.Title)
		}
	}
	if result.Playlists != nil {
		for _, p := range result.Playlists.Items {
			cmd.Printf("playlist\t%s\t%s\n", p.ID, p.Title)
		}
	}
	if result.Podcasts != nil {
		for _, p := range result.Podcasts.Items {
			cmd.Printf("podcast\t%s\t%s\n", p.ID, p.Title)
		}
	}
}

func joinArtists(artists []models.SimpleArtist) string {
	out := ""
	for i, a := range artists {
		if i > 0 {
			out += ", "
		}
		out += a.Title
	}
	return out
}

func trackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track <id>",
		Short: "Show a track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			track, err := client.GetTrack(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Printf("%s — %s (%s)\n", joinArtists(track.Artists), track.Title, track.DurationText())
			if track.Release != nil {
				cmd.Printf("release: %s (%s)\n", track.Release.Title, track.Release.Date)
			}
			return nil
		},
	}
}

func streamURLCmd() *cobra.Command {
	var quality string
	cmd := &cobra.Command{
		Use:   "stream-url <track-id>",
		Short: "Resolve the direct media URL for a track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			u, err := client.GetStreamURL(cmd.Context(), args[0], models.Quality(quality))
			if err != nil {
				return err
			}
			cmd.Println(u)
			return nil
		},
	}
	cmd.Flags().StringVar(&quality, "quality", string(models.QualityHigh), "mid, high or flacdrm")
	return cmd
}

func likeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <track-id>",
		Short: "Add a track to the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.LikeTrack(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("liked", args[0])
			return nil
		},
	}
}
