package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/shouni/gemini-imagen-kit/pkg/config"
	"github.com/shouni/gemini-imagen-kit/pkg/credential"
	"github.com/shouni/gemini-imagen-kit/pkg/domain"
	"github.com/shouni/gemini-imagen-kit/pkg/generator"
	"github.com/spf13/cobra"
)

var configFile string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := &cobra.Command{
		Use:   "imagegen",
		Short: "Generate an image (or a description) from a text prompt with Gemini",
		Long: `imagegen sends a single prompt to the Gemini API and saves the generated image.

The API key is taken from GEMINI_API_KEY (or API_KEY, or api_key in the config file),
then from --api-key / --api-key-stdin.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to YAML config file")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(ratiosCmd())
	rootCmd.AddCommand(envCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var (
		aspectFlag  string
		modeFlag    string
		apiKeyFlag  string
		apiKeyStdin bool
		outFlag     string
		dataURIFlag bool
		base64Flag  bool
	)

	cmd := &cobra.Command{
		Use:   "generate [prompt]",
		Short: "Generate one image from a prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := args[0]

			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if modeFlag != "" {
				cfg.Mode = modeFlag
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			setupLogger(cfg)

			ratio := cfg.DefaultAspectRatio()
			if aspectFlag != "" {
				if ratio, err = domain.ParseAspectRatio(aspectFlag); err != nil {
					return err
				}
			}

			form := credential.NewFormSource()
			if apiKeyStdin {
				if apiKeyFlag, err = readLine(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("failed to read API key from stdin: %w", err)
				}
			}
			if apiKeyFlag != "" {
				if err := form.Submit(apiKeyFlag); err != nil {
					return err
				}
			}

			resolver := credential.NewResolver(
				credential.NewConfigSource(cfg.APIKey),
				form,
				credential.NewStaticSource(credential.EmbeddedAPIKey),
			)
			session, err := generator.NewSession(resolver, generator.NewBackendFactory(cfg.GeneratorOptions()))
			if err != nil {
				return err
			}

			res, err := session.Generate(cmd.Context(), prompt, ratio)
			if err != nil {
				slog.DebugContext(cmd.Context(), "generation failed", "category", domain.CategoryOf(err))
				return err
			}

			return writeResult(cmd.OutOrStdout(), res, prompt, outputOptions{
				path:    outFlag,
				dataURI: dataURIFlag,
				base64:  base64Flag,
			})
		},
	}

	cmd.Flags().StringVarP(&aspectFlag, "aspect-ratio", "a", "", "aspect ratio (1:1, 16:9, 9:16, 4:3, 3:4)")
	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "image, gemini-image or description")
	cmd.Flags().StringVar(&apiKeyFlag, "api-key", "", "API key used when none is configured")
	cmd.Flags().BoolVar(&apiKeyStdin, "api-key-stdin", false, "read the API key from the first line of stdin")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "output file (default: derived from the prompt)")
	cmd.Flags().BoolVar(&dataURIFlag, "data-uri", false, "print the image as a data URI instead of writing a file")
	cmd.Flags().BoolVar(&base64Flag, "base64", false, "print the raw base64 image bytes instead of writing a file")
	cmd.MarkFlagsMutuallyExclusive("data-uri", "base64", "out")

	return cmd
}

func ratiosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ratios",
		Short: "List supported aspect ratios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RATIO\tLABEL")
			for _, r := range domain.SupportedAspectRatios {
				fmt.Fprintf(w, "%s\t%s\n", r, r.Label())
			}
			return w.Flush()
		},
	}
}

func envCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Describe the environment variables read by imagegen",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.Usage())
		},
	}
}

type outputOptions struct {
	path    string
	dataURI bool
	base64  bool
}

func writeResult(w io.Writer, res *domain.GenerationResult, prompt string, opts outputOptions) error {
	if !res.IsImage() {
		if opts.path == "" {
			_, err := fmt.Fprintln(w, res.Text)
			return err
		}
		return os.WriteFile(opts.path, []byte(res.Text+"\n"), 0o644)
	}

	switch {
	case opts.dataURI:
		_, err := fmt.Fprintln(w, res.DataURI())
		return err
	case opts.base64:
		_, err := fmt.Fprintln(w, res.Base64())
		return err
	}

	path := opts.path
	if path == "" {
		path = res.FileName(prompt)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, res.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	_, err := fmt.Fprintf(w, "saved %s (%s, %d bytes)\n", path, res.MIMEType, len(res.Data))
	return err
}

func setupLogger(cfg *config.Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
