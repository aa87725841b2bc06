package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-apinsible/internal/apidoc/apipie"
	"github.com/goliatone/go-apinsible/internal/apidoc/loader"
	"github.com/goliatone/go-apinsible/internal/logging"
	"github.com/goliatone/go-apinsible/internal/openapi/parser"
	"github.com/goliatone/go-apinsible/internal/prompt"
	"github.com/goliatone/go-apinsible/pkg/apidoc"
	"github.com/goliatone/go-apinsible/pkg/generator"
	"github.com/goliatone/go-apinsible/pkg/render"
)

const (
	serverEnv     = "APINSIBLE_SERVER"
	defaultServer = "http://localhost:3000"

	formatApipie  = "apipie"
	formatOpenAPI = "openapi"
)

type rootOptions struct {
	server      string
	moduleType  *choiceValue
	format      *choiceValue
	apidocPath  string
	apiVersion  int
	templates   string
	output      string
	verifySSL   bool
	timeout     time.Duration
	interactive bool
	verbose     bool
}

// RootCmd builds the apinsible command. driver answers --interactive prompts.
func RootCmd(driver prompt.Driver) *cobra.Command {
	registry := generator.DefaultRegistry()
	opts := &rootOptions{
		moduleType: newChoiceValue("type", "resource", registry.List()),
		format:     newChoiceValue("format", formatApipie, []string{formatApipie, formatOpenAPI}),
	}

	cmd := &cobra.Command{
		Use:   "apinsible [resource]",
		Short: "Generate Foreman Ansible module boilerplate",
		Long: "Generate the boilerplate of a theforeman.foreman Ansible module from the\n" +
			"API documentation a Foreman server publishes.",
		Example: "  apinsible domain --server https://foreman.example.com\n" +
			"  apinsible host --type info --apidoc ./v2.json",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, registry, driver, args)
		},
	}

	server := os.Getenv(serverEnv)
	if server == "" {
		server = defaultServer
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.server, "server", server, "Foreman server URL (env "+serverEnv+")")
	flags.Var(opts.moduleType, "type", "module type: "+strings.Join(registry.List(), ", "))
	flags.Var(opts.format, "format", "documentation format: apipie, openapi")
	flags.StringVar(&opts.apidocPath, "apidoc", "", "read the API documentation from a file or URL instead of the server")
	flags.IntVar(&opts.apiVersion, "api-version", 2, "apipie documentation version")
	flags.StringVar(&opts.templates, "templates", "", "directory with template overrides")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	flags.BoolVar(&opts.verifySSL, "verify-ssl", false, "verify the server TLS certificate")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "HTTP request timeout")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "prompt for missing settings")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *rootOptions, registry *generator.Registry, driver prompt.Driver, args []string) error {
	stderr := cmd.ErrOrStderr()
	logger := logging.Setup(stderr, logging.Options{
		Verbose: opts.verbose,
		NoColor: !isTerminal(stderr),
	})

	answers := prompt.Answers{}
	if len(args) == 1 {
		answers.Resource = strings.TrimSpace(args[0])
	}
	if cmd.Flags().Changed("type") || !opts.interactive {
		answers.ModuleType = opts.moduleType.String()
	}
	if opts.interactive {
		if err := prompt.Ask(cmd.Context(), driver, &answers, registry.List(), false); err != nil {
			return err
		}
	}
	if answers.Resource == "" {
		return errors.New("resource name is required")
	}

	provider, err := newProvider(opts, logger)
	if err != nil {
		return err
	}

	var renderOpts []render.Option
	if opts.templates != "" {
		renderOpts = append(renderOpts, render.WithTemplateDir(opts.templates))
	}
	renderer, err := render.New(renderOpts...)
	if err != nil {
		return err
	}

	gen := generator.New(
		generator.WithProvider(provider),
		generator.WithRenderer(renderer),
		generator.WithRegistry(registry),
		generator.WithLogger(logger),
	)
	out, err := gen.Generate(cmd.Context(), generator.Request{
		Resource:   answers.Resource,
		ModuleType: answers.ModuleType,
	})
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("module written", "path", opts.output)
	return nil
}

func newProvider(opts *rootOptions, logger *slog.Logger) (apidoc.Provider, error) {
	docLoader := loader.New(apidoc.NewLoaderOptions(
		apidoc.WithRequestTimeout(opts.timeout),
		apidoc.WithTLSVerification(opts.verifySSL),
	))

	src, err := documentSource(opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("using api documentation", "location", src.Location(), "format", opts.format.String())

	if opts.format.String() == formatOpenAPI {
		return parser.NewProvider(docLoader, src), nil
	}
	return apipie.New(docLoader, src), nil
}

func documentSource(opts *rootOptions) (apidoc.Source, error) {
	path := strings.TrimSpace(opts.apidocPath)
	switch {
	case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
		return apidoc.SourceFromURL(path)
	case path != "":
		return apidoc.SourceFromFile(path), nil
	case opts.format.String() == formatOpenAPI:
		return nil, errors.New("--apidoc is required with --format openapi")
	default:
		return apidoc.ApipieSource(opts.server, opts.apiVersion)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
