package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"TeleCareZone-Web/internal/config"
	"TeleCareZone-Web/internal/content"
	"TeleCareZone-Web/internal/domain/repository"
	"TeleCareZone-Web/internal/domain/service"
	"TeleCareZone-Web/internal/handler"
	"TeleCareZone-Web/internal/infrastructure/backend"
	"TeleCareZone-Web/internal/infrastructure/database"
	"TeleCareZone-Web/internal/logging"
	"TeleCareZone-Web/internal/render"
	repoImpl "TeleCareZone-Web/internal/repository"
	"TeleCareZone-Web/internal/server"
	"TeleCareZone-Web/internal/usecase"
	"TeleCareZone-Web/web"
)

type serveOptions struct {
	configFile string
	port       int
	backendURL string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var overrides []config.Option
			if cmd.Flags().Changed("port") {
				overrides = append(overrides, config.WithOverride("server.port", opts.port))
			}
			if cmd.Flags().Changed("backend-url") {
				overrides = append(overrides, config.WithOverride("backend.base_url", opts.backendURL))
			}
			return runServe(cmd.Context(), opts.configFile, overrides)
		},
	}

	cmd.Flags().StringVar(&opts.configFile, "config", "", "path to a YAML config file")
	cmd.Flags().IntVarP(&opts.port, "port", "p", 8080, "port to listen on")
	cmd.Flags().StringVar(&opts.backendURL, "backend-url", "", "backend API base URL")
	return cmd
}

func runServe(ctx context.Context, configFile string, overrides []config.Option) error {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(configFile, overrides...)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, err := newDirectorySource(ctx, cfg)
	if err != nil {
		return err
	}
	defer source.close()

	site, err := content.Load(web.FS, content.DefaultPath)
	if err != nil {
		return err
	}

	templates, err := templatesFS(cfg)
	if err != nil {
		return err
	}
	renderer, err := render.New(templates)
	if err != nil {
		return err
	}

	static, err := server.StaticFS(web.FS)
	if err != nil {
		return err
	}

	landingUseCase := usecase.NewLandingUseCase(source.repo, service.NewDirectoryService(), logger)
	contactUseCase := usecase.NewContactUseCase()

	proxyHandler, err := handler.NewProxyHandler(cfg.Backend.BaseURL, logger)
	if err != nil {
		return err
	}

	router := server.NewRouter(server.Dependencies{
		Pages:    handler.NewPagesHandler(landingUseCase, site, cfg.Site.Hostname, logger),
		Contact:  handler.NewContactHandler(contactUseCase, site, logger),
		Health:   handler.NewHealthHandler(backend.NewHealthProber(cfg.Backend.BaseURL, cfg.Backend.HealthTimeout), source.database),
		Proxy:    proxyHandler,
		Site:     site,
		Renderer: renderer,
		Static:   static,
		Logger:   logger,
	})

	logger.Info("configuration loaded",
		zap.String("addr", cfg.Addr()),
		zap.String("backend", cfg.Backend.BaseURL),
		zap.String("directory_source", cfg.Directory.Source),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx, cfg.Addr(), router, cfg.Server.ShutdownTimeout, logger)
	})
	if cfg.Server.TemplatesDir != "" {
		g.Go(func() error {
			return renderer.Watch(gctx, cfg.Server.TemplatesDir, logger)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}

// templatesFS reads templates from disk when a directory is configured.
func templatesFS(cfg *config.Config) (fs.FS, error) {
	if cfg.Server.TemplatesDir != "" {
		return os.DirFS(cfg.Server.TemplatesDir), nil
	}
	return render.TemplatesFS(web.FS)
}

// directorySource is the configured professionals repository and its resources.
type directorySource struct {
	repo     repository.ProfessionalsRepository
	database handler.DatabaseChecker
	close    func()
}

func newDirectorySource(ctx context.Context, cfg *config.Config) (*directorySource, error) {
	switch cfg.Directory.Source {
	case config.SourceSupabase:
		client, err := database.NewSupabaseClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
		if err != nil {
			return nil, err
		}
		return &directorySource{repo: repoImpl.NewSupabaseProfessionalsRepository(client), close: func() {}}, nil

	case config.SourcePostgres:
		client, err := database.NewPostgreSQLClient(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		return &directorySource{
			repo:     repoImpl.NewPostgresProfessionalsRepository(client),
			database: client,
			close:    func() { _ = client.Close() },
		}, nil

	case config.SourceAPI:
		return &directorySource{repo: backend.NewProfessionalsClient(cfg.Backend.BaseURL, cfg.Backend.Timeout), close: func() {}}, nil
	}

	return nil, fmt.Errorf("unknown directory source %q", cfg.Directory.Source)
}
