package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpcontext "github.com/archeolens/archeolens-server/internal/api/http/context"
	"github.com/archeolens/archeolens-server/internal/api/http/router"
	"github.com/archeolens/archeolens-server/internal/config"
	"github.com/archeolens/archeolens-server/internal/identity"
	"github.com/archeolens/archeolens-server/internal/logger"
	"github.com/archeolens/archeolens-server/internal/model"
	"github.com/archeolens/archeolens-server/internal/repository/memory"
	"github.com/archeolens/archeolens-server/internal/repository/postgres"
	"github.com/archeolens/archeolens-server/internal/server"
	"github.com/archeolens/archeolens-server/internal/service"
	storage "github.com/archeolens/archeolens-server/internal/storage/minio"
	"github.com/archeolens/archeolens-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	kvRepo, accountRepo, closeStores, err := newStores(ctx, cfg.Database.DSN, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer closeStores()

	tokenManager := token.NewJWT(cfg.JWT.Secret)

	identityProvider := identity.NewProvider(accountRepo, tokenManager, logger)
	ctxMgr := httpcontext.NewManager()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	profileService := service.NewProfile(kvRepo, identityProvider, logger)
	siteService := service.NewSite(kvRepo, logger)
	artifactService := service.NewArtifact(kvRepo, logger)
	photoService := service.NewPhoto(storageClient, logger)

	r := router.New(
		profileService,
		siteService,
		artifactService,
		photoService,
		identityProvider,
		ctxMgr,
		cfg.HTTP.Prefix,
		logger,
	)

	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// newStores selects the persistence backend. An empty DSN runs the server on
// the in-memory stores; records and accounts then live only for the process
// lifetime.
func newStores(ctx context.Context, dsn string, logger *logger.Logger) (model.KVStore, model.AccountStore, func(), error) {
	if dsn == "" {
		logger.Info("no database DSN configured, using in-memory stores")
		return memory.NewKVStore(), memory.NewAccountStore(), func() {}, nil
	}

	db, err := postgres.NewConection(ctx, dsn)
	if err != nil {
		return nil, nil, nil, err
	}
	return postgres.NewKVRepository(db), postgres.NewAccountRepository(db), func() { _ = db.Close() }, nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
