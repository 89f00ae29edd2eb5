package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/nose-embedder/internal/cfg"
	v1Grpc "github.com/DRSN-tech/nose-embedder/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/nose-embedder/internal/delivery/v1/http"
	"github.com/DRSN-tech/nose-embedder/internal/infrastructure/model"
	"github.com/DRSN-tech/nose-embedder/internal/infrastructure/onnx"
	"github.com/DRSN-tech/nose-embedder/internal/infrastructure/preprocess"
	s3Repo "github.com/DRSN-tech/nose-embedder/internal/repository/minio"
	"github.com/DRSN-tech/nose-embedder/internal/usecase"
	"github.com/DRSN-tech/nose-embedder/pkg/clients"
	"github.com/DRSN-tech/nose-embedder/pkg/closer"
	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"github.com/DRSN-tech/nose-embedder/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App связывает все слои сервиса и управляет их жизненным циклом.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	engine  *onnx.Engine
	grpcSrv *v1Grpc.GRPCServer
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	vectorRepo := s3Repo.NewVectorRepo(minioClient, cfg.Minio)

	downloader := model.NewDownloader(minioClient, cfg.Minio.BucketName, cfg.Model, log)
	engine := onnx.NewEngine(downloader, cfg.Model, log)
	preprocessor := preprocess.NewImagePreprocessor(cfg.Preprocess)

	embUC := usecase.NewEmbedderUC(engine, preprocessor, imageRepo, vectorRepo, cfg.Model, log)

	grpcSrv := v1Grpc.NewGRPCServer(cfg.Grpc, log)
	grpcSrv.RegisterServices(embUC)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(embUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	// Порядок закрытия — LIFO: HTTP, затем gRPC, затем движок.
	cl := closer.NewCloser(2 * time.Second)
	cl.Add(func(_ context.Context) error {
		return engine.Close()
	})
	cl.Add(grpcSrv.Stop)
	cl.Add(httpSrv.Stop)

	return &App{
		cfg:     cfg,
		logger:  log,
		engine:  engine,
		grpcSrv: grpcSrv,
		httpSrv: httpSrv,
		closer:  cl,
	}, nil
}

// Run загружает модель, запускает серверы и блокируется до сигнала остановки
// или фатальной ошибки одного из серверов.
func (a *App) Run() error {
	// Модель загружается до открытия портов: сервис без модели бесполезен,
	// а readiness-проба не должна видеть полуготовый процесс.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer loadCancel()
	if err := a.engine.Load(loadCtx); err != nil {
		a.logger.Errorf(err, "failed to load model")
		return err
	}

	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			grpcErrCh <- err
		}
	}()

	httpErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			httpErrCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case appErr = <-httpErrCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}
