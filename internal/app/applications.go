package app

import (
	"application-service/internal/catalog"
	"application-service/internal/config"
	"application-service/internal/decision"
	"application-service/internal/messaging/notifier"
	"application-service/internal/permission"
	"application-service/internal/presence"
	"application-service/internal/repository"
	"application-service/internal/service"
	"application-service/internal/sweeper"
	"application-service/internal/utils/locking"
	"application-service/internal/wizard"
	"context"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"
)

func Run(cfg config.Config, logger *zap.SugaredLogger) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	wg := &sync.WaitGroup{}

	// The repository, notifier and presence sink outlive the request surface so
	// in-flight work can still reach them during shutdown.
	delayedCtx, delayedCancel := context.WithCancel(context.Background())
	delayedWg := &sync.WaitGroup{}

	ctl, err := catalog.Load(logger, cfg.CatalogPath)
	if err != nil {
		logger.Fatalw("failed to load role catalog", "error", err)
	}

	repo, err := repository.NewMongoRepository(delayedCtx, logger, delayedWg, cfg.MongoDB)
	if err != nil {
		logger.Fatalw("failed to create repository", "error", err)
	}

	notif := notifier.NewKafkaNotifier(delayedCtx, delayedWg, logger, cfg.Kafka)
	sink := presence.NewRedisSink(delayedCtx, delayedWg, logger, cfg.Redis)
	perms := permission.NewHTTPClient(logger, cfg.PermissionServiceURL)

	// One lock instance: wizard steps, staff decisions and sweeper passes for
	// the same player never interleave.
	locks := locking.NewKeyedMutex()

	wiz := wizard.New(logger, ctl, repo, perms, sink, notif, locks)
	proc := decision.New(logger, ctl, repo, perms, sink, notif, locks)

	sweeper.New(logger, ctl, repo, perms, notif, locks, cfg.Sweep).Run(ctx, wg)

	service.RunServices(ctx, logger, wg, cfg, ctl, wiz, proc, repo)

	wg.Wait()
	logger.Info("shutting down")

	logger.Info("shutting down delayed services")
	delayedCancel()
	delayedWg.Wait()
}
