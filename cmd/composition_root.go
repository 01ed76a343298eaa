package cmd

import (
	"log/slog"

	httpadapter "ecofleet/internal/adapters/in/http"
	"ecofleet/internal/adapters/out/mailer"
	"ecofleet/internal/adapters/out/postgres"
	"ecofleet/internal/adapters/out/redisqueue"
	"ecofleet/internal/adapters/out/webpush"
	"ecofleet/internal/core/application/dispatch"
	"ecofleet/internal/core/application/usecases/commands"
	"ecofleet/internal/core/application/usecases/queries"
	"ecofleet/internal/jobs"
	"ecofleet/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	metrics    *metrics.Recorder

	queue       *redisqueue.Queue
	pushChannel *webpush.Channel
	tracker     dispatch.OrderLifecycleTracker
	coordinator *dispatch.DispatchCoordinator
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
	recorder *metrics.Recorder,
	logger *slog.Logger,
) CompositionRoot {
	c := CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		metrics:    recorder,
		queue:      redisqueue.NewQueue(rdb, cfg.EmailQueueKey),
		tracker:    dispatch.NewOrderLifecycleTracker(logger),
	}

	c.pushChannel = webpush.NewChannel(webpush.Config{
		PublicKey:  cfg.WebPushPublicKey,
		PrivateKey: cfg.WebPushPrivateKey,
		Subscriber: cfg.WebPushAdminEmail,
		TTL:        cfg.WebPushTTL,
	}, logger)

	// The dispatch flow runs after commit, so its repositories work without a transaction.
	repos := c.uowFactory.CreateGorm()
	dispatcher := dispatch.NewNotificationDispatcher(
		repos.NotificationRepository(),
		repos.PushSubscriptionRepository(),
		c.pushChannel,
		recorder,
		logger,
	)
	c.coordinator = dispatch.NewDispatchCoordinator(repos.DriverRepository(), dispatcher, c.queue, recorder, logger)

	return c
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDeliveryOrderCommandHandler() commands.CreateDeliveryOrderCommandHandler {
	return commands.NewCreateDeliveryOrderCommandHandler(c.orderUoWFactory(), c.tracker, c.coordinator)
}

func (c *CompositionRoot) CreateUpdateDeliveryOrderCommandHandler() commands.UpdateDeliveryOrderCommandHandler {
	return commands.NewUpdateDeliveryOrderCommandHandler(c.orderUoWFactory(), c.tracker, c.coordinator)
}

func (c *CompositionRoot) CreateCreateDeliveryAreaCommandHandler() commands.CreateDeliveryAreaCommandHandler {
	var f commands.AreaUoWFactory = FuncAreaUoWFactory(func() commands.AreaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryAreaCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkNotificationsReadCommandHandler() commands.MarkNotificationsReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationsReadCommandHandler(f)
}

func (c *CompositionRoot) subscriptionUoWFactory() commands.SubscriptionUoWFactory {
	return FuncSubscriptionUoWFactory(func() commands.SubscriptionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterPushSubscriptionCommandHandler() commands.RegisterPushSubscriptionCommandHandler {
	return commands.NewRegisterPushSubscriptionCommandHandler(c.subscriptionUoWFactory())
}

func (c *CompositionRoot) CreateDeletePushSubscriptionCommandHandler() commands.DeletePushSubscriptionCommandHandler {
	return commands.NewDeletePushSubscriptionCommandHandler(c.subscriptionUoWFactory())
}

func (c *CompositionRoot) CreateSendDeliveryStatusEmailCommandHandler() commands.SendDeliveryStatusEmailCommandHandler {
	smtp := mailer.NewSMTPMailer(mailer.Config{
		Host:     c.cfg.SMTPHost,
		Port:     c.cfg.SMTPPort,
		Username: c.cfg.SMTPUsername,
		Password: c.cfg.SMTPPassword,
		From:     c.cfg.DefaultFromEmail,
	})
	return commands.NewSendDeliveryStatusEmailCommandHandler(
		c.uowFactory.CreateGorm().OrderRepository(),
		smtp,
		c.cfg.DefaultFromEmail,
		c.metrics,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetDeliveryOrderQueryHandler() queries.GetDeliveryOrderQueryHandler {
	return queries.NewGetDeliveryOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardSummaryQueryHandler() queries.GetDashboardSummaryQueryHandler {
	return queries.NewGetDashboardSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckCoverageQueryHandler() queries.CheckCoverageQueryHandler {
	return queries.NewCheckCoverageQueryHandler(c.uowFactory.CreateGorm().AreaRepository())
}

func (c *CompositionRoot) CreateListDeliveryAreasQueryHandler() queries.ListDeliveryAreasQueryHandler {
	return queries.NewListDeliveryAreasQueryHandler(c.uowFactory.CreateGorm().AreaRepository())
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	createOrder := c.CreateCreateDeliveryOrderCommandHandler()
	updateOrder := c.CreateUpdateDeliveryOrderCommandHandler()
	createArea := c.CreateCreateDeliveryAreaCommandHandler()
	markRead := c.CreateMarkNotificationsReadCommandHandler()
	register := c.CreateRegisterPushSubscriptionCommandHandler()
	unregister := c.CreateDeletePushSubscriptionCommandHandler()

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateDeliveryOrder:      &createOrder,
		UpdateDeliveryOrder:      &updateOrder,
		GetDeliveryOrder:         c.CreateGetDeliveryOrderQueryHandler(),
		CheckCoverage:            c.CreateCheckCoverageQueryHandler(),
		CreateDeliveryArea:       &createArea,
		ListDeliveryAreas:        c.CreateListDeliveryAreasQueryHandler(),
		GetNotifications:         c.CreateGetNotificationsQueryHandler(),
		MarkNotificationsRead:    &markRead,
		RegisterPushSubscription: &register,
		DeletePushSubscription:   &unregister,
		GetDashboardSummary:      c.CreateGetDashboardSummaryQueryHandler(),
	}, c.pushChannel, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	emailHandler := c.CreateSendDeliveryStatusEmailCommandHandler()
	return jobs.NewJobManager(
		jobs.NewEmailWorkerPool(c.queue, &emailHandler, c.cfg.EmailWorkers, jobs.DefaultClaimWait, c.logger),
		jobs.NewStaleTaskRecoveryJob(c.queue, jobs.DefaultVisibilityTimeout, c.logger),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAreaUoWFactory func() commands.AreaUoW

func (f FuncAreaUoWFactory) Create() commands.AreaUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncSubscriptionUoWFactory func() commands.SubscriptionUoW

func (f FuncSubscriptionUoWFactory) Create() commands.SubscriptionUoW {
	return f()
}
