package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/sushihentaime/inkpost/internal/analyticsservice"
	"github.com/sushihentaime/inkpost/internal/blogservice"
	"github.com/sushihentaime/inkpost/internal/commentservice"
	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/mailservice"
	"github.com/sushihentaime/inkpost/internal/memdb"
	"github.com/sushihentaime/inkpost/internal/notificationservice"
	"github.com/sushihentaime/inkpost/internal/userservice"
)

type application struct {
	ctx                 context.Context
	config              *Config
	logger              *slog.Logger
	userService         *userservice.UserService
	blogService         *blogservice.BlogService
	commentService      *commentservice.CommentService
	notificationService *notificationservice.NotificationService
	analyticsService    *analyticsservice.AnalyticsService
	mailService         *mailservice.MailService
	broker              *common.MessageBroker
}

func main() {
	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db := memdb.New(memdb.WithLatency(cfg.MockAPIDelay))

	// The session user id is the only state that outlives a restart
	cache, err := common.NewFileCache(cfg.SessionFile, common.NoExpiration, 0)
	if err != nil {
		logger.Error("failed to load the session", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := &application{
		ctx:    ctx,
		config: cfg,
		logger: logger,
	}

	// Notifications are only published when a message broker is configured
	var producer common.MessageProducer
	if cfg.MQHost != "" {
		broker, err := common.NewMessageBroker(common.BrokerURI(cfg.MQUser, cfg.MQPassword, cfg.MQHost, cfg.MQPort))
		if err != nil {
			logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer broker.Close()

		err = common.SetupNotificationExchange(broker)
		if err != nil {
			logger.Error("failed to setup the notification exchange", slog.String("error", err.Error()))
			os.Exit(1)
		}

		app.broker = broker
		producer = broker

		if cfg.MailHost != "" {
			app.mailService = mailservice.NewMailService(broker, cfg.MailHost, cfg.MailUser, cfg.MailPassword, cfg.MailSender, cfg.MailPort, cfg.AppBaseURL, logger)
			defer app.mailService.Close()

			app.mailService.SendNotificationEmails()
		}
	} else {
		logger.Info("message broker not configured, notifications stay in-app")
	}

	// Initialize the services
	app.notificationService = notificationservice.NewNotificationService(db, producer, logger)
	app.userService = userservice.NewUserService(db, cache, app.notificationService)
	app.blogService = blogservice.NewBlogService(db, app.notificationService)
	app.commentService = commentservice.NewCommentService(db, app.notificationService)
	app.analyticsService = analyticsservice.NewAnalyticsService(db)

	// Start the HTTP server
	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
