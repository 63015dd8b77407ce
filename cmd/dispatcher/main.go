package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/api/handlers/alert"
	"github.com/openfleet/alert-dispatcher/internal/api/router"
	"github.com/openfleet/alert-dispatcher/internal/api/server"
	"github.com/openfleet/alert-dispatcher/internal/config"
	"github.com/openfleet/alert-dispatcher/internal/dedup"
	"github.com/openfleet/alert-dispatcher/internal/dispatch"
	"github.com/openfleet/alert-dispatcher/internal/feedback"
	"github.com/openfleet/alert-dispatcher/internal/history"
	"github.com/openfleet/alert-dispatcher/internal/model"
	"github.com/openfleet/alert-dispatcher/internal/notifier"
	"github.com/openfleet/alert-dispatcher/internal/profile"
	"github.com/openfleet/alert-dispatcher/internal/registry"
	"github.com/openfleet/alert-dispatcher/internal/repository/bufferstore"
	"github.com/openfleet/alert-dispatcher/internal/repository/configstore"
	"github.com/openfleet/alert-dispatcher/internal/repository/historystore"
	"github.com/openfleet/alert-dispatcher/internal/repository/inboxstore"
	"github.com/openfleet/alert-dispatcher/internal/repository/retrystore"
	"github.com/openfleet/alert-dispatcher/internal/repository/templatestore"
	"github.com/openfleet/alert-dispatcher/internal/retrycoord"
	"github.com/openfleet/alert-dispatcher/internal/schedule"
	"github.com/openfleet/alert-dispatcher/internal/scheduler"
	"github.com/openfleet/alert-dispatcher/internal/stream"
	"github.com/openfleet/alert-dispatcher/internal/suppression"
	"github.com/openfleet/alert-dispatcher/internal/template"
	"github.com/openfleet/alert-dispatcher/internal/worker"
	"github.com/openfleet/alert-dispatcher/pkg/email"
	"github.com/openfleet/alert-dispatcher/pkg/ivm"
	"github.com/openfleet/alert-dispatcher/pkg/push"
	"github.com/openfleet/alert-dispatcher/pkg/sendgrid"
	"github.com/openfleet/alert-dispatcher/pkg/sms"
	"github.com/openfleet/alert-dispatcher/pkg/webhook"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	schedQueue, err := scheduler.NewQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create scheduler queue")
	}

	retryQueue, err := retrycoord.NewQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create retry queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	configRepo := configstore.NewRepository(db)
	historyRepo := historystore.NewRepository(db)
	bufferRepo := bufferstore.NewRepository(db)
	retryRepo := retrystore.NewRepository(db)
	inboxRepo := inboxstore.NewRepository(db)
	templateRepo := templatestore.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	inboundConsumer := stream.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.InboundTopic, cfg.Kafka.Group)
	producer := stream.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.InboundTopic)
	feedbackProducer := stream.NewProducer(cfg.Kafka.Brokers, cfg.Feedback.Topic)

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)
	sendgridClient := sendgrid.NewClient(cfg.Sendgrid.APIKey, cfg.Sendgrid.FromName, cfg.Sendgrid.From)
	smsClient := sms.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.From)
	pushClient := push.NewClient(cfg.Push.Endpoint, cfg.Push.ServerKey)
	webhookClient := webhook.NewClient(cfg.Webhook.Token, 10*time.Second)
	ivmClient := ivm.NewClient(cfg.IVM.BaseURL)
	profileClient := profile.NewClient(cfg.Profiles.BaseURL, 5*time.Second)

	policy := func(kind string) notifier.RetryPolicy {
		p := cfg.PolicyFor(kind)
		return notifier.RetryPolicy{MaxAttempts: p.MaxAttempts, Interval: p.Interval}
	}

	reg := registry.New(configRepo)
	reg.Register(model.ChannelEmail, notifier.NewEmail(emailClient, policy("EMAIL_SMTP")))
	reg.Register(model.ChannelEmail, notifier.NewSendgrid(sendgridClient, policy("EMAIL_SENDGRID")))
	reg.Register(model.ChannelSMS, notifier.NewSMS(smsClient, policy("SMS_GATEWAY")))
	reg.Register(model.ChannelPush, notifier.NewPush(pushClient, policy("PUSH_GATEWAY")))
	reg.Register(model.ChannelAPIPush, notifier.NewWebhook(webhookClient, policy("API_PUSH_ENDPOINT")))
	reg.Register(model.ChannelIVM, notifier.NewIVM(ivmClient, policy("IVM_GATEWAY")))
	reg.Register(model.ChannelPortal, notifier.NewPortal(inboxRepo, policy("PORTAL_STORE")))

	if err := reg.Validate(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("notifier registry incomplete")
	}

	evaluator := suppression.New(cfg.Suppression.DefaultTimezone)
	deduper := dedup.New(rdb, cfg.Dedup.Window, cfg.Dedup.MaxAge)
	tracker := history.NewTracker(historyRepo)
	resolver := dispatch.NewResolver(rdb, profileClient, cfg.Retry)
	campaigns := dispatch.NewCampaignStatus(rdb, cfg.Retry)
	quiet := dispatch.NewQuietSource(configRepo, evaluator)
	templates := template.NewResolver(templateRepo)
	emitter := feedback.NewEmitter(feedbackProducer, cfg.Feedback.Enabled)

	schedClient := scheduler.NewClient(schedQueue, cfg.Retry)
	schedCoord := schedule.NewCoordinator(bufferRepo, schedClient, tracker, quiet, scheduler.CallbackQueueName)
	retryCoord := retrycoord.NewCoordinator(
		rdb, retryRepo, retryQueue, schedClient, tracker, producer,
		scheduler.CallbackQueueName, cfg.Retry,
	)

	engine := dispatch.NewEngine(dispatch.Deps{
		Dedup:       deduper,
		Configs:     configRepo,
		Recipients:  resolver,
		Templates:   templates,
		Notifiers:   reg,
		History:     tracker,
		Schedule:    schedCoord,
		Retries:     retryCoord,
		Campaigns:   campaigns,
		Feedback:    emitter,
		Suppression: evaluator,
	}, cfg.Kafka.InboundTopic)
	schedCoord.SetDispatcher(engine)

	pool := worker.NewPool(inboundConsumer, schedQueue, retryQueue, engine, retryCoord)
	go pool.Run(ctx, cfg.Retry, cfg.Workers.Count)

	alertHandler := alert.NewHandler(producer, tracker, engine, val, cfg.Kafka.InboundTopic)
	r := router.New(alertHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := inboundConsumer.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close kafka consumer")
	}
	if err := producer.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close kafka producer")
	}
	if err := feedbackProducer.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close feedback producer")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}
	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}
	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
