package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	natsclient "github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	"github.com/0xsj/overwatch-pkg/log"

	financehttp "github.com/0xsj/overwatch-finance/internal/adapter/inbound/http"
	natsadapter "github.com/0xsj/overwatch-finance/internal/adapter/outbound/nats"
	"github.com/0xsj/overwatch-finance/internal/adapter/outbound/postgres"
	rediscache "github.com/0xsj/overwatch-finance/internal/adapter/outbound/redis"
	"github.com/0xsj/overwatch-finance/internal/app/command"
	"github.com/0xsj/overwatch-finance/internal/app/query"
	"github.com/0xsj/overwatch-finance/internal/app/service"
	"github.com/0xsj/overwatch-finance/internal/config"
	"github.com/0xsj/overwatch-finance/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional .env for local development
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := log.NewPretty(log.DefaultConfig())

	logger.Info("starting finance service",
		log.String("version", "1.0.0"),
		log.String("address", cfg.Server.Address()),
	)

	// Run schema migrations
	if err := storage.RunMigrations(cfg.Database.URL()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Connect to PostgreSQL
	pool, err := connectPostgres(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()

	// Connect to Redis
	redisClient, err := connectRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	// Connect to NATS
	natsConn, err := connectNATS(cfg.NATS, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to nats: %w", err)
	}
	defer natsConn.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)

	// Initialize caches
	store := rediscache.NewStore(redisClient, logger)
	userCache := rediscache.NewUserCache(store, cfg.Cache.DefaultTTL)
	categoryCache := rediscache.NewCategoryCache(store, cfg.Cache.DefaultTTL)
	expenseCache := rediscache.NewExpenseCache(store, cfg.Cache.DefaultTTL)
	denylist := rediscache.NewSessionDenylist(redisClient, logger)

	// Initialize event publisher
	eventPublisher := natsadapter.NewEventPublisher(natsConn, cfg.NATS.SubjectPrefix)

	// Initialize services
	hasher := service.NewPasswordHasher(0)
	tokenService, err := service.NewTokenService(service.TokenConfig{
		Issuer:              cfg.Token.Issuer,
		Audience:            cfg.Token.Audience,
		AccessTokenDuration: cfg.Token.AccessTokenDuration,
		SigningAlgorithm:    cfg.Token.SigningAlgorithm,
		SigningKey:          []byte(cfg.Token.SigningKey),
	})
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}

	// Initialize command handlers
	registerUserHandler := command.NewRegisterUserHandler(
		userRepo,
		userCache,
		hasher,
		eventPublisher,
	)
	authenticateHandler := command.NewAuthenticateHandler(
		userRepo,
		userCache,
		denylist,
		hasher,
		tokenService,
		eventPublisher,
	)
	logoutHandler := command.NewLogoutHandler(
		denylist,
		cfg.Cache.DenylistTTL,
		eventPublisher,
	)
	updateUserHandler := command.NewUpdateUserHandler(
		userRepo,
		userCache,
		hasher,
		eventPublisher,
	)
	deactivateUserHandler := command.NewDeactivateUserHandler(
		userRepo,
		userCache,
		denylist,
		cfg.Cache.DenylistTTL,
		eventPublisher,
	)
	purgeUserHandler := command.NewPurgeUserHandler(
		userRepo,
		expenseRepo,
		userCache,
		categoryCache,
		expenseCache,
		eventPublisher,
	)
	createCategoryHandler := command.NewCreateCategoryHandler(
		categoryRepo,
		categoryCache,
		eventPublisher,
	)
	deleteCategoryHandler := command.NewDeleteCategoryHandler(
		categoryRepo,
		categoryCache,
		eventPublisher,
	)
	recordExpenseHandler := command.NewRecordExpenseHandler(
		expenseRepo,
		categoryRepo,
		expenseCache,
		eventPublisher,
	)
	deleteExpenseHandler := command.NewDeleteExpenseHandler(
		expenseRepo,
		expenseCache,
		eventPublisher,
	)

	// Initialize query handlers
	getUserHandler := query.NewGetUserHandler(userRepo, userCache)
	listUsersHandler := query.NewListUsersHandler(userRepo)
	listCategoriesHandler := query.NewListCategoriesHandler(categoryRepo, categoryCache)
	listExpensesHandler := query.NewListExpensesHandler(expenseRepo, expenseCache)

	// Initialize HTTP handler
	handler := financehttp.NewHandler(financehttp.HandlerConfig{
		RegisterUserHandler:   registerUserHandler,
		AuthenticateHandler:   authenticateHandler,
		LogoutHandler:         logoutHandler,
		UpdateUserHandler:     updateUserHandler,
		DeactivateUserHandler: deactivateUserHandler,
		PurgeUserHandler:      purgeUserHandler,
		CreateCategoryHandler: createCategoryHandler,
		DeleteCategoryHandler: deleteCategoryHandler,
		RecordExpenseHandler:  recordExpenseHandler,
		DeleteExpenseHandler:  deleteExpenseHandler,
		GetUserHandler:        getUserHandler,
		ListUsersHandler:      listUsersHandler,
		ListCategoriesHandler: listCategoriesHandler,
		ListExpensesHandler:   listExpensesHandler,
	})

	// Initialize auth gate and router
	gate := financehttp.AuthGate(
		financehttp.AuthGateConfig{
			PublicPaths: cfg.Auth.PublicPathList(),
			AdminPaths:  cfg.Auth.AdminPathList(),
		},
		tokenService,
		denylist,
		userCache,
		userRepo,
	)
	router := financehttp.NewRouter(handler, gate, logger)

	server := financehttp.NewServer(financehttp.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, router, logger)

	// Handle graceful shutdown
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("finance service started", log.String("address", server.Address()))

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.Info("received shutdown signal", log.String("signal", sig.String()))
		cancel()

		if err := server.Stop(context.Background()); err != nil {
			return fmt.Errorf("failed to stop server: %w", err)
		}

		logger.Info("finance service stopped gracefully")
		return nil
	}
}

func connectPostgres(ctx context.Context, cfg config.DatabaseConfig, logger log.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolCfg.HealthCheckPeriod = cfg.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("connected to postgres",
		log.String("host", cfg.Host),
		log.String("database", cfg.Database),
	)

	return pool, nil
}

func connectRedis(ctx context.Context, cfg config.RedisConfig, logger log.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("connected to redis",
		log.String("address", cfg.Address()),
	)

	return client, nil
}

func connectNATS(cfg config.NATSConfig, logger log.Logger) (*natsclient.Conn, error) {
	opts := []natsclient.Option{
		natsclient.MaxReconnects(cfg.MaxReconnects),
		natsclient.ReconnectWait(cfg.ReconnectWait),
		natsclient.DisconnectErrHandler(func(nc *natsclient.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", log.String("error", err.Error()))
			}
		}),
		natsclient.ReconnectHandler(func(nc *natsclient.Conn) {
			logger.Info("nats reconnected", log.String("url", nc.ConnectedUrl()))
		}),
	}

	conn, err := natsclient.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	logger.Info("connected to nats",
		log.String("url", conn.ConnectedUrl()),
	)

	return conn, nil
}
