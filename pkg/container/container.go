package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"library-backend/internal/config"
	infraCache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/cache"
	pkgdatabase "library-backend/pkg/database"

	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
	loanHandler "library-backend/internal/domains/loan/handler"
	loanRepo "library-backend/internal/domains/loan/repository"
	loanService "library-backend/internal/domains/loan/service"
	memberHandler "library-backend/internal/domains/member/handler"
	memberRepo "library-backend/internal/domains/member/repository"
	memberService "library-backend/internal/domains/member/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application and is the root
// of the dependency graph.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Shared across all domains, one instance for the app lifetime.

	Config   *config.Config
	DB       *database.PostgresDB
	Cache    cache.Cache
	TxRunner pkgdatabase.TxRunner

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	BookRepo   bookRepo.RepositoryInterface
	MemberRepo memberRepo.RepositoryInterface
	LoanRepo   loanRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	BookService   bookService.ServiceInterface
	MemberService memberService.ServiceInterface
	LoanService   loanService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	BookHandler   *bookHandler.Handler
	MemberHandler *memberHandler.Handler
	LoanHandler   *loanHandler.Handler
}

// NewContainer builds the whole dependency graph. Initialization order
// matters: config, then infrastructure, then repositories, services and
// handlers, each layer depending only on the ones before it.
func NewContainer() (*Container, error) {
	log.Println("Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	c.TxRunner = pkgdatabase.NewTxRunner(db.Pool)
	log.Println("Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Cache misses fall through to Postgres, so a Redis outage
			// degrades performance, not correctness.
			log.Printf("Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("Redis connected")
		}
	}

	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	c.initRepositories()

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	c.initServices()

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	c.initHandlers()

	log.Println("DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.BookRepo = bookRepo.NewRepository(pool, c.Cache)
	c.MemberRepo = memberRepo.NewRepository(pool)
	c.LoanRepo = loanRepo.NewRepository(pool)
}

func (c *Container) initServices() {
	c.BookService = bookService.NewService(c.BookRepo, c.DB.Pool)

	// The loan repository doubles as the member service's active-loan
	// counter; the member domain only sees the small interface.
	c.MemberService = memberService.NewMemberService(c.MemberRepo, c.LoanRepo)

	c.LoanService = loanService.NewLoanService(
		c.LoanRepo,
		c.BookRepo,   // Cross-domain: inventory mutations
		c.MemberRepo, // Cross-domain: member lookups
		c.TxRunner,
		c.Config.Loan,
	)
}

func (c *Container) initHandlers() {
	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.MemberHandler = memberHandler.NewHandler(c.MemberService)
	c.LoanHandler = loanHandler.NewHandler(c.LoanService)
}

// Cleanup releases container resources during shutdown.
func (c *Container) Cleanup() {
	log.Println("Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("Failed to close Redis: %v", err)
			} else {
				log.Println("Redis connections closed")
			}
		}
	}

	log.Println("Container cleanup completed")
}
