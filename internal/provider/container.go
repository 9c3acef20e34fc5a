package provider

import (
	"github.com/favorite-plug/api/internal/cache"
	"github.com/favorite-plug/api/internal/config"
	"github.com/favorite-plug/api/internal/logger"
	"github.com/favorite-plug/api/internal/models"
	"github.com/favorite-plug/api/internal/queue"
	"github.com/favorite-plug/api/internal/repository"
	"github.com/favorite-plug/api/internal/service"
)

// Container is the dependency injection container.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo            repository.UserRepository
	EmailVerifyCodeRepo repository.EmailVerifyCodeRepository
	ProductRepo         repository.ProductRepository
	CartRepo            repository.CartRepository
	WishlistRepo        repository.WishlistRepository
	OrderRepo           repository.OrderRepository

	// Services
	AuthService              *service.AuthService
	EmailService             *service.EmailService
	UploadService            *service.UploadService
	ProductService           *service.ProductService
	CartService              *service.CartService
	WishlistService          *service.WishlistService
	OrderService             *service.OrderService
	OrderNotificationService *service.OrderNotificationService
	UserAdminService         *service.UserAdminService
	DashboardService         *service.DashboardService
}

// NewContainer wires up the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.EmailVerifyCodeRepo = repository.NewEmailVerifyCodeRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.WishlistRepo = repository.NewWishlistRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo, c.EmailVerifyCodeRepo, c.EmailService, c.QueueClient)
	c.UploadService = service.NewUploadService(c.Config)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.WishlistService = service.NewWishlistService(c.WishlistRepo, c.ProductRepo)
	c.OrderNotificationService = service.NewOrderNotificationService(c.OrderRepo, c.UserRepo, c.EmailService)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.QueueClient, c.OrderNotificationService)
	c.UserAdminService = service.NewUserAdminService(c.UserRepo)
	c.DashboardService = service.NewDashboardService(c.UserRepo, c.ProductRepo, c.OrderRepo)
}
