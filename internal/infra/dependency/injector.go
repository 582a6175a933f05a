// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/config"
	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/auth"
	"github.com/pocket-ledger/backend/internal/application/usecase/balance"
	"github.com/pocket-ledger/backend/internal/application/usecase/budget"
	"github.com/pocket-ledger/backend/internal/application/usecase/category"
	"github.com/pocket-ledger/backend/internal/application/usecase/goal"
	"github.com/pocket-ledger/backend/internal/application/usecase/notification"
	"github.com/pocket-ledger/backend/internal/application/usecase/transaction"
	"github.com/pocket-ledger/backend/internal/infra/server/router"
	"github.com/pocket-ledger/backend/internal/integration/adapters"
	"github.com/pocket-ledger/backend/internal/integration/email"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/pocket-ledger/backend/internal/integration/notifier"
	"github.com/pocket-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
	Worker *notifier.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	now := func() time.Time { return time.Now().UTC() }

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	suggestionService := adapters.NewGeminiSuggester(cfg.Gemini.APIKey)
	queue := notifier.NewRedisQueue(redisClient)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, budgetRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	suggestCategoryUseCase := transaction.NewSuggestCategoryUseCase(suggestionService, categoryRepo)

	// Create balance use case
	computeBalanceUseCase := balance.NewComputeBalanceUseCase(transactionRepo)

	// Create budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo, now)
	budgetStatusUseCase := budget.NewGetBudgetStatusUseCase(budgetRepo, categoryRepo, transactionRepo, cfg.Notifier.NearLimitRatio)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, budgetStatusUseCase)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, now)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, now)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, now)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo, now)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, now)
	depositGoalUseCase := goal.NewDepositGoalUseCase(goalRepo, transactionRepo, now)
	pauseGoalUseCase := goal.NewPauseGoalUseCase(goalRepo, now)
	resumeGoalUseCase := goal.NewResumeGoalUseCase(goalRepo, now)

	// Create notification worker. The digest email path is optional and only
	// enabled when a Resend API key is configured.
	var emailSender adapter.EmailSender
	var digestRenderer *email.DigestRenderer
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		renderer, err := email.NewDigestRenderer()
		if err != nil {
			slog.Error("Failed to initialize digest renderer, digest emails disabled", "error", err)
			emailSender = nil
		} else {
			digestRenderer = renderer
		}
	}

	worker := notifier.NewWorker(
		userRepo,
		goalRepo,
		queue,
		computeBalanceUseCase,
		listBudgetsUseCase,
		emailSender,
		digestRenderer,
		notifier.WorkerConfig{
			ScanInterval: cfg.Notifier.ScanInterval,
			Policy: notification.PolicyConfig{
				LowBalanceFloor:    cfg.Notifier.LowBalanceFloor,
				DeadlineWindowDays: cfg.Notifier.DeadlineWindowDays,
			},
		},
	)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		suggestCategoryUseCase,
	)

	balanceController := controller.NewBalanceController(computeBalanceUseCase)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		listBudgetsUseCase,
		budgetStatusUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		depositGoalUseCase,
		pauseGoalUseCase,
		resumeGoalUseCase,
	)

	notificationController := controller.NewNotificationController(queue)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		balanceController,
		budgetController,
		goalController,
		notificationController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
		Worker: worker,
	}
}
