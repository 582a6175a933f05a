package steps

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/application/usecase/auth"
	"github.com/pocket-ledger/backend/internal/application/usecase/balance"
	"github.com/pocket-ledger/backend/internal/application/usecase/budget"
	"github.com/pocket-ledger/backend/internal/application/usecase/category"
	"github.com/pocket-ledger/backend/internal/application/usecase/goal"
	"github.com/pocket-ledger/backend/internal/application/usecase/transaction"
	"github.com/pocket-ledger/backend/internal/infra/server/router"
	"github.com/pocket-ledger/backend/internal/integration/adapters"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/pocket-ledger/backend/internal/integration/notifier"
	"github.com/pocket-ledger/backend/internal/integration/persistence"
	"github.com/pocket-ledger/backend/test/integration/mock"
)

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// startServer wires the full stack onto the shared in-memory database and
// Redis, then serves it on the reserved port. The server stays up for the
// whole suite; scenarios only reset the data underneath it.
func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			now := func() time.Time { return time.Now().UTC() }

			// Repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
			goalRepo := persistence.NewGoalRepository(testDB.DbConn)

			// Adapters
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute)
			suggester := adapters.NewGeminiSuggester("")
			notificationQueue := notifier.NewRedisQueue(mock.NewRedis())

			// Auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

			// Category use cases
			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
			deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, budgetRepo)

			// Transaction use cases
			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, categoryRepo)
			updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
			suggestCategoryUseCase := transaction.NewSuggestCategoryUseCase(suggester, categoryRepo)

			// Balance use case
			computeBalanceUseCase := balance.NewComputeBalanceUseCase(transactionRepo)

			// Budget use cases
			createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo, now)
			budgetStatusUseCase := budget.NewGetBudgetStatusUseCase(budgetRepo, categoryRepo, transactionRepo, budget.DefaultNearLimitRatio)
			listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, budgetStatusUseCase)
			updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, now)
			deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

			// Goal use cases
			createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, now)
			listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, now)
			getGoalUseCase := goal.NewGetGoalUseCase(goalRepo, now)
			updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, now)
			depositGoalUseCase := goal.NewDepositGoalUseCase(goalRepo, transactionRepo, now)
			pauseGoalUseCase := goal.NewPauseGoalUseCase(goalRepo, now)
			resumeGoalUseCase := goal.NewResumeGoalUseCase(goalRepo, now)

			// Controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			authController := controller.NewAuthController(registerUseCase, loginUseCase)
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
			notificationController := controller.NewNotificationController(notificationQueue)

			// Middleware. The login limiter is loose enough to never
			// interfere with scenario retries.
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}
