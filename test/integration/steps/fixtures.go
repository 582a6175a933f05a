package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/integration/notifier"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
	"github.com/pocket-ledger/backend/test/integration/mock"
)

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs ensures the user exists and signs an access token for them
// with the same claims the token service issues.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.createUser(email, "DefaultPass123!", "Test User"); err != nil {
			return err
		}
	} else {
		t.currentUserID = userModel.ID
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": t.currentUserID.String(),
		"email":   email,
		"exp":     jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":     jwt.NewNumericDate(now),
		"nbf":     jwt.NewNumericDate(now),
		"iss":     "pocket-ledger",
		"sub":     t.currentUserID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = tokenString

	return nil
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		UserID:    t.currentUserID,
		Name:      name,
		Type:      categoryType,
		Icon:      "tag",
		Color:     "#6366F1",
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) aTransactionExistsWithAmount(transactionType, amount string) error {
	return t.createTransaction(transactionType, amount, nil)
}

func (t *testContext) aTransactionExistsWithAmountInCategory(transactionType, amount, categoryName string) error {
	var categoryModel model.CategoryModel
	if err := t.db.DbConn.Where("name = ? AND user_id = ?", categoryName, t.currentUserID).First(&categoryModel).Error; err != nil {
		return fmt.Errorf("category '%s' not found: %w", categoryName, err)
	}
	return t.createTransaction(transactionType, amount, &categoryModel.ID)
}

func (t *testContext) createTransaction(transactionType, amount string, categoryID *uuid.UUID) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:         uuid.New(),
		UserID:     t.currentUserID,
		Type:       transactionType,
		Amount:     value,
		CategoryID: categoryID,
		Date:       now.Truncate(24 * time.Hour),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) aBudgetExistsForCategoryWithAmount(categoryName, amount string) error {
	var categoryModel model.CategoryModel
	if err := t.db.DbConn.Where("name = ? AND user_id = ?", categoryName, t.currentUserID).First(&categoryModel).Error; err != nil {
		return fmt.Errorf("category '%s' not found: %w", categoryName, err)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	budgetID := uuid.New()
	t.currentBudgetID = budgetID

	now := time.Now().UTC()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	budgetModel := &model.BudgetModel{
		ID:         budgetID,
		UserID:     t.currentUserID,
		CategoryID: categoryModel.ID,
		Name:       categoryName + " budget",
		Amount:     value,
		Period:     string(entity.BudgetPeriodMonthly),
		StartDate:  startOfMonth,
		EndDate:    startOfMonth.AddDate(0, 1, -1),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return t.db.DbConn.Create(budgetModel).Error
}

func (t *testContext) aGoalExistsWithNameTargetAndCurrentAmount(name, target, current string) error {
	targetAmount, err := decimal.NewFromString(target)
	if err != nil {
		return fmt.Errorf("invalid target '%s': %w", target, err)
	}
	currentAmount, err := decimal.NewFromString(current)
	if err != nil {
		return fmt.Errorf("invalid current amount '%s': %w", current, err)
	}

	goalID := uuid.New()
	t.currentGoalID = goalID

	now := time.Now().UTC()
	goalModel := &model.GoalModel{
		ID:            goalID,
		UserID:        t.currentUserID,
		Name:          name,
		Icon:          "piggy-bank",
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      now.AddDate(0, 6, 0),
		Status:        string(entity.GoalStatusActive),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.DbConn.Create(goalModel).Error
}

func (t *testContext) theGoalHasStatus(status string) error {
	return t.db.DbConn.Model(&model.GoalModel{}).
		Where("id = ?", t.currentGoalID).
		Update("status", status).Error
}

func (t *testContext) aLowBalanceNotificationIsQueued(balance string) error {
	value, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("invalid balance '%s': %w", balance, err)
	}

	queue := notifier.NewRedisQueue(mock.NewRedis())
	return queue.Enqueue(context.Background(), entity.NotificationEvent{
		Type:      entity.NotificationLowBalance,
		UserID:    t.currentUserID,
		EmittedAt: time.Now().UTC(),
		Balance:   &value,
	})
}
