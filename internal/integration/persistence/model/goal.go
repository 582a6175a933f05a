// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database. Goals are never
// soft-deleted; pausing is the supported way to retire one.
type GoalModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name               string          `gorm:"type:varchar(100);not null"`
	Icon               string          `gorm:"type:varchar(50);not null"`
	TargetAmount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Deadline           time.Time       `gorm:"type:date;not null"`
	Status             string          `gorm:"type:varchar(10);not null;index"`
	CompletionNotified bool            `gorm:"not null;default:false"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:                 m.ID,
		UserID:             m.UserID,
		Name:               m.Name,
		Icon:               m.Icon,
		TargetAmount:       m.TargetAmount,
		CurrentAmount:      m.CurrentAmount,
		Deadline:           m.Deadline,
		Status:             entity.GoalStatus(m.Status),
		CompletionNotified: m.CompletionNotified,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:                 goal.ID,
		UserID:             goal.UserID,
		Name:               goal.Name,
		Icon:               goal.Icon,
		TargetAmount:       goal.TargetAmount,
		CurrentAmount:      goal.CurrentAmount,
		Deadline:           goal.Deadline,
		Status:             string(goal.Status),
		CompletionNotified: goal.CompletionNotified,
		CreatedAt:          goal.CreatedAt,
		UpdatedAt:          goal.UpdatedAt,
	}
}
