// Package seed provisions demo households so a fresh install has data on the
// dashboard immediately.
package seed

import (
	"context"
	"errors"
	"time"

	accountdomain "github.com/aquamitra/aquamitra/internal/account/domain"
	consumptiondomain "github.com/aquamitra/aquamitra/internal/consumption/domain"
	employeedomain "github.com/aquamitra/aquamitra/internal/employee/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

const demoEventDays = 10

type demoAccount struct {
	accountID   string
	country     string
	state       string
	city        string
	address     string
	pincode     string
	occupants   int
	dailyAmount float64
}

var demoAccounts = []demoAccount{
	{
		accountID:   "user1",
		country:     "India",
		state:       "Tamil Nadu",
		city:        "Chennai",
		address:     "12 Marina Beach Road",
		pincode:     "600001",
		occupants:   4,
		dailyAmount: 150,
	},
	{
		accountID:   "user2",
		country:     "India",
		state:       "Tamil Nadu",
		city:        "Madurai",
		address:     "45 Meenakshi Amman Street",
		pincode:     "625001",
		occupants:   3,
		dailyAmount: 120,
	},
}

var demoEmployee = employeedomain.Employee{
	EmployeeID: "emp1",
	Name:       "Water Board Officer",
	Country:    "India",
	State:      "Tamil Nadu",
}

// EnsureDemoData seeds two households, one regional employee and ten days of
// consumption history. Safe to call on every startup.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, demo := range demoAccounts {
			created, err := ensureAccountTx(ctx, tx, node, demo)
			if err != nil {
				return err
			}
			if created {
				if err := seedEventsTx(ctx, tx, node, demo); err != nil {
					return err
				}
			}
		}
		return ensureEmployeeTx(ctx, tx, node)
	})
}

func ensureAccountTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, demo demoAccount) (bool, error) {
	var account accountdomain.Account
	err := tx.WithContext(ctx).Where("account_id = ?", demo.accountID).First(&account).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	now := time.Now().UTC()
	account = accountdomain.Account{
		ID:        node.Generate(),
		AccountID: demo.accountID,
		Country:   demo.country,
		State:     demo.state,
		City:      demo.city,
		Address:   demo.address,
		Pincode:   demo.pincode,
		Occupants: demo.occupants,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.WithContext(ctx).Create(&account).Error; err != nil {
		return false, err
	}
	return true, nil
}

func seedEventsTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, demo demoAccount) error {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for i := 0; i < demoEventDays; i++ {
		occurredAt := today.AddDate(0, 0, -i).Add(8 * time.Hour)
		event := consumptiondomain.ConsumptionEvent{
			ID:         node.Generate(),
			AccountID:  demo.accountID,
			Amount:     demo.dailyAmount,
			OccurredAt: occurredAt,
			CreatedAt:  now,
		}
		if err := tx.WithContext(ctx).Create(&event).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureEmployeeTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var employee employeedomain.Employee
	err := tx.WithContext(ctx).Where("employee_id = ?", demoEmployee.EmployeeID).First(&employee).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	now := time.Now().UTC()
	employee = demoEmployee
	employee.ID = node.Generate()
	employee.CreatedAt = now
	employee.UpdatedAt = now
	return tx.WithContext(ctx).Create(&employee).Error
}
