package provider

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/utils"
	"gorm.io/gorm"
)

// GetEarnings returns the provider's balance and withdrawal ledger, newest
// first.
func GetEarnings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	var entries []models.Earning
	if err := db.DB.
		Where("provider_id = ?", userID).
		Order("created_at desc").
		Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch earnings",
		})
	}

	return c.JSON(fiber.Map{
		"balance":  user.Balance,
		"earnings": entries,
	})
}

// Withdraw deducts from the provider's balance and appends a ledger entry.
// The decrement and the entry are written in one transaction.
func Withdraw(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input struct {
		Amount int64  `json:"amount"`
		Method string `json:"method"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please enter a valid amount to withdraw",
		})
	}

	if input.Amount < 100 || input.Amount > 100000 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Withdrawal amount must be between ₹100 and ₹100,000",
		})
	}
	if input.Method == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please select a payment method before withdrawing",
		})
	}

	var entry models.Earning
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		// Conditional decrement guards against overdraw under concurrency
		result := tx.Model(&models.User{}).
			Where("id = ? AND balance >= ?", userID, input.Amount).
			Update("balance", gorm.Expr("balance - ?", input.Amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("insufficient balance for the withdrawal")
		}

		entry = models.Earning{
			ProviderID:  userID,
			Method:      input.Method,
			Amount:      input.Amount,
			Description: fmt.Sprintf("Withdrawn ₹%d via %s", input.Amount, input.Method),
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var user models.User
	db.DB.First(&user, userID)

	return c.JSON(fiber.Map{
		"message": "Withdrawal successful",
		"balance": user.Balance,
		"entry":   entry,
		"time":    utils.TimeLabel(entry.CreatedAt),
	})
}
