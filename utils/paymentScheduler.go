package utils

import (
	"log"
	"time"

	"edutrack/services"

	"github.com/robfig/cron/v3"
)

// Payments that never confirm within this window are written off
const stalePaymentAge = 24 * time.Hour

// InitializePaymentScheduler starts the hourly sweep that fails gateway
// payments stuck in "created". The returned cron can be stopped on shutdown.
func InitializePaymentScheduler(payments *services.PaymentService) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		expired, err := payments.ExpireStale(stalePaymentAge)
		if err != nil {
			log.Printf("Stale payment sweep failed: %v", err)
			return
		}
		if expired > 0 {
			log.Printf("Stale payment sweep expired %d payment(s)", expired)
		}
	})
	if err != nil {
		log.Printf("Failed to schedule stale payment sweep: %v", err)
		return c
	}

	c.Start()
	log.Println("Payment scheduler started. Sweeping stale payments hourly.")
	return c
}
