package service

import (
	"github.com/shopspring/decimal"
)

// Recorder receives business events worth counting.
type Recorder interface {
	SaleRecorded(category string, total decimal.Decimal)
	LoginAttempt(success bool)
	UserRegistered()
	SessionRevoked()
}

type noopRecorder struct{}

func (noopRecorder) SaleRecorded(string, decimal.Decimal) {}
func (noopRecorder) LoginAttempt(bool)                    {}
func (noopRecorder) UserRegistered()                      {}
func (noopRecorder) SessionRevoked()                      {}
