package services

import (
	"fmt"
	"strings"

	"railway/internal/domain"
	"railway/internal/utils"
)

// PaymentService accepts any payment. There is no gateway behind it; Charge
// logs the attempt and approves. Booking callers invoke it before touching
// seat inventory so a future real gateway slots in ahead of the transaction.
type PaymentService struct{}

func (PaymentService) Charge(method string, amount int64) error {
	method = strings.TrimSpace(method)
	if method == "" {
		return domain.ValidationError{Field: "payment_method", Msg: "must not be empty"}
	}
	utils.LogEvent("payment", "charge", fmt.Sprintf("method=%s amount=%s", method, utils.FormatRupees(amount)))
	return nil
}
