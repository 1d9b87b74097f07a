package services

import (
	"fmt"
	"math/rand/v2"

	"opsboard/internal/core/domain/model/booking"
	"opsboard/internal/core/domain/model/order"
)

const (
	quotePriceMin = 249
	quotePriceMax = 899

	quoteEtaMinMinutes = 5
	quoteEtaMaxMinutes = 45
)

// PickupQuoter is a domain service that produces a price and driver ETA for
// a pickup booking. It stands in for the third-party booking API: in this
// simulated environment a quote is always produced and never fails for a
// valid order.
//
// Prices fall in a fixed rupee range with whole or half-rupee amounts; ETAs
// fall in a fixed minute range.
//
// Example usage:
//
//	quoter := services.NewPickupQuoter()
//	quote, err := quoter.Quote(selectedOrder)
//	if err != nil {
//	    // The order was invalid; quoting itself cannot fail
//	    return err
//	}
//	fmt.Printf("Driver is %d mins away, price %s", quote.EtaMinutes(), quote.Price())
type PickupQuoter struct{}

// NewPickupQuoter creates a new PickupQuoter instance.
func NewPickupQuoter() PickupQuoter {
	return PickupQuoter{}
}

// Quote generates a booking quote for the given order.
//
// Returns an error only if the order is invalid; every valid order receives
// a quote with a price in the fixed range and a non-negative ETA.
func (q PickupQuoter) Quote(o *order.Order) (booking.Quote, error) {
	if err := o.Validate(); err != nil {
		return booking.Quote{}, err
	}

	rupees := quotePriceMin + rand.IntN(quotePriceMax-quotePriceMin+1) //nolint:gosec // it's ok
	paise := rand.IntN(2) * 50                                        //nolint:gosec // it's ok
	price := fmt.Sprintf("%d.%02d", rupees, paise)

	eta := quoteEtaMinMinutes + rand.IntN(quoteEtaMaxMinutes-quoteEtaMinMinutes+1) //nolint:gosec // it's ok

	return booking.NewQuote(price, eta)
}
