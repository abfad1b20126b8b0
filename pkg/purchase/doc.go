// Package purchase implements the sale decision of the coffee maker.
//
// Purchase takes a recipe (nil when nothing was selected), the tendered
// payment and the inventory, and either dispenses, consuming one cup's
// ingredients and returning payment minus price, or refunds the full payment
// without touching stock. Funds are checked before ingredients, and the
// ingredient check and consumption are a single atomic step on the
// inventory, so a refused sale never consumes anything.
//
// Refusals are ordinary outcomes, not errors:
//
//	res := purchase.Purchase(r, 100, inv)
//	switch res.Outcome {
//	case purchase.OutcomeDispensed:
//	    fmt.Println("enjoy, change:", res.Change)
//	default:
//	    fmt.Println("refunded:", res.Change)
//	}
package purchase
