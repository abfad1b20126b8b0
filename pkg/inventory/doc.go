// Package inventory tracks the ingredient stock of the machine.
//
// Inventory keeps four counters (coffee, milk, sugar, chocolate) that never
// go negative. Replenishment arrives as untyped operator input and is
// validated in full before anything is applied:
//
//	inv := inventory.New()                     // 15 units of everything
//	err := inv.Add("10", 5, json.Number("0"), "2")
//	if errors.HasCode(err, errors.ErrCodeInvalidInventoryAmount) {
//	    // nothing changed
//	}
//
// Purchases use TryConsume, which checks and subtracts under one lock.
package inventory
