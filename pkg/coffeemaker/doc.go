// Package coffeemaker composes a recipe book, an inventory and the purchase
// decision into one vending machine.
//
// # Usage
//
//	cm := coffeemaker.New(
//	    coffeemaker.WithCapacity(4),
//	    coffeemaker.WithStock(inventory.DefaultStock(15)),
//	)
//	cm.AddRecipe(latte)
//	change := cm.MakeCoffee(latte, 100)
//
// A CoffeeMaker is an explicit value; callers construct one and share the
// pointer. There is no package-level machine.
//
// # Outcomes and Errors
//
// Duplicate adds, edits or deletes of absent recipes, underpayment and
// ingredient shortages are ordinary results: false, or a full refund.
// Only malformed input is an error: a negative recipe field
// (errors.ErrCodeInvalidRecipeField) or a bad replenishment amount
// (errors.ErrCodeInvalidInventoryAmount).
//
// # HTTP
//
// Routes exposes the machine over HTTP for pkg/server:
//
//	GET    /v1/recipes          slot list, nulls for empty slots
//	POST   /v1/recipes          add (201, 409 on duplicate or full book)
//	PUT    /v1/recipes/{name}   edit in place (200, 404, 409 on name clash)
//	DELETE /v1/recipes/{name}   empty the slot (204, 404)
//	GET    /v1/inventory        stock snapshot
//	POST   /v1/inventory        replenish all four ingredients (200, 400)
//	POST   /v1/purchase         buy by name; refusals are 200 with an outcome
//	GET    /v1/sales            receipts of recent dispensed beverages
package coffeemaker
