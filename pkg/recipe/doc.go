// Package recipe defines beverage recipes and the fixed-capacity recipe book.
//
// # Recipe
//
// A Recipe names a beverage, its price and the units of coffee, milk, sugar
// and chocolate one cup consumes. Setters validate their input:
//
//	r := recipe.New("Latte")
//	if err := r.SetPrice(100); err != nil { ... }
//	if err := r.ParseAmtMilk("3"); err != nil { ... } // operator text
//
// Negative amounts, unparsable text and empty names fail with
// errors.ErrCodeInvalidRecipeField and leave the field unchanged.
//
// # Book
//
// Book holds a fixed number of ordered slots (4 by default):
//
//	b := recipe.NewBook(recipe.WithCapacity(4))
//	b.Add(r)                 // first empty slot, false on duplicate name or full book
//	b.Edit(r, updated)       // same slot, new contents
//	b.Delete(r)              // slot emptied in place, others keep their positions
//	slots := b.List()        // len == capacity, nil marks an empty slot
//
// Recipes are matched by name, so a caller-built recipe with the same name as
// a stored one addresses that slot. The book copies recipes on the way in and
// out; callers never hold a live reference to a stored slot.
package recipe
