// Package flavor implements the Flavor aggregate: a sellable pastel flavor
// carrying its own stock and price. The aggregate doubles as the inventory
// ledger: stock moves only through Reserve (order creation), Release
// (order cancellation) and the admin Restock/SetInventory operations, and
// never goes negative. Prices on existing order items are unaffected by
// price changes here because items snapshot the unit price at order time.
package flavor
