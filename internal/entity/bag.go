package entity

// ItemID names an item kind.
type ItemID string

// Bag counts carried items.
type Bag map[ItemID]int

// Insert adds one of the item.
func (b Bag) Insert(item ItemID) {
	b[item]++
}

// Count returns how many of the item are carried.
func (b Bag) Count(item ItemID) int {
	return b[item]
}
