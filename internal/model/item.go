package model

// Item is a single shopping list entry.
// ID is assigned by the store on insert and never reused; items are
// immutable once created.
type Item struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
