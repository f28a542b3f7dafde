package model

// Store is the tenant boundary. Every product and order belongs to exactly one store,
// and every mutating call must prove the caller owns the store it targets.
type Store struct {
	BaseModel
	UserID  string  `db:"user_id" json:"user_id"`
	Name    string  `db:"name" json:"name"`
	Address *string `db:"address" json:"address"`
}
