package dto

type CreateStoreInput struct {
	UserID  string
	Name    string
	Address string
}

type UpdateStoreInput struct {
	ID      string
	UserID  string
	Name    string
	Address string
}
