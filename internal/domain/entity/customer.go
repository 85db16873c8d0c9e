package entity

// Customer is a billing customer. The JSON tags are the record store's
// document shape; ID is assigned by the store on creation and is immutable.
type Customer struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
