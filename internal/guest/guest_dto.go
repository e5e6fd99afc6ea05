package guest

type GuestRequest struct {
	Name      string `json:"name" binding:"required,max=120"`
	Email     string `json:"email" binding:"omitempty,email"`
	RSVP      string `json:"rsvp" binding:"omitempty,oneof=pending accepted declined"`
	PartySize int    `json:"party_size" binding:"omitempty,min=1,max=10"`
	Table     string `json:"table" binding:"max=40"`
}

type ListQuery struct {
	RSVP string `form:"rsvp" json:"rsvp" binding:"omitempty,oneof=pending accepted declined"`
}

type GuestResponse struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	RSVP      string `json:"rsvp"`
	PartySize int    `json:"party_size"`
	Table     string `json:"table"`
}

// Summary counts people, not invitations: a party of 3 adds 3.
type Summary struct {
	Invited  int `json:"invited"`
	Accepted int `json:"accepted"`
	Declined int `json:"declined"`
	Pending  int `json:"pending"`
}

type GuestListResponse struct {
	Items   []GuestResponse `json:"items"`
	Summary Summary         `json:"summary"`
}
