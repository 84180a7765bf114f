package models

// User represents an account stored in the users collection
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never serialize password hash
	Role         Role   `json:"user_type"`
	Address      string `json:"address"`
	Email        string `json:"email"`
	IsDeleted    bool   `json:"-"`
}

// SignupRequest is the body of POST /signup and POST /members
type SignupRequest struct {
	Username string `json:"username" example:"jdoe"`
	Password string `json:"password" example:"Testtest1#"`
	UserType string `json:"user_type" example:"librarian"`
	Address  string `json:"address" example:"street rd"`
	Email    string `json:"email" example:"jdoe@example.com"`
}

// UpdateMemberRequest is the body of PUT /members/{member_id}.
// Role is not part of it: roles are fixed at creation.
type UpdateMemberRequest struct {
	Username string `json:"username" example:"jdoe"`
	Address  string `json:"address,omitempty" example:"street rd"`
	Email    string `json:"email,omitempty" example:"jdoe@example.com"`
}

// LoginResponse is returned by login and signup
type LoginResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	UserType    Role   `json:"user_type"`
	AccessToken string `json:"access_token"`
}

// MemberListItem is a single entry of GET /members
type MemberListItem struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}

// MemberDetails is the body of GET /members/{member_id}
type MemberDetails struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	UserType Role   `json:"user_type"`
	Address  string `json:"address"`
	Email    string `json:"email"`
}

// ListItem converts a user into its list representation
func (u *User) ListItem() MemberListItem {
	status := "Active"
	if u.IsDeleted {
		status = "Deleted"
	}
	return MemberListItem{
		ID:       u.ID,
		Username: u.Username,
		Address:  u.Address,
		Email:    u.Email,
		Status:   status,
	}
}

// Details converts a user into its detailed representation
func (u *User) Details() MemberDetails {
	return MemberDetails{
		ID:       u.ID,
		Username: u.Username,
		UserType: u.Role,
		Address:  u.Address,
		Email:    u.Email,
	}
}
