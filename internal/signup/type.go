package signup

// SignupRequest fields are validated by the service so the reserved
// username is reported regardless of the email.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
