package waitlist

// JoinWaitlistRequest is the signup payload posted by the site's waitlist
// form. Validation is ordered and happens in the service, not in binding
// tags, so the published error messages and their precedence hold.
type JoinWaitlistRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
	UseCase      string `json:"useCase"`
	Page         string `json:"page"`
}

// RequestMeta carries the ambient transport metadata recorded alongside
// a signup.
type RequestMeta struct {
	UserAgent string
	IPAddress string
}

// JoinWaitlistResult is the wire shape returned to the form. Status is
// only present on the idempotent "already enrolled" path.
type JoinWaitlistResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}
