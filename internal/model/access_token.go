package model

// AccessToken is the object embedded in the JWT issued by the auth
// collaborator. This service only consumes it.
type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
