package auth

// Principal is the authenticated identity attached to one request. It is
// built from verified token claims and never outlives the request.
type Principal struct {
	Username string
	IsAdmin  bool
}
