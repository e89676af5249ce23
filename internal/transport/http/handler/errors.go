package handler

const (
	errInternalServer     = "Internal server error"
	errDuplicateUser      = "User already exists"
	errInvalidCredentials = "Invalid Credentials"
	errUserNotFound       = "User not found"

	errContactNotFound  = "Contact not found"
	errContactRequired  = "Name and phone are required"
	errContactBadEmail  = "Invalid email format"
	errContactDuplicate = "Email already exists in your contacts"
	msgContactDeleted   = "Contact deleted successfully"
)
