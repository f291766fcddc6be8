package handler

const (
	msgInitialized     = "Database Initialized"
	msgUserNotFound    = "%s not found!"
	msgNoUsers         = "No users found"
	msgEmailNotChanged = "%s not found! Unable to update email."
	msgEmailChanged    = "Updated %s's email to %s"
	msgUserExists      = "Error: A user with the username '%s' already exists."
	msgUserNotDeleted  = "%s not found! Unable to delete user."
	msgUserDeleted     = "Deleted user %s"
	msgInvalidArgs     = "Error: invalid arguments: %s"
)
