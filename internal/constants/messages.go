package constants

// User-facing messages. Handlers and services must only surface these
// strings, never collaborator error text.
const (
	MsgNameRequired     = "Name is required."
	MsgEmailRequired    = "Email is required."
	MsgPasswordRequired = "Password is required."
	MsgTokenRequired    = "Token is required."
	MsgInvalidToken     = "Token is invalid."
	MsgExpiredToken     = "Token is expired."
	MsgInactiveToken    = "Token is inactive."
	MsgAuthFail         = "Authentication is failed."
	MsgEmailExist       = "Email is already exist."
	MsgUserNotExist     = "User is not found."
	MsgInvalidCred      = "Invalid credentials."
	MsgUserAdded        = "User added successfully."
	MsgUserLogin        = "User login successfully."
	MsgSomethingWrong   = "Something went wrong."
	MsgProductInvalid   = "Product id is invalid."
	MsgQuantityInvalid  = "Quantity is invalid."
	MsgProductNotExist  = "Product is not found."
	MsgProductAdded     = "Product has been added to your cart."
	MsgCartNotFound     = "Cart details not found."
	MsgSeederDone       = "Seeder running successful."
)
