package dto

// LoginRequest carries the shared staff passphrase. Remember extends
// the session to the long-lived TTL for trusted kiosk devices.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

// LoginResponse returns the signed session token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
	Remember  bool   `json:"remember"`
}
