package request

type InitiateTransferRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required"`
}

type ClaimTransferRequest struct {
	ClaimToken string `json:"claim_token" binding:"required"`
}
