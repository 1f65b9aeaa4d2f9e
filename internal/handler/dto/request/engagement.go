package request

import (
	"fervo/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckInRequest struct {
	// Payload is the raw string decoded from the event QR code.
	Payload string `json:"payload" binding:"required,max=1024"`
}

type SubmitRatingRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

func (r *SubmitRatingRequest) ToCommand(eventID uuid.UUID) commands.SubmitRatingRequest {
	return commands.SubmitRatingRequest{EventID: eventID, Score: r.Rating, Comment: r.Comment}
}

type RedeemCouponRequest struct {
	Code string `json:"code" binding:"required,max=32"`
}

type PushTokenRequest struct {
	Token string `json:"token" binding:"required,max=255"`
}

type CheckoutRequest struct {
	Plan string `json:"plan" binding:"required,oneof=basic pro"`
}
