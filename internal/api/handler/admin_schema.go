package handler

type updateTaskStatusRequest struct {
	Status   string `json:"status"   validate:"required,oneof=approved rejected"`
	Feedback string `json:"feedback"`
}

type setVerificationRequest struct {
	IsVerified *bool `json:"isVerified" validate:"required"`
}
