package request_models

type AddExperienceRequest struct {
	Location   string `json:"location" binding:"required"`
	Experience string `json:"experience" binding:"required"`
	Rating     *int   `json:"rating" binding:"omitempty,min=1,max=5"`
	TripID     string `json:"tripId"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}
