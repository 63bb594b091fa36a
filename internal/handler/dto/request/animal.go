package request

type CreateAnimalRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Breed    string  `json:"breed" binding:"required,max=100"`
	PhotoURL *string `json:"photo_url" binding:"omitempty,url"`
}
