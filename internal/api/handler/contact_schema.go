package handler

type contactRequest struct {
	Name    string `json:"name"    validate:"required,min=2,max=100,person_name"`
	Email   string `json:"email"   validate:"required,max=255,email"`
	Phone   string `json:"phone"   validate:"required,min=8,max=20,phone_chars"`
	Message string `json:"message" validate:"required,min=10,max=2000,safe_text"`
}

type contactResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}
