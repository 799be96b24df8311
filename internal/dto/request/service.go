package request

type CreateServiceRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=120"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Duration int     `json:"duration" validate:"required,gt=0"` // minutes
}
