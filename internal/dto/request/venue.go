package request

type VenueRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"max=1000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Picture     string  `json:"picture" validate:"max=255"`
	Address     string  `json:"address" validate:"required,min=1,max=255"`
	OpenTime    string  `json:"open_time" validate:"required,datetime=15:04"`
	CloseTime   string  `json:"close_time" validate:"required,datetime=15:04"`
}

type VenueUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Picture     *string  `json:"picture,omitempty" validate:"omitempty,max=255"`
	Address     *string  `json:"address,omitempty" validate:"omitempty,min=1,max=255"`
	OpenTime    *string  `json:"open_time,omitempty" validate:"omitempty,datetime=15:04"`
	CloseTime   *string  `json:"close_time,omitempty" validate:"omitempty,datetime=15:04"`
}
