package request

type Brand struct {
	Name string `json:"name" validate:"max=255"`
}

type Camera struct {
	BrandID   string `json:"brand_id" validate:"required,uuid"`
	Name      string `json:"name" validate:"required,max=255"`
	Price     string `json:"price" validate:"required"`
	Available *bool  `json:"available"`
}

type CameraFilter struct {
	Available string `query:"available" validate:"omitempty,oneof=true false"`
	BrandID   string `query:"brand_id" validate:"omitempty,uuid"`
}

type Feature struct {
	Value string `json:"value" validate:"required,max=255"`
}

type Banner struct {
	Title    string `json:"title" validate:"required,max=255"`
	Subtitle string `json:"subtitle" validate:"max=255"`
	Event    string `json:"event" validate:"max=255"`
}
