package response

type Brand struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Image     string `json:"image"`
	CreatedAt string `json:"created_at"`
}

type Camera struct {
	ID        string    `json:"id"`
	BrandID   string    `json:"brand_id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Available bool      `json:"available"`
	Image     string    `json:"image"`
	Features  []Feature `json:"features,omitempty"`
	CreatedAt string    `json:"created_at"`
}

type Feature struct {
	ID       string `json:"id"`
	CameraID string `json:"camera_id"`
	Value    string `json:"value"`
}

type Banner struct {
	ID       string `json:"id"`
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Event    string `json:"event"`
}

type Image struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Image string `json:"image"`
}
