package walkers

// Walker es el perfil público de un paseador. Solo lectura desde la web.
type Walker struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id,omitempty"`
	UserName        string   `json:"user_name"`
	Bio             string   `json:"bio"`
	Location        string   `json:"location"`
	Specialties     []string `json:"specialties"`
	Rating          float64  `json:"rating"`
	ReviewsCount    int      `json:"reviews_count"`
	ExperienceYears int      `json:"experience_years"`
	PriceFrom       float64  `json:"price_from"`
	Availability    string   `json:"availability"`
	IsVerified      bool     `json:"is_verified"`
	ProfileImage    string   `json:"profile_image,omitempty"`
}
