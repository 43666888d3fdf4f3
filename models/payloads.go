package models

// Request binding payloads. Server-assigned fields (id, timestamps) are
// absent here and filled in by the repositories.

type ProductPayload struct {
	Name        LocalizedText  `json:"name" binding:"required"`
	Category    string         `json:"category" binding:"required"`
	Images      []string       `json:"images"`
	Description LocalizedText  `json:"description"`
	Models      []ModelVariant `json:"models"`
	Price       *float64       `json:"price"`
	Image       string         `json:"image"`
}

type ReviewPayload struct {
	Name   string `json:"name" binding:"required"`
	City   string `json:"city" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text" binding:"required"`
}

type ContactPayload struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// CategoryPayload carries a caller-chosen id, which doubles as the URL
// slug. Collisions overwrite the existing document.
type CategoryPayload struct {
	ID     string `json:"id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	NameEn string `json:"nameEn"`
	NameIt string `json:"nameIt"`
	NameTr string `json:"nameTr"`
	Icon   string `json:"icon"`
	Image  string `json:"image"`
}

func (p CategoryPayload) ToCategory() Category {
	return Category{
		ID:     p.ID,
		Name:   p.Name,
		NameEn: p.NameEn,
		NameIt: p.NameIt,
		NameTr: p.NameTr,
		Icon:   p.Icon,
		Image:  p.Image,
	}
}

type HeroSlidePayload struct {
	Title    LocalizedText `json:"title"`
	Subtitle LocalizedText `json:"subtitle"`
	Image    string        `json:"image" binding:"required"`
	Link     string        `json:"link"`
	Order    int           `json:"order"`
}

type CatalogPayload struct {
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	FileURL     string        `json:"file_url" binding:"required"`
	FileSize    string        `json:"file_size"`
	Thumbnail   string        `json:"thumbnail"`
	Order       int           `json:"order"`
}

type LoginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

type DashboardStats struct {
	TotalProducts   int64     `json:"total_products"`
	TotalReviews    int64     `json:"total_reviews"`
	TotalCategories int64     `json:"total_categories"`
	TotalHeroSlides int64     `json:"total_hero_slides"`
	RecentProducts  []Product `json:"recent_products"`
	RecentReviews   []Review  `json:"recent_reviews"`
}
