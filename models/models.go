package models

import (
	"time"

	"github.com/google/uuid"
)

// ModelVariant is one boiler model within a product line, carrying its
// technical data sheet and the components it is built from.
type ModelVariant struct {
	ModelName      string            `json:"model_name" bson:"model_name"`
	TechnicalSpecs map[string]string `json:"technical_specs" bson:"technical_specs"`
	Components     map[string]string `json:"components" bson:"components"`
}

// Product is a catalog entry. Name and Description accept both the
// localized shape and the legacy plain-string shape. Price and Image are
// legacy fields kept so old documents keep decoding.
type Product struct {
	ID          string         `json:"id" bson:"id"`
	Name        LocalizedText  `json:"name" bson:"name"`
	Category    string         `json:"category" bson:"category"`
	Images      []string       `json:"images" bson:"images"`
	Description LocalizedText  `json:"description" bson:"description"`
	Models      []ModelVariant `json:"models" bson:"models"`
	Price       *float64       `json:"price,omitempty" bson:"price,omitempty"`
	Image       string         `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
}

type Review struct {
	ID     string    `json:"id" bson:"id"`
	Name   string    `json:"name" bson:"name"`
	City   string    `json:"city" bson:"city"`
	Rating int       `json:"rating" bson:"rating"`
	Text   string    `json:"text" bson:"text"`
	Date   time.Time `json:"date" bson:"date"`
}

// Category id doubles as the URL slug and is supplied by the caller, not
// generated. Display names are flat per-language fields for historical
// reasons, not a LocalizedText.
type Category struct {
	ID     string `json:"id" bson:"id"`
	Name   string `json:"name" bson:"name"`
	NameEn string `json:"nameEn" bson:"nameEn"`
	NameIt string `json:"nameIt" bson:"nameIt"`
	NameTr string `json:"nameTr" bson:"nameTr"`
	Icon   string `json:"icon" bson:"icon"`
	Image  string `json:"image" bson:"image"`
}

type HeroSlide struct {
	ID        string        `json:"id" bson:"id"`
	Title     LocalizedText `json:"title" bson:"title"`
	Subtitle  LocalizedText `json:"subtitle" bson:"subtitle"`
	Image     string        `json:"image" bson:"image"`
	Link      string        `json:"link" bson:"link"`
	Order     int           `json:"order" bson:"order"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}

type Catalog struct {
	ID          string        `json:"id" bson:"id"`
	Name        LocalizedText `json:"name" bson:"name"`
	Description LocalizedText `json:"description" bson:"description"`
	FileURL     string        `json:"file_url" bson:"file_url"`
	FileSize    string        `json:"file_size,omitempty" bson:"file_size,omitempty"`
	Thumbnail   string        `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Order       int           `json:"order" bson:"order"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
}

// ContactSubmission is append-only: there is no update or delete path.
type ContactSubmission struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type FooterLink struct {
	Title string `json:"title" bson:"title"`
	URL   string `json:"url" bson:"url"`
	Order int    `json:"order" bson:"order"`
}

// SiteSettingsID is the pinned document key of the settings singleton.
// It is never caller-controlled.
const SiteSettingsID = "site_settings"

// SiteSettings is the singleton document driving site branding, contact
// info, SEO metadata and page copy.
type SiteSettings struct {
	ID string `json:"id" bson:"id"`

	// General
	SiteName       LocalizedText `json:"site_name" bson:"site_name"`
	LogoURL        string        `json:"logo_url" bson:"logo_url"`
	FaviconURL     string        `json:"favicon_url" bson:"favicon_url"`
	PrimaryColor   string        `json:"primary_color" bson:"primary_color"`
	SecondaryColor string        `json:"secondary_color" bson:"secondary_color"`

	// Contact
	ContactEmail   string        `json:"contact_email" bson:"contact_email"`
	ContactPhone   string        `json:"contact_phone" bson:"contact_phone"`
	ContactAddress LocalizedText `json:"contact_address" bson:"contact_address"`
	ContactMapURL  string        `json:"contact_map_url" bson:"contact_map_url"`

	// Social media
	SocialFacebook  string `json:"social_facebook" bson:"social_facebook"`
	SocialInstagram string `json:"social_instagram" bson:"social_instagram"`
	SocialTwitter   string `json:"social_twitter" bson:"social_twitter"`
	SocialLinkedin  string `json:"social_linkedin" bson:"social_linkedin"`
	SocialYoutube   string `json:"social_youtube" bson:"social_youtube"`
	SocialVK        string `json:"social_vk" bson:"social_vk"`
	SocialWhatsapp  string `json:"social_whatsapp" bson:"social_whatsapp"`

	// SEO
	MetaTitle         LocalizedText `json:"meta_title" bson:"meta_title"`
	MetaDescription   LocalizedText `json:"meta_description" bson:"meta_description"`
	MetaKeywords      LocalizedText `json:"meta_keywords" bson:"meta_keywords"`
	GoogleAnalyticsID string        `json:"google_analytics_id" bson:"google_analytics_id"`

	// Footer
	FooterText      LocalizedText `json:"footer_text" bson:"footer_text"`
	FooterCopyright LocalizedText `json:"footer_copyright" bson:"footer_copyright"`
	FooterLinks     []FooterLink  `json:"footer_links" bson:"footer_links"`

	// About page
	AboutTitle   LocalizedText `json:"about_title" bson:"about_title"`
	AboutContent LocalizedText `json:"about_content" bson:"about_content"`
	AboutImages  []string      `json:"about_images" bson:"about_images"`

	// Homepage
	HeroTitle              LocalizedText `json:"hero_title" bson:"hero_title"`
	HeroSubtitle           LocalizedText `json:"hero_subtitle" bson:"hero_subtitle"`
	FeaturesSectionVisible bool          `json:"features_section_visible" bson:"features_section_visible"`
	ProductsSectionVisible bool          `json:"products_section_visible" bson:"products_section_visible"`
	ReviewsSectionVisible  bool          `json:"reviews_section_visible" bson:"reviews_section_visible"`

	// Custom styling
	CustomCSS string `json:"custom_css" bson:"custom_css"`
	CustomJS  string `json:"custom_js" bson:"custom_js"`

	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NewID returns a fresh string document key.
func NewID() string {
	return uuid.NewString()
}
