package models

import "time"

// Hardcoded fallback content served on public listing paths when both the
// database and the seed files are unreachable. Admin paths never see these.

func SampleProducts() []Product {
	return []Product{
		{
			ID:       "sample-product-1",
			Name:     Localized("Kombi Cihazı X", "Combi Unit X", "Комби X", "Caldaia X"),
			Category: "combi",
			Images: []string{
				"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800&auto=format&fit=crop",
			},
			Description: Localized(
				"Yüksek verimli kombi cihazı.",
				"High-efficiency combi unit.",
				"Высокоэффективный комбинированный агрегат.",
				"Caldaia ad alta efficienza.",
			),
			Models: []ModelVariant{},
		},
		{
			ID:       "sample-product-2",
			Name:     Localized("Yoğuşmalı Cihaz Y", "Condensing Unit Y", "Конденсационный блок Y", "Caldaia a condensazione Y"),
			Category: "condensing",
			Images: []string{
				"https://images.unsplash.com/photo-1544996901-842263cf165b?w=800&auto=format&fit=crop",
			},
			Description: Localized(
				"Sessiz ve tasarruflu.",
				"Quiet and economical.",
				"Тихий и экономичный.",
				"Silenziosa ed economica.",
			),
			Models: []ModelVariant{},
		},
	}
}

func SampleCategories() []Category {
	return []Category{
		{
			ID:     "combi",
			Name:   "Combi",
			NameEn: "Combi",
			NameIt: "Combi",
			NameTr: "Kombi",
			Icon:   "radiator",
			Image:  "https://images.unsplash.com/photo-1604014239322-9b974e6a5c63?w=800&auto=format&fit=crop",
		},
		{
			ID:     "condensing",
			Name:   "Condensing",
			NameEn: "Condensing",
			NameIt: "Condensing",
			NameTr: "Yoğuşmalı",
			Icon:   "flame",
			Image:  "https://images.unsplash.com/photo-1517245386807-bb43f82c33c4?w=800&auto=format&fit=crop",
		},
	}
}

func SampleCatalogs() []Catalog {
	return []Catalog{
		{
			ID:          "sample-catalog-1",
			Name:        Localized("Ürün Kataloğu", "Product Catalog", "Каталог продукции", "Catalogo Prodotti"),
			Description: Localized("PDF kataloğu indirin.", "Download the PDF catalog.", "Скачать PDF каталог.", "Scarica il catalogo PDF."),
			FileURL:     "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
			Thumbnail:   "https://images.unsplash.com/photo-1519681393784-d120267933ba?w=800&auto=format&fit=crop",
			FileSize:    "1.2 MB",
			Order:       1,
		},
	}
}

// DefaultSiteSettings is the settings record of last resort, also used to
// seed the singleton the first time the admin panel reads it.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:                     SiteSettingsID,
		SiteName:               Localized("WolfTerm Solutions", "WolfTerm Solutions", "WolfTerm Solutions", "WolfTerm Solutions"),
		PrimaryColor:           "#dc2626",
		SecondaryColor:         "#1f2937",
		ContactEmail:           "info@wolfterm.com",
		FooterLinks:            []FooterLink{},
		AboutImages:            []string{},
		FeaturesSectionVisible: true,
		ProductsSectionVisible: true,
		ReviewsSectionVisible:  true,
		UpdatedAt:              time.Now().UTC(),
	}
}
