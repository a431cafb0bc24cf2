package models

// Hero is one hero section slide.
type Hero struct {
	ID                    int64  `json:"id"`
	TitleFa               string `json:"title_fa"`
	TitleEn               string `json:"title_en"`
	SubtitleFa            string `json:"subtitle_fa"`
	SubtitleEn            string `json:"subtitle_en"`
	BackgroundImage       string `json:"background_image,omitempty"`
	CTAButtonTextFa       string `json:"cta_button_text_fa,omitempty"`
	CTAButtonTextEn       string `json:"cta_button_text_en,omitempty"`
	CTAButtonLink         string `json:"cta_button_link,omitempty"`
	SecondaryButtonTextFa string `json:"secondary_button_text_fa,omitempty"`
	SecondaryButtonTextEn string `json:"secondary_button_text_en,omitempty"`
	SecondaryButtonLink   string `json:"secondary_button_link,omitempty"`
	IsActive              bool   `json:"is_active"`
	Order                 int    `json:"order"`
}

// Service is one offered service card.
type Service struct {
	ID            int64    `json:"id"`
	TitleFa       string   `json:"title_fa"`
	TitleEn       string   `json:"title_en"`
	DescriptionFa string   `json:"description_fa"`
	DescriptionEn string   `json:"description_en"`
	Icon          string   `json:"icon,omitempty"`
	Image         string   `json:"image,omitempty"`
	Technologies  []string `json:"technologies,omitempty"`
	FeaturesFa    []string `json:"features_fa,omitempty"`
	FeaturesEn    []string `json:"features_en,omitempty"`
	CodeSnippet   string   `json:"code_snippet,omitempty"`
	IsActive      bool     `json:"is_active"`
	Order         int      `json:"order"`
}

// TeamMember is one entry on the team page.
type TeamMember struct {
	ID              int64    `json:"id"`
	NameFa          string   `json:"name_fa"`
	NameEn          string   `json:"name_en"`
	PositionFa      string   `json:"position_fa"`
	PositionEn      string   `json:"position_en"`
	BioFa           string   `json:"bio_fa,omitempty"`
	BioEn           string   `json:"bio_en,omitempty"`
	Photo           string   `json:"photo,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceYears int      `json:"experience_years"`
	ProjectsCount   int      `json:"projects_count"`
	Email           string   `json:"email,omitempty"`
	LinkedIn        string   `json:"linkedin,omitempty"`
	Twitter         string   `json:"twitter,omitempty"`
	IsActive        bool     `json:"is_active"`
	Order           int      `json:"order"`
}

// AboutSection is the about page content with its counters.
type AboutSection struct {
	ID                int64  `json:"id"`
	TitleFa           string `json:"title_fa"`
	TitleEn           string `json:"title_en"`
	DescriptionFa     string `json:"description_fa"`
	DescriptionEn     string `json:"description_en"`
	Image             string `json:"image,omitempty"`
	VideoURL          string `json:"video_url,omitempty"`
	ProjectsCompleted int    `json:"projects_completed"`
	HappyClients      int    `json:"happy_clients"`
	AwardsWon         int    `json:"awards_won"`
	YearsExperience   int    `json:"years_experience"`
}

// ContactInfo is the public contact block.
type ContactInfo struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	Phone1        string `json:"phone1"`
	Phone2        string `json:"phone2,omitempty"`
	AddressFa     string `json:"address_fa"`
	AddressEn     string `json:"address_en"`
	GoogleMapsURL string `json:"google_maps_url,omitempty"`
	Instagram     string `json:"instagram,omitempty"`
	Telegram      string `json:"telegram,omitempty"`
	LinkedIn      string `json:"linkedin,omitempty"`
	Twitter       string `json:"twitter,omitempty"`
}

// ContactMessage is the payload for POST /core/contact/. The id, read
// flag, and timestamp are server-assigned and appear on the admin list.
type ContactMessage struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// SiteSetting is one global key/value setting, admin-managed.
type SiteSetting struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// SiteContent is the aggregated public content for one language,
// GET /core/content/?lang=. The hero, about, and contact blocks are
// single objects and may be null.
type SiteContent struct {
	Language string        `json:"language"`
	Hero     *Hero         `json:"hero,omitempty"`
	Services []Service     `json:"services"`
	Team     []TeamMember  `json:"team"`
	About    *AboutSection `json:"about,omitempty"`
	Contact  *ContactInfo  `json:"contact,omitempty"`
}
