package submission

// CreateSubmissionInput is the body of POST /api/submit. Every optional key may
// be absent or null.
type CreateSubmissionInput struct {
	FullName     string  `json:"full_name" binding:"required" example:"Jane Doe"`
	CompanyName  *string `json:"company_name" example:"Acme"`
	RolePosition *string `json:"role_position" example:"Founder"`
	WorkEmail    string  `json:"work_email" binding:"required" example:"jane@acme.com"`
	Phone        *string `json:"phone" example:"+1 234 567 8900"`
	WebsiteLinks *string `json:"website_links"`

	Services      *string `json:"services" example:"Video Editing; Meta Ads (Facebook / Instagram)"`
	ServicesOther *string `json:"services_other"`

	VideoCountOption       *string `json:"video_count_option"`
	VideoCustomRequirement *string `json:"video_custom_requirement"`
	VideoUsagePlatforms    *string `json:"video_usage_platforms"`
	HasRawFootage          *string `json:"has_raw_footage"`

	WebServices         *string `json:"web_services"`
	ChatbotPlatform     *string `json:"chatbot_platform"`
	HasExistingWebsite  *string `json:"has_existing_website"`
	ExistingWebsiteLink *string `json:"existing_website_link"`
	WebsitePurpose      *string `json:"website_purpose"`

	BrandServices  *string `json:"brand_services"`
	BrandName      *string `json:"brand_name"`
	BrandFilesLink *string `json:"brand_files_link"`

	AdGoal            *string `json:"ad_goal"`
	AdBudget          *string `json:"ad_budget"`
	AdTargetLocations *string `json:"ad_target_locations"`

	FavoriteColors    *string `json:"favorite_colors"`
	BusinessModel     *string `json:"business_model"`
	FutureVision      *string `json:"future_vision"`
	InspirationBrands *string `json:"inspiration_brands"`
	HowHeard          *string `json:"how_heard"`
}

// Source describes where a create request came from.
type Source struct {
	Channel   string
	UserAgent string
	ClientIP  string
}

// AdminLoginInput is the body of POST /api/admin/login.
type AdminLoginInput struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// AdminToken is returned on a successful admin login.
type AdminToken struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at" example:"1760000000"`
}
