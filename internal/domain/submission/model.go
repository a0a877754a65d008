package submission

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Channel values recorded in SourceMeta.
const (
	ChannelWeb    = "web"
	ChannelWizard = "wizard"
)

// Submission is one stored questionnaire answer set. Multi-select answers are
// kept as "; "-joined strings; blank optional answers are NULL.
type Submission struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	FullName     string  `json:"full_name" gorm:"not null"`
	CompanyName  *string `json:"company_name"`
	RolePosition *string `json:"role_position"`
	WorkEmail    string  `json:"work_email" gorm:"not null"`
	Phone        *string `json:"phone"`
	WebsiteLinks *string `json:"website_links"`

	Services      string  `json:"services" gorm:"type:text;not null;default:''"`
	ServicesOther *string `json:"services_other" gorm:"type:text"`

	VideoCountOption       *string `json:"video_count_option"`
	VideoCustomRequirement *string `json:"video_custom_requirement" gorm:"type:text"`
	VideoUsagePlatforms    string  `json:"video_usage_platforms" gorm:"type:text;not null;default:''"`
	HasRawFootage          *string `json:"has_raw_footage"`

	WebServices         string  `json:"web_services" gorm:"type:text;not null;default:''"`
	ChatbotPlatform     *string `json:"chatbot_platform"`
	HasExistingWebsite  *string `json:"has_existing_website"`
	ExistingWebsiteLink *string `json:"existing_website_link"`
	WebsitePurpose      *string `json:"website_purpose"`

	BrandServices  string  `json:"brand_services" gorm:"type:text;not null;default:''"`
	BrandName      *string `json:"brand_name"`
	BrandFilesLink *string `json:"brand_files_link"`

	AdGoal            *string `json:"ad_goal"`
	AdBudget          *string `json:"ad_budget"`
	AdTargetLocations *string `json:"ad_target_locations" gorm:"type:text"`

	FavoriteColors    *string `json:"favorite_colors" gorm:"type:text"`
	BusinessModel     *string `json:"business_model" gorm:"type:text"`
	FutureVision      *string `json:"future_vision" gorm:"type:text"`
	InspirationBrands *string `json:"inspiration_brands"`
	HowHeard          *string `json:"how_heard"`

	SourceMeta datatypes.JSONMap `json:"source_meta,omitempty" gorm:"type:jsonb"`
}

func (Submission) TableName() string {
	return "submissions"
}

// BeforeCreate assigns the server-side identity when the caller left it empty.
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
