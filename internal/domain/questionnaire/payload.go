package questionnaire

import "strings"

// ListDelimiter joins multi-select values for storage.
const ListDelimiter = "; "

// EncodeList flattens a multi-select sequence. An empty sequence encodes to "".
func EncodeList(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return strings.Join(values, ListDelimiter)
}

// DecodeList is the inverse of EncodeList. "" decodes to an empty sequence.
func DecodeList(encoded string) []string {
	if encoded == "" {
		return []string{}
	}
	return strings.Split(encoded, ListDelimiter)
}

// SubmissionPayload is the wire form of a FormState sent to the sink's create
// endpoint. Optional scalars are nil when blank so they marshal as null.
type SubmissionPayload struct {
	FullName               string  `json:"full_name"`
	CompanyName            *string `json:"company_name"`
	RolePosition           *string `json:"role_position"`
	WorkEmail              string  `json:"work_email"`
	Phone                  *string `json:"phone"`
	WebsiteLinks           *string `json:"website_links"`
	Services               string  `json:"services"`
	ServicesOther          *string `json:"services_other"`
	VideoCountOption       *string `json:"video_count_option"`
	VideoCustomRequirement *string `json:"video_custom_requirement"`
	VideoUsagePlatforms    string  `json:"video_usage_platforms"`
	HasRawFootage          *string `json:"has_raw_footage"`
	WebServices            string  `json:"web_services"`
	ChatbotPlatform        *string `json:"chatbot_platform"`
	HasExistingWebsite     *string `json:"has_existing_website"`
	ExistingWebsiteLink    *string `json:"existing_website_link"`
	WebsitePurpose         *string `json:"website_purpose"`
	BrandServices          string  `json:"brand_services"`
	BrandName              *string `json:"brand_name"`
	BrandFilesLink         *string `json:"brand_files_link"`
	AdGoal                 *string `json:"ad_goal"`
	AdBudget               *string `json:"ad_budget"`
	AdTargetLocations      *string `json:"ad_target_locations"`
	FavoriteColors         *string `json:"favorite_colors"`
	BusinessModel          *string `json:"business_model"`
	FutureVision           *string `json:"future_vision"`
	InspirationBrands      *string `json:"inspiration_brands"`
	HowHeard               *string `json:"how_heard"`
}

// NewSubmissionPayload projects a FormState onto its wire form.
func NewSubmissionPayload(s FormState) SubmissionPayload {
	return SubmissionPayload{
		FullName:               s.FullName,
		CompanyName:            optional(s.CompanyName),
		RolePosition:           optional(s.RolePosition),
		WorkEmail:              s.WorkEmail,
		Phone:                  optional(s.Phone),
		WebsiteLinks:           optional(s.WebsiteLinks),
		Services:               EncodeList(s.Services),
		ServicesOther:          optional(s.ServicesOther),
		VideoCountOption:       optional(s.VideoCountOption),
		VideoCustomRequirement: optional(s.VideoCustomRequirement),
		VideoUsagePlatforms:    EncodeList(s.VideoUsagePlatforms),
		HasRawFootage:          optional(s.HasRawFootage),
		WebServices:            EncodeList(s.WebServices),
		ChatbotPlatform:        optional(s.ChatbotPlatform),
		HasExistingWebsite:     optional(s.HasExistingWebsite),
		ExistingWebsiteLink:    optional(s.ExistingWebsiteLink),
		WebsitePurpose:         optional(s.WebsitePurpose),
		BrandServices:          EncodeList(s.BrandServices),
		BrandName:              optional(s.BrandName),
		BrandFilesLink:         optional(s.BrandFilesLink),
		AdGoal:                 optional(s.AdGoal),
		AdBudget:               optional(s.AdBudget),
		AdTargetLocations:      optional(s.AdTargetLocations),
		FavoriteColors:         optional(s.FavoriteColors),
		BusinessModel:          optional(s.BusinessModel),
		FutureVision:           optional(s.FutureVision),
		InspirationBrands:      optional(s.InspirationBrands),
		HowHeard:               optional(s.HowHeard),
	}
}

func optional(v string) *string {
	if isBlank(v) {
		return nil
	}
	return &v
}
