package questionnaire

import "sort"

// Field names as they appear in FormState JSON and in the submission payload.
const (
	FieldFullName               = "full_name"
	FieldCompanyName            = "company_name"
	FieldRolePosition           = "role_position"
	FieldWorkEmail              = "work_email"
	FieldPhone                  = "phone"
	FieldWebsiteLinks           = "website_links"
	FieldServices               = "services"
	FieldServicesOther          = "services_other"
	FieldVideoCountOption       = "video_count_option"
	FieldVideoCustomRequirement = "video_custom_requirement"
	FieldVideoUsagePlatforms    = "video_usage_platforms"
	FieldHasRawFootage          = "has_raw_footage"
	FieldWebServices            = "web_services"
	FieldChatbotPlatform        = "chatbot_platform"
	FieldHasExistingWebsite     = "has_existing_website"
	FieldExistingWebsiteLink    = "existing_website_link"
	FieldWebsitePurpose         = "website_purpose"
	FieldBrandServices          = "brand_services"
	FieldBrandName              = "brand_name"
	FieldBrandFilesLink         = "brand_files_link"
	FieldAdGoal                 = "ad_goal"
	FieldAdBudget               = "ad_budget"
	FieldAdTargetLocations      = "ad_target_locations"
	FieldFavoriteColors         = "favorite_colors"
	FieldBusinessModel          = "business_model"
	FieldFutureVision           = "future_vision"
	FieldInspirationBrands      = "inspiration_brands"
	FieldHowHeard               = "how_heard"
)

// Service choices on step 2 that unlock the conditional steps.
const (
	ServiceWebDevelopment = "Web / Software Development"
	ServiceBrandIdentity  = "Complete Brand Identity"
	ServiceVideoEditing   = "Video Editing"
	ServiceMotionGraphics = "Motion Graphics"
	ServiceMetaAds        = "Meta Ads (Facebook / Instagram)"
	ServiceSomethingElse  = "Something else"
)

// FormState is the full set of answers collected by the wizard. Multi-select
// fields are ordered and free of duplicates.
type FormState struct {
	FullName     string `json:"full_name"`
	CompanyName  string `json:"company_name"`
	RolePosition string `json:"role_position"`
	WorkEmail    string `json:"work_email"`
	Phone        string `json:"phone"`
	WebsiteLinks string `json:"website_links"`

	Services      []string `json:"services"`
	ServicesOther string   `json:"services_other"`

	VideoCountOption       string   `json:"video_count_option"`
	VideoCustomRequirement string   `json:"video_custom_requirement"`
	VideoUsagePlatforms    []string `json:"video_usage_platforms"`
	HasRawFootage          string   `json:"has_raw_footage"`

	WebServices         []string `json:"web_services"`
	ChatbotPlatform     string   `json:"chatbot_platform"`
	HasExistingWebsite  string   `json:"has_existing_website"`
	ExistingWebsiteLink string   `json:"existing_website_link"`
	WebsitePurpose      string   `json:"website_purpose"`

	BrandServices  []string `json:"brand_services"`
	BrandName      string   `json:"brand_name"`
	BrandFilesLink string   `json:"brand_files_link"`

	AdGoal            string `json:"ad_goal"`
	AdBudget          string `json:"ad_budget"`
	AdTargetLocations string `json:"ad_target_locations"`

	FavoriteColors    string `json:"favorite_colors"`
	BusinessModel     string `json:"business_model"`
	FutureVision      string `json:"future_vision"`
	InspirationBrands string `json:"inspiration_brands"`
	HowHeard          string `json:"how_heard"`
}

// NewFormState returns a state with every scalar blank and every multi-select empty.
func NewFormState() FormState {
	return FormState{
		Services:            []string{},
		VideoUsagePlatforms: []string{},
		WebServices:         []string{},
		BrandServices:       []string{},
	}
}

var scalarFields = map[string]func(*FormState) *string{
	FieldFullName:               func(s *FormState) *string { return &s.FullName },
	FieldCompanyName:            func(s *FormState) *string { return &s.CompanyName },
	FieldRolePosition:           func(s *FormState) *string { return &s.RolePosition },
	FieldWorkEmail:              func(s *FormState) *string { return &s.WorkEmail },
	FieldPhone:                  func(s *FormState) *string { return &s.Phone },
	FieldWebsiteLinks:           func(s *FormState) *string { return &s.WebsiteLinks },
	FieldServicesOther:          func(s *FormState) *string { return &s.ServicesOther },
	FieldVideoCountOption:       func(s *FormState) *string { return &s.VideoCountOption },
	FieldVideoCustomRequirement: func(s *FormState) *string { return &s.VideoCustomRequirement },
	FieldHasRawFootage:          func(s *FormState) *string { return &s.HasRawFootage },
	FieldChatbotPlatform:        func(s *FormState) *string { return &s.ChatbotPlatform },
	FieldHasExistingWebsite:     func(s *FormState) *string { return &s.HasExistingWebsite },
	FieldExistingWebsiteLink:    func(s *FormState) *string { return &s.ExistingWebsiteLink },
	FieldWebsitePurpose:         func(s *FormState) *string { return &s.WebsitePurpose },
	FieldBrandName:              func(s *FormState) *string { return &s.BrandName },
	FieldBrandFilesLink:         func(s *FormState) *string { return &s.BrandFilesLink },
	FieldAdGoal:                 func(s *FormState) *string { return &s.AdGoal },
	FieldAdBudget:               func(s *FormState) *string { return &s.AdBudget },
	FieldAdTargetLocations:      func(s *FormState) *string { return &s.AdTargetLocations },
	FieldFavoriteColors:         func(s *FormState) *string { return &s.FavoriteColors },
	FieldBusinessModel:          func(s *FormState) *string { return &s.BusinessModel },
	FieldFutureVision:           func(s *FormState) *string { return &s.FutureVision },
	FieldInspirationBrands:      func(s *FormState) *string { return &s.InspirationBrands },
	FieldHowHeard:               func(s *FormState) *string { return &s.HowHeard },
}

var multiSelectFields = map[string]func(*FormState) *[]string{
	FieldServices:            func(s *FormState) *[]string { return &s.Services },
	FieldVideoUsagePlatforms: func(s *FormState) *[]string { return &s.VideoUsagePlatforms },
	FieldWebServices:         func(s *FormState) *[]string { return &s.WebServices },
	FieldBrandServices:       func(s *FormState) *[]string { return &s.BrandServices },
}

// IsScalarField reports whether name is a single-valued field.
func IsScalarField(name string) bool {
	_, ok := scalarFields[name]
	return ok
}

// IsMultiSelectField reports whether name is one of the four multi-select fields.
func IsMultiSelectField(name string) bool {
	_, ok := multiSelectFields[name]
	return ok
}

// ScalarFieldNames returns the scalar field names in lexical order.
func ScalarFieldNames() []string {
	return sortedKeys(scalarFields)
}

// MultiSelectFieldNames returns the multi-select field names in lexical order.
func MultiSelectFieldNames() []string {
	return sortedKeys(multiSelectFields)
}

// Value returns the value of a scalar field.
func (s FormState) Value(field string) (string, error) {
	get, ok := scalarFields[field]
	if !ok {
		return "", unknownField(field)
	}
	return *get(&s), nil
}

// Selected returns a copy of a multi-select field.
func (s FormState) Selected(field string) ([]string, error) {
	get, ok := multiSelectFields[field]
	if !ok {
		return nil, notMultiSelect(field)
	}
	return append([]string{}, *get(&s)...), nil
}

// Has reports whether value is selected in a multi-select field. Unknown
// fields report false.
func (s FormState) Has(field, value string) bool {
	get, ok := multiSelectFields[field]
	if !ok {
		return false
	}
	return contains(*get(&s), value)
}

// Clone returns a deep copy so callers may mutate the result freely.
func (s FormState) Clone() FormState {
	out := s
	out.Services = append([]string{}, s.Services...)
	out.VideoUsagePlatforms = append([]string{}, s.VideoUsagePlatforms...)
	out.WebServices = append([]string{}, s.WebServices...)
	out.BrandServices = append([]string{}, s.BrandServices...)
	return out
}

// Normalize restores the invariants after the state was decoded from an
// external representation: nil sequences become empty, duplicates are dropped
// keeping the first occurrence.
func (s *FormState) Normalize() {
	for _, get := range multiSelectFields {
		list := get(s)
		*list = dedupe(*list)
	}
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func contains(values []string, v string) bool {
	return indexOf(values, v) >= 0
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
