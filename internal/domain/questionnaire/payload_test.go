package questionnaire

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeList(t *testing.T) {
	assert.Equal(t, "", EncodeList(nil))
	assert.Equal(t, "", EncodeList([]string{}))
	assert.Equal(t, "TikTok", EncodeList([]string{"TikTok"}))

	items := []string{"Instagram Reels", "TikTok", "YouTube"}
	encoded := EncodeList(items)
	assert.Equal(t, "Instagram Reels; TikTok; YouTube", encoded)

	if diff := cmp.Diff(items, DecodeList(encoded)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, DecodeList(""))
	assert.NotNil(t, DecodeList(""))
}

func TestNewSubmissionPayload_Flattening(t *testing.T) {
	s := NewFormState()
	s.FullName = "Jane Doe"
	s.WorkEmail = "jane@example.com"
	s.CompanyName = "Acme"
	s.Phone = "  "
	s.Services = []string{ServiceWebDevelopment}

	p := NewSubmissionPayload(s)

	assert.Equal(t, "Jane Doe", p.FullName)
	assert.Equal(t, "jane@example.com", p.WorkEmail)
	assert.Equal(t, "Web / Software Development", p.Services)
	assert.Equal(t, "", p.WebServices)
	assert.Equal(t, "", p.VideoUsagePlatforms)
	assert.Equal(t, "", p.BrandServices)
	require.NotNil(t, p.CompanyName)
	assert.Equal(t, "Acme", *p.CompanyName)
	assert.Nil(t, p.Phone, "blank optional scalar becomes null")
	assert.Nil(t, p.HowHeard)
}

func TestNewSubmissionPayload_JSONShape(t *testing.T) {
	s := NewFormState()
	s.FullName = "Jane"
	s.WorkEmail = "a@b.com"
	s.Services = []string{ServiceVideoEditing, ServiceMetaAds}

	raw, err := json.Marshal(NewSubmissionPayload(s))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "Video Editing; Meta Ads (Facebook / Instagram)", decoded["services"])
	assert.Equal(t, "", decoded["web_services"])
	v, present := decoded["company_name"]
	assert.True(t, present, "optional fields are sent explicitly")
	assert.Nil(t, v)
	// 4 lists + 24 scalars
	assert.Len(t, decoded, 28)
}
