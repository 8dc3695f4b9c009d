package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractContact_NameEmail(t *testing.T) {
	c := ExtractContact("John Smith\nSoftware Engineer\njohn@x.com")

	require.NotNil(t, c.Name)
	require.NotNil(t, c.Email)
	assert.Equal(t, "John Smith", *c.Name)
	assert.Equal(t, "john@x.com", *c.Email)
	assert.Nil(t, c.Phone)
	assert.Equal(t, 2, c.Fields())
}

func TestExtractContact_NoEmail(t *testing.T) {
	c := ExtractContact("Jane Doe\nBackend developer with a passion for Go")
	assert.Nil(t, c.Email)
}

func TestExtractContact_Empty(t *testing.T) {
	c := ExtractContact("")
	assert.Equal(t, Contact{}, c)
	assert.Equal(t, 0, c.Fields())
}

func TestExtractContact_Phone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "us with country code", text: "Call +1 (555) 123-4567 anytime", want: "5551234567"},
		{name: "dotted", text: "555.123.4567", want: "5551234567"},
		{name: "bare ten digits", text: "mobile 5551234567", want: "5551234567"},
		{name: "leading one kept when ten digits", text: "123-456-7890", want: "1234567890"},
		{name: "foreign country code outside match", text: "Phone: +44 207 123 4567", want: "2071234567"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ExtractContact(tt.text)
			require.NotNil(t, c.Phone)
			assert.Equal(t, tt.want, *c.Phone)
		})
	}
}

func TestExtractContact_CleanedPhoneIsDigitsOnly(t *testing.T) {
	for _, text := range []string{"(555) 123-4567", "555 123 4567", "1-555-123-4567", "+1.555.123.4567"} {
		c := ExtractContact(text)
		require.NotNil(t, c.Phone, text)
		assert.Regexp(t, `^\d{10}$`, *c.Phone, text)
	}
}

func TestExtractContact_NameHeuristics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *string
	}{
		{
			name: "first capitalised pair wins",
			text: "RESUME\nContact Information\nMaria Lopez\nmaria@example.com",
			want: strPtr("Contact Information"),
		},
		{
			name: "skips email and phone lines",
			text: "maria@example.com\nPhone 555 123 4567\nMaria Lopez",
			want: strPtr("Maria Lopez"),
		},
		{
			name: "three words two capitalised",
			text: "Anna van Berg\nDeveloper",
			want: strPtr("Anna van Berg"),
		},
		{
			name: "loose pass lowercase",
			text: "anna berg\n42 Some Road",
			want: strPtr("anna berg"),
		},
		{
			name: "too many words falls to loose pass",
			text: "Alpha Beta Gamma Delta Epsilon",
			want: strPtr("Alpha Beta Gamma Delta Epsilon"),
		},
		{
			name: "nothing qualifies",
			text: "Go\n2024\nhttps://example.com",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ExtractContact(tt.text)
			if tt.want == nil {
				assert.Nil(t, c.Name)
				return
			}
			require.NotNil(t, c.Name)
			assert.Equal(t, *tt.want, *c.Name)
		})
	}
}

func TestExtractContact_SplitsOnPunctuation(t *testing.T) {
	c := ExtractContact("Peter Parker, peter@dailybugle.com; New York")
	require.NotNil(t, c.Name)
	assert.Equal(t, "Peter Parker", *c.Name)
	require.NotNil(t, c.Email)
	assert.Equal(t, "peter@dailybugle.com", *c.Email)
}

func TestExtractContact_Deterministic(t *testing.T) {
	text := "John Smith\njohn@x.com\n(555) 123-4567"
	assert.Equal(t, ExtractContact(text), ExtractContact(text))
}

func strPtr(s string) *string { return &s }
