package seokit

// DefaultOpenGraphType is used when OpenGraph.Type is empty.
const DefaultOpenGraphType = "website"

// OpenGraph holds the values rendered as og:* property tags.
type OpenGraph struct {
	SiteName    string `yaml:"site_name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Image       string `yaml:"image"`
	URL         string `yaml:"url"`
}

// Tags returns the og:* tags in the fixed order url, type, title,
// description, image, site_name.
func (og OpenGraph) Tags() []MetaTag {
	return []MetaTag{
		{Key: "og:url", Value: og.URL},
		{Key: "og:type", Value: og.Type},
		{Key: "og:title", Value: og.Title},
		{Key: "og:description", Value: og.Description},
		{Key: "og:image", Value: og.Image},
		{Key: "og:site_name", Value: og.SiteName},
	}
}

// FacebookTags renders Open Graph property tags. An empty Type defaults to
// "website" and an empty URL defaults to the current request URL.
func (b *Builder) FacebookTags(og OpenGraph) string {
	if og.Type == "" {
		og.Type = DefaultOpenGraphType
	}
	if og.URL == "" && b.Request != nil {
		og.URL = b.Request.RequestURL()
	}
	return MetaTagSet{Kind: MetaProperty, Tags: og.Tags()}.HTML()
}
