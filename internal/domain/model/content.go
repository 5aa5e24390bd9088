package model

// PageContent is the copy of a static informational page.
type PageContent struct {
	Title      string        `yaml:"title"`
	Subtitle   string        `yaml:"subtitle"`
	Updated    string        `yaml:"updated"`
	Sections   []Section     `yaml:"sections"`
	Highlights []ContentCard `yaml:"highlights"`
	Stats      []Stat        `yaml:"stats"`
	Values     []ContentCard `yaml:"values"`
}

// Section is a numbered heading with paragraphs and an optional bullet list.
type Section struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
	Items      []string `yaml:"items"`
}

// ContentCard is a small titled block of text.
type ContentCard struct {
	Icon  string   `yaml:"icon"`
	Title string   `yaml:"title"`
	Text  string   `yaml:"text"`
	Lines []string `yaml:"lines"`
}

// Stat is a headline figure on the about page.
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// LandingContent holds the landing page copy around the directory.
type LandingContent struct {
	Badge             string        `yaml:"badge"`
	Headline          string        `yaml:"headline"`
	HeadlineAccent    string        `yaml:"headline_accent"`
	Tagline           string        `yaml:"tagline"`
	Features          []ContentCard `yaml:"features"`
	ConsultationSteps []ContentCard `yaml:"consultation_steps"`
	JoinIntro         string        `yaml:"join_intro"`
	JoinBenefits      []string      `yaml:"join_benefits"`
	CustomizeIntro    string        `yaml:"customize_intro"`
	CustomizeFeatures []string      `yaml:"customize_features"`
}

// ContactContent is the contact page copy next to the form.
type ContactContent struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	Cards    []ContentCard `yaml:"cards"`
}

// SiteContent is the whole content catalog.
type SiteContent struct {
	SiteName string         `yaml:"site_name"`
	Footer   string         `yaml:"footer"`
	Landing  LandingContent `yaml:"landing"`
	About    PageContent    `yaml:"about"`
	Privacy  PageContent    `yaml:"privacy"`
	Terms    PageContent    `yaml:"terms"`
	Contact  ContactContent `yaml:"contact"`
}
