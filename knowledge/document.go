package knowledge

// DocumentType classifies a legal reference document
type DocumentType string

const (
	DocumentTypeLaw        DocumentType = "law"
	DocumentTypeRegulation DocumentType = "regulation"
	DocumentTypeGuideline  DocumentType = "guideline"
	DocumentTypeCase       DocumentType = "case"
)

// Category groups documents by the life situation they cover
type Category string

const (
	CategoryLabor     Category = "labor"
	CategoryTenant    Category = "tenant"
	CategoryFreelance Category = "freelance"
	CategoryConsumer  Category = "consumer"
	CategoryGeneral   Category = "general"
)

// LegalDocument is one curated reference entry in the knowledge corpus
type LegalDocument struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Content      string       `json:"content"`
	SourceURL    string       `json:"source_url"`
	DocumentType DocumentType `json:"document_type"`
	Category     Category     `json:"category"`
	Keywords     []string     `json:"keywords"`
}

// Citation attributes part of a model response to a source
type Citation struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
