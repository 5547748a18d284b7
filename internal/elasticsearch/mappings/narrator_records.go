package mappings

// NarratorRecordsMapping represents the Elasticsearch mapping for narrator records
type NarratorRecordsMapping struct {
	Settings NarratorRecordsSettings `json:"settings"`
	Mappings NarratorRecordsMappings `json:"mappings"`
}

// NarratorRecordsSettings defines index-level settings
type NarratorRecordsSettings struct {
	BaseSettings
}

// NarratorRecordsMappings defines the field mappings for narrator records
type NarratorRecordsMappings struct {
	Properties NarratorRecordsProperties `json:"properties"`
}

// NarratorRecordsProperties defines the properties for each field in the narrator records mapping
type NarratorRecordsProperties struct {
	NarratorID Field `json:"narrator_id"`
	FullName   Field `json:"full_name"`

	// Judgement lists
	Taadil       Field `json:"taadil"`
	Jarh         Field `json:"jarh"`
	Unclassified Field `json:"unclassified"`

	// Relation names
	Teachers Field `json:"teachers"`
	Students Field `json:"students"`

	// Provenance
	Source Field `json:"source"`
}

// judgementProperties is shared by the taadil, jarh, and unclassified lists.
func judgementProperties() map[string]Field {
	return map[string]Field{
		"statement": {
			Type:     "text",
			Analyzer: "arabic",
		},
		"exact_text": {
			Type:     "text",
			Analyzer: "arabic",
		},
		"evaluated_by": {
			Type: "keyword",
		},
	}
}

// NewNarratorRecordsMapping creates a new narrator records mapping with default settings
func NewNarratorRecordsMapping() *NarratorRecordsMapping {
	return &NarratorRecordsMapping{
		Settings: NarratorRecordsSettings{
			BaseSettings: DefaultSettings(),
		},
		Mappings: NarratorRecordsMappings{
			Properties: NarratorRecordsProperties{
				NarratorID: Field{
					Type: "keyword",
				},
				FullName: Field{
					Type:     "text",
					Analyzer: "arabic",
				},
				Taadil: Field{
					Type:       "nested",
					Properties: judgementProperties(),
				},
				Jarh: Field{
					Type:       "nested",
					Properties: judgementProperties(),
				},
				Unclassified: Field{
					Type:       "nested",
					Properties: judgementProperties(),
				},
				Teachers: Field{
					Type: "keyword", // Array of names
				},
				Students: Field{
					Type: "keyword", // Array of names
				},
				Source: Field{
					Type: "object",
					Properties: map[string]Field{
						"volume": {Type: "integer"},
						"page":   {Type: "integer"},
					},
				},
			},
		},
	}
}

// GetJSON returns the narrator records mapping as a JSON string
func (m *NarratorRecordsMapping) GetJSON() (string, error) {
	return ToJSON(m)
}

// Validate validates the narrator records mapping configuration
func (m *NarratorRecordsMapping) Validate() error {
	return ValidateSettings(m.Settings.BaseSettings)
}
