package fhir

// Bundle represents a FHIR Bundle resource.
type Bundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id,omitempty"`
	Type         string        `json:"type"`
	Entry        []BundleEntry `json:"entry,omitempty"`
}

type BundleEntry struct {
	Resource interface{} `json:"resource,omitempty"`
}

// NewCollectionBundle creates a collection Bundle from a list of resources,
// preserving their order.
func NewCollectionBundle(id string, resources []interface{}) *Bundle {
	entries := make([]BundleEntry, len(resources))
	for i, r := range resources {
		entries[i] = BundleEntry{Resource: r}
	}
	return &Bundle{
		ResourceType: "Bundle",
		ID:           id,
		Type:         "collection",
		Entry:        entries,
	}
}
