// Package roles provides the typed label collections the reconciler
// consumes: a canonical set of ground-truth role names and a candidate
// set of externally extracted ones. Sets are built once from raw
// strings plus a normalizer and are read-only afterwards.
package roles

// Label is an immutable text value in two forms: the raw string as
// supplied and the normalized form used for comparison.
type Label struct {
	Raw        string `json:"raw" yaml:"raw"`
	Normalized string `json:"normalized" yaml:"normalized"`
}

// String returns the raw form.
func (l Label) String() string {
	return l.Raw
}
