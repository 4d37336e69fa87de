package ctdl

import "testing"

func TestMapRelation(t *testing.T) {
	tests := []struct {
		name            string
		associationType string
		want            string
	}{
		{"isChildOf", "isChildOf", "ceasn:isChildOf"},
		{"precedes", "precedes", "ceasn:prerequisiteAlignment"},
		{"hasSkillLevel", "hasSkillLevel", "asn:hasProgressionLevel"},
		{"unknown type passes through", "exemplar", "exemplar"},
		{"custom type passes through", "x-custom:related", "x-custom:related"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapRelation(tt.associationType); got != tt.want {
				t.Errorf("MapRelation(%q) = %q, want %q", tt.associationType, got, tt.want)
			}
		})
	}
}

func TestContext(t *testing.T) {
	want := map[string]string{
		"ceasn":  NamespaceCEASN,
		"asn":    NamespaceASN,
		"skos":   NamespaceSKOS,
		"@vocab": NamespaceCEASN,
	}
	if len(Context) != len(want) {
		t.Fatalf("len(Context) = %d, want %d", len(Context), len(want))
	}
	for k, v := range want {
		if Context[k] != v {
			t.Errorf("Context[%q] = %q, want %q", k, Context[k], v)
		}
	}
}

func TestCodedNotationSharedTarget(t *testing.T) {
	// Both CASE code fields collapse onto one CTDL property.
	if got := ItemFieldMap["hierarchyCode"]; got != "ceasn:codedNotation" {
		t.Errorf("ItemFieldMap[hierarchyCode] = %q, want ceasn:codedNotation", got)
	}
	if got := ItemFieldMap["humanCodingScheme"]; got != "ceasn:codedNotation" {
		t.Errorf("ItemFieldMap[humanCodingScheme] = %q, want ceasn:codedNotation", got)
	}
}
