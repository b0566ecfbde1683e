package pdf

import (
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/stretchr/testify/assert"
)

// identity resolves dictionaries that are already inline, which is all the
// hand-built fixtures here use.
func identity(obj types.Object) (types.Dict, error) {
	if d, ok := obj.(types.Dict); ok {
		return d, nil
	}
	return nil, nil
}

func TestEntryString(t *testing.T) {
	d := types.Dict{
		"Name":    types.Name("Yes"),
		"Literal": types.StringLiteral("GL-100"),
	}
	assert.Equal(t, "Yes", entryString(d, "Name"))
	assert.Equal(t, "GL-100", entryString(d, "Literal"))
	assert.Equal(t, "", entryString(d, "Missing"))
}

func TestQualifiedName(t *testing.T) {
	root := types.Dict{"T": types.StringLiteral("F[0]")}
	page := types.Dict{"T": types.StringLiteral("P1[0]"), "Parent": root}
	leaf := types.Dict{"T": types.StringLiteral("Form_CompletionDate_A[0]"), "Parent": page}

	assert.Equal(t, "F[0].P1[0].Form_CompletionDate_A[0]", qualifiedName(leaf, identity))
	assert.Equal(t, "F[0]", qualifiedName(root, identity))
}

func TestFieldTypeInheritsFromAncestors(t *testing.T) {
	root := types.Dict{"FT": types.Name("Btn")}
	leaf := types.Dict{"T": types.StringLiteral("SomeCheckbox"), "Parent": root}

	assert.Equal(t, "Btn", fieldType(leaf, identity))
	assert.Equal(t, "Tx", fieldType(types.Dict{"FT": types.Name("Tx")}, identity))
	assert.Equal(t, "", fieldType(types.Dict{}, identity))
}

func TestButtonOnState(t *testing.T) {
	withAP := types.Dict{
		"AP": types.Dict{
			"N": types.Dict{"Off": types.Dict{}, "1": types.Dict{}},
		},
	}
	assert.Equal(t, "1", buttonOnState(withAP, nil, identity))

	assert.Equal(t, "Yes", buttonOnState(types.Dict{}, nil, identity), "no appearance dict")

	offOnly := types.Dict{
		"AP": types.Dict{"N": types.Dict{"Off": types.Dict{}}},
	}
	assert.Equal(t, "Yes", buttonOnState(offOnly, nil, identity), "only the off state present")
}

func TestButtonOnStateFromWidgetKid(t *testing.T) {
	// The field dict has no appearance of its own; the state lives on the
	// separate widget annotation.
	widget := types.Dict{
		"AP": types.Dict{
			"N": types.Dict{"Off": types.Dict{}, "1": types.Dict{}},
		},
		"AS": types.Name("Off"),
	}
	field := types.Dict{"T": types.StringLiteral("SomeCheckbox"), "FT": types.Name("Btn")}

	assert.Equal(t, "1", buttonOnState(field, []types.Dict{widget}, identity))
}

func TestCheckedAcceptsConfirmationCodes(t *testing.T) {
	assert.True(t, checked(true))
	assert.True(t, checked("Y"))
	assert.True(t, checked("yes"))
	assert.False(t, checked(false))
	assert.False(t, checked("Excluded"))
	assert.False(t, checked("1,000,000"))
	assert.False(t, checked(nil))
}

func TestTextRendering(t *testing.T) {
	assert.Equal(t, "GL-100", text("GL-100"))
	assert.Equal(t, "Yes", text(true))
	assert.Equal(t, "", text(false))
}
