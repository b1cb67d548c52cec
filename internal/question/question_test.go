package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirap-group/swapgen/internal/errors"
)

func TestRegister_OverwritesSameKey(t *testing.T) {
	r := NewRegistry()
	r.Question("name", "Package name ?", "generate-a")
	r.Question("name", "Package name ?", "generate-b")

	spec, err := r.Lookup("name")
	require.NoError(t, err)
	assert.Equal(t, "generate-b", spec.Default)
}

func TestRegister_CopiesChoices(t *testing.T) {
	r := NewRegistry()
	choices := []string{"github.com", "gitlab.com"}
	r.Register(Spec{Key: "githosts", Message: "Git host platform ?", Choices: choices})
	choices[0] = "mutated"

	spec, err := r.Lookup("githosts")
	require.NoError(t, err)
	assert.Equal(t, []string{"github.com", "gitlab.com"}, spec.Choices)
	assert.True(t, spec.IsMultiChoice())
}

func TestLookup_Unknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Lookup("missing")
	require.Error(t, err)
	assert.Equal(t, errors.EUnknownQuestion, errors.GetCode(err))
}

func TestResolveDefault(t *testing.T) {
	static := Spec{Key: "version", Default: "0.1.0"}
	assert.Equal(t, "0.1.0", static.ResolveDefault(AnswerSet{}))

	computed := Spec{
		Key:     "namespace",
		Default: "ignored",
		DefaultFunc: func(v Values) string {
			return v.Value("owner")
		},
	}
	assert.Equal(t, "sirap-group", computed.ResolveDefault(AnswerSet{"owner": Text("sirap-group")}))
	assert.Equal(t, "", computed.ResolveDefault(AnswerSet{}))
}

func TestAnswerSet_Accessors(t *testing.T) {
	s := AnswerSet{
		"alias":    Text("example"),
		"githosts": List("github.com", "gitlab.com"),
	}

	assert.Equal(t, "example", s.Text("alias"))
	assert.Equal(t, []string{"github.com", "gitlab.com"}, s.List("githosts"))
	assert.Equal(t, "github.com,gitlab.com", s.Value("githosts"))
	assert.Equal(t, "", s.Value("missing"))
	assert.Nil(t, s.List("missing"))
}

func TestAnswerSet_Clone(t *testing.T) {
	s := AnswerSet{"githosts": List("github.com")}
	c := s.Clone()
	c["githosts"].List[0] = "gitlab.com"
	assert.Equal(t, "github.com", s.List("githosts")[0])
}

func TestList_EmptyIsList(t *testing.T) {
	a := List()
	assert.True(t, a.IsList())
	assert.Empty(t, a.List)
	assert.False(t, Text("").IsList())
}
