package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularyNames(t *testing.T) {
	v := C99Vocabulary()
	tests := []struct {
		sym  Symbol
		name string
	}{
		{1, "IDENTIFIER"},
		{4, "("},
		{65, "TYPE_NAME"},
		{88, "END_OF_SLK_INPUT"},
		{89, "translation_unit"},
		{163, "direct_declarator"},
		{199, "compound_statement"},
		{227, "__FinishParse"},
		{228, "__SetTypedefName"},
		{229, "__NewScope"},
		{230, "__ReleaseScope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, v.Name(tt.sym))
			sym, ok := v.Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.sym, sym)
		})
	}
	assert.Equal(t, "", v.Name(0))
	assert.Equal(t, "#0", v.Describe(0))
}

func TestVocabularyProductionString(t *testing.T) {
	v := C99Vocabulary()
	assert.Equal(t, "translation_unit --> external_declaration more_translation_unit __FinishParse", v.ProductionString(1))
	assert.Equal(t, "more_translation_unit -->", v.ProductionString(3))
	assert.Equal(t, "direct_declarator --> IDENTIFIER more_direct_declarator", v.ProductionString(176))
	assert.Equal(t, "compound_statement --> __NewScope { __ReleaseScope }", v.ProductionString(263))
	assert.Equal(t, "init_declarator_list2 --> init_declarator __SetTypedefName ,_init_declarator_*", v.ProductionString(111))
}

func TestVocabularyLabels(t *testing.T) {
	v := C99Vocabulary()
	tests := []struct {
		label string
		want  Symbol
	}{
		{"ID", 1},
		{"CONSTANT", 2},
		{"INT_CONST_DEC", 2},
		{"INT_CONST_OCT", 2},
		{"INT_CONST_HEX", 2},
		{"INT_CONST_BIN", 2},
		{"FLOAT_CONST", 2},
		{"HEX_FLOAT_CONST", 2},
		{"CHAR_CONST", 2},
		{"WCHAR_CONST", 2},
		{"STRING_LITERAL", 3},
		{"WSTRING_LITERAL", 3},
		{"LPAREN", 4},
		{"ARROW", 9},
		{"SEMI", 47},
		{"TYPEID", 65},
		{"LBRACE", 66},
		{"RETURN", 87},
		{"END_OF_SLK_INPUT", 88},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := v.LabelID(tt.label)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := v.LabelID("PPHASH")
	assert.False(t, ok)
	assert.Equal(t, "ID", v.Label(1))
	assert.Equal(t, "TYPEID", v.Label(65))
	assert.Equal(t, "", v.Label(89))
}

func TestVocabularyFirstSets(t *testing.T) {
	v := C99Vocabulary()
	compound, _ := v.Lookup("compound_statement")
	primary, _ := v.Lookup("primary_expression")

	first := v.FirstSet(compound)
	assert.Equal(t, 87, first.Len())
	assert.False(t, first.Contains(82))

	viable := v.Viable(compound)
	assert.Equal(t, []Symbol{66}, viable.Symbols())

	pv := v.Viable(primary)
	for _, s := range []Symbol{1, 2, 3, 4} {
		assert.True(t, pv.Contains(s), "primary_expression admits %s", v.Name(s))
	}
	assert.False(t, pv.Contains(56))

	again := v.FirstSet(compound)
	assert.True(t, first.Equal(again))
	assert.Equal(t, 87, v.FirstSet(v.Table().StartSymbol()).Len())
}

func TestVocabularyConflictSets(t *testing.T) {
	v := C99Vocabulary()
	assert.Equal(t, 60, v.ConflictSet(320).Len())
	assert.Equal(t, []Symbol{1, 2, 3, 4, 7, 10, 11, 13, 14, 15, 16, 17, 18, 19}, v.ConflictSet(347).Symbols())
	assert.Panics(t, func() { v.ConflictSet(348) })
}

func TestVocabularyCompatibleSet(t *testing.T) {
	v := C99Vocabulary()
	assert.Equal(t, []Symbol{47}, v.CompatibleSet(47).Symbols())
	assert.Equal(t, v.FirstSet(89).Len(), v.CompatibleSet(89).Len())
	assert.Panics(t, func() { v.CompatibleSet(227) })
}

func TestVocabularySpelling(t *testing.T) {
	v := C99Vocabulary()
	tests := []struct {
		sym  Symbol
		text string
		ok   bool
	}{
		{56, "int", true},
		{9, "->", true},
		{62, "_Bool", true},
		{66, "{", true},
		{13, "sizeof", true},
		{75, "...", true},
		{1, "", false},
		{65, "", false},
		{88, "", false},
	}
	for _, tt := range tests {
		text, ok := v.Spelling(tt.sym)
		assert.Equal(t, tt.ok, ok, "symbol %s", v.Name(tt.sym))
		assert.Equal(t, tt.text, text)
	}
	assert.True(t, v.IsKeyword(56))
	assert.False(t, v.IsKeyword(66))
}

func TestTerminalSet(t *testing.T) {
	var empty TerminalSet
	assert.True(t, empty.Empty())
	assert.False(t, empty.Contains(1))
	assert.Equal(t, "{}", empty.String())

	s := NewTerminalSet(4, 1, 66)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []Symbol{1, 4, 66}, s.Symbols())
	assert.Equal(t, "{1 4 66}", s.String())
	assert.True(t, s.Equal(NewTerminalSet(66, 4, 1)))
	assert.False(t, s.Equal(NewTerminalSet(66, 4)))

	u := s.Union(NewTerminalSet(5))
	assert.Equal(t, 4, u.Len())
	assert.Equal(t, 3, s.Len())
}
