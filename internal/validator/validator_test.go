package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/color-notes/internal/entity"
)

type testNoteRequest struct {
	ID       int64   `params:"id" validate:"gt=0"`
	Titulo   string  `json:"titulo" validate:"required,min=3,max=100"`
	Conteudo string  `json:"conteudo" validate:"required,min=1,max=5000"`
	Cor      *string `json:"cor" validate:"omitnil,notecolor"`
}

type testListRequest struct {
	FiltroCor *string `query:"filtroCor" validate:"omitnil,notecolor"`
	Ordem     *string `query:"ordem" validate:"omitnil,oneof=data_criacao_asc data_criacao_desc"`
}

func ptr(s string) *string {
	return &s
}

func TestValidator_Note(t *testing.T) {
	v := New()

	valid := testNoteRequest{ID: 1, Titulo: "Groceries", Conteudo: "milk", Cor: ptr("#bbf7d0")}

	tests := []struct {
		name      string
		mutate    func(r *testNoteRequest)
		wantField string
		errorMsg  string
	}{
		{name: "Valid request", mutate: func(*testNoteRequest) {}},
		{name: "Color omitted", mutate: func(r *testNoteRequest) { r.Cor = nil }},
		{
			name:      "Explicit empty color",
			mutate:    func(r *testNoteRequest) { r.Cor = ptr("") },
			wantField: "cor",
			errorMsg:  "cor must be a hex color",
		},
		{
			name:      "Title too short",
			mutate:    func(r *testNoteRequest) { r.Titulo = "ab" },
			wantField: "titulo",
			errorMsg:  "titulo must be at least 3 characters",
		},
		{
			name:      "Title too long",
			mutate:    func(r *testNoteRequest) { r.Titulo = strings.Repeat("a", 101) },
			wantField: "titulo",
			errorMsg:  "titulo must be at most 100 characters",
		},
		{
			name:      "Empty content",
			mutate:    func(r *testNoteRequest) { r.Conteudo = "" },
			wantField: "conteudo",
			errorMsg:  "conteudo is required",
		},
		{
			name:      "Short hex color",
			mutate:    func(r *testNoteRequest) { r.Cor = ptr("#FFF") },
			wantField: "cor",
			errorMsg:  "cor must be a hex color",
		},
		{
			name:      "Color without hash",
			mutate:    func(r *testNoteRequest) { r.Cor = ptr("FFFFFF") },
			wantField: "cor",
		},
		{
			name:      "Non positive id",
			mutate:    func(r *testNoteRequest) { r.ID = 0 },
			wantField: "id",
			errorMsg:  "id must be a positive integer",
		},
		{
			name:   "Multibyte title counts characters",
			mutate: func(r *testNoteRequest) { r.Titulo = "ação" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := v.Validate(&req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *entity.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Violations, 1)
			assert.Equal(t, tt.wantField, verr.Violations[0].Field)
			if tt.errorMsg != "" {
				assert.Contains(t, verr.Violations[0].Message, tt.errorMsg)
			}
		})
	}
}

func TestValidator_ReportsEveryField(t *testing.T) {
	v := New()

	err := v.Validate(&testNoteRequest{ID: 0, Titulo: "", Conteudo: "", Cor: ptr("red")})

	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)

	fields := make([]string, 0, len(verr.Violations))
	for _, vi := range verr.Violations {
		fields = append(fields, vi.Field)
	}
	assert.ElementsMatch(t, []string{"id", "titulo", "conteudo", "cor"}, fields)
}

func TestValidator_List(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&testListRequest{}))
	assert.NoError(t, v.Validate(&testListRequest{FiltroCor: ptr("#BBF7D0"), Ordem: ptr("data_criacao_asc")}))

	err := v.Validate(&testListRequest{Ordem: ptr("random")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ordem must be one of")

	err = v.Validate(&testListRequest{FiltroCor: ptr("")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filtroCor must be a hex color")
}
