package item_test

import (
	"strings"
	"testing"

	"github.com/itemkit/itemsapi/internal/app/item"
	"github.com/stretchr/testify/require"
)

func validationCfg() item.ValidationConfig {
	return item.ValidationConfig{
		MaxNameLength:        100,
		MaxDescriptionLength: 500,
		MaxListLimit:         100,
	}
}

func TestNewValidator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     item.ValidationConfig
		wantErr bool
	}{
		{name: "success", cfg: validationCfg()},
		{name: "error/zero_name_length", cfg: item.ValidationConfig{MaxDescriptionLength: 500, MaxListLimit: 100}, wantErr: true},
		{name: "error/zero_description_length", cfg: item.ValidationConfig{MaxNameLength: 100, MaxListLimit: 100}, wantErr: true},
		{name: "error/zero_list_limit", cfg: item.ValidationConfig{MaxNameLength: 100, MaxDescriptionLength: 500}, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := item.NewValidator(tt.cfg)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateCreateRequest(t *testing.T) {
	t.Parallel()

	v, err := item.NewValidator(validationCfg())
	require.NoError(t, err)

	tests := []struct {
		name     string
		body     any
		wantMsgs []string
	}{
		{
			name: "valid",
			body: map[string]any{"name": "Widget", "description": "A widget"},
		},
		{
			name:     "empty_name",
			body:     map[string]any{"name": "", "description": "ok"},
			wantMsgs: []string{"name cannot be empty"},
		},
		{
			name:     "blank_name_after_trim",
			body:     map[string]any{"name": "   ", "description": "ok"},
			wantMsgs: []string{"name cannot be empty"},
		},
		{
			name:     "missing_description",
			body:     map[string]any{"name": "Widget"},
			wantMsgs: []string{"description is required"},
		},
		{
			name:     "name_not_a_string",
			body:     map[string]any{"name": float64(5), "description": "ok"},
			wantMsgs: []string{"name must be a string"},
		},
		{
			name:     "name_too_long",
			body:     map[string]any{"name": strings.Repeat("x", 101), "description": "ok"},
			wantMsgs: []string{"name must be at most 100 characters"},
		},
		{
			name:     "unknown_field_rejected",
			body:     map[string]any{"name": "a", "description": "b", "extra": "x"},
			wantMsgs: []string{"Unknown field: extra"},
		},
		{
			name:     "cannot_set_id_directly",
			body:     map[string]any{"name": "a", "description": "b", "id": "123"},
			wantMsgs: []string{"Unknown field: id"},
		},
		{
			name:     "non_object_body",
			body:     "not an object",
			wantMsgs: []string{"Data must be an object"},
		},
		{
			name:     "both_fields_missing_accumulate",
			body:     map[string]any{},
			wantMsgs: []string{"name is required", "description is required"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := v.ValidateCreateRequest(tt.body)

			require.Len(t, res.Errors, len(tt.wantMsgs))
			require.Equal(t, len(tt.wantMsgs) == 0, res.Valid())
			for i, msg := range tt.wantMsgs {
				require.Equal(t, msg, res.Errors[i].Message)
			}
		})
	}
}

func TestValidateUpdateRequest(t *testing.T) {
	t.Parallel()

	v, err := item.NewValidator(validationCfg())
	require.NoError(t, err)

	tests := []struct {
		name     string
		body     any
		wantMsgs []string
	}{
		{
			name: "empty_partial_update_is_legal",
			body: map[string]any{},
		},
		{
			name: "name_only",
			body: map[string]any{"name": "Renamed"},
		},
		{
			name: "status_active",
			body: map[string]any{"status": "active"},
		},
		{
			name:     "status_unknown",
			body:     map[string]any{"status": "archived"},
			wantMsgs: []string{"status must be one of: active, inactive"},
		},
		{
			name:     "blank_name_if_present",
			body:     map[string]any{"name": "  "},
			wantMsgs: []string{"name cannot be empty"},
		},
		{
			name:     "unknown_field_rejected",
			body:     map[string]any{"owner": "me"},
			wantMsgs: []string{"Unknown field: owner"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := v.ValidateUpdateRequest(tt.body)

			require.Len(t, res.Errors, len(tt.wantMsgs))
			for i, msg := range tt.wantMsgs {
				require.Equal(t, msg, res.Errors[i].Message)
			}
		})
	}
}

func TestValidateListQuery(t *testing.T) {
	t.Parallel()

	v, err := item.NewValidator(validationCfg())
	require.NoError(t, err)

	tests := []struct {
		name     string
		query    any
		wantMsgs []string
	}{
		{
			name:  "empty_query",
			query: map[string]any{},
		},
		{
			name:  "all_params",
			query: map[string]any{"limit": "25", "offset": "50", "status": "inactive"},
		},
		{
			name:  "extra_params_ignored",
			query: map[string]any{"limit": "5", "sort": "name", "filter": "abc"},
		},
		{
			name:     "limit_too_large",
			query:    map[string]any{"limit": "200"},
			wantMsgs: []string{"limit must be an integer between 1 and 100"},
		},
		{
			name:     "limit_zero",
			query:    map[string]any{"limit": "0"},
			wantMsgs: []string{"limit must be an integer between 1 and 100"},
		},
		{
			name:     "limit_not_a_number",
			query:    map[string]any{"limit": "ten"},
			wantMsgs: []string{"limit must be an integer between 1 and 100"},
		},
		{
			name:     "negative_offset",
			query:    map[string]any{"offset": "-1"},
			wantMsgs: []string{"offset must be a non-negative integer"},
		},
		{
			name:     "bad_status",
			query:    map[string]any{"status": "deleted"},
			wantMsgs: []string{"status must be one of: active, inactive"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := v.ValidateListQuery(tt.query)

			require.Len(t, res.Errors, len(tt.wantMsgs))
			for i, msg := range tt.wantMsgs {
				require.Equal(t, msg, res.Errors[i].Message)
			}
		})
	}
}

func TestValidateIDParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		wantMsg string
	}{
		{name: "valid", value: "7d444840-9dc0-11d1-b245-5ffdce74fad2"},
		{name: "any_non_empty_string_passes", value: "abc"},
		{name: "absent", value: nil, wantMsg: "id parameter is required"},
		{name: "not_a_string", value: 123, wantMsg: "id must be a string"},
		{name: "empty", value: "", wantMsg: "id cannot be empty"},
		{name: "blank_after_trim", value: "   ", wantMsg: "id cannot be empty"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := item.ValidateIDParam(tt.value)

			if tt.wantMsg == "" {
				require.True(t, res.Valid())
				return
			}
			require.Len(t, res.Errors, 1)
			require.Equal(t, "id", res.Errors[0].Field)
			require.Equal(t, tt.wantMsg, res.Errors[0].Message)
		})
	}
}
