package nullable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_Unmarshal(t *testing.T) {
	type payload struct {
		Notes     Field[string] `json:"notes"`
		Attendees Field[int]    `json:"attendees"`
	}

	tests := []struct {
		name string
		body string
		want payload
	}{
		{
			name: "absent keys stay unset",
			body: `{}`,
			want: payload{},
		},
		{
			name: "explicit null is set but not valid",
			body: `{"notes": null}`,
			want: payload{Notes: Null[string]()},
		},
		{
			name: "present value is set and valid",
			body: `{"notes": "terraza", "attendees": 120}`,
			want: payload{Notes: Of("terraza"), Attendees: Of(120)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestField_Ptr(t *testing.T) {
	assert.Nil(t, Field[string]{}.Ptr())
	assert.Nil(t, Null[string]().Ptr())

	p := Of("dj incluido").Ptr()
	require.NotNil(t, p)
	assert.Equal(t, "dj incluido", *p)
}
