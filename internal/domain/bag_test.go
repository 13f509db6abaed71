package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBagWeight(t *testing.T) {
	testCases := []struct {
		name    string
		kg      float64
		want    Weight
		wantErr bool
	}{
		{name: "lower boundary", kg: 0.1, want: 10},
		{name: "upper boundary", kg: 32.0, want: 3200},
		{name: "typical", kg: 18.5, want: 1850},
		{name: "zero", kg: 0, wantErr: true},
		{name: "negative", kg: -1, wantErr: true},
		{name: "just over limit", kg: 32.01, wantErr: true},
		{name: "below precision", kg: 0.001, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := ValidateBagWeight(tc.kg)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, w)
		})
	}
}

func TestWeight_SumIsExact(t *testing.T) {
	var total Weight
	for i := 0; i < 10; i++ {
		total += WeightFromKg(0.1)
	}
	assert.Equal(t, WeightFromKg(1.0), total)
	assert.Equal(t, 1.0, total.Kg())
}

func TestWeight_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		W Weight `json:"w"`
	}{W: 1850})
	require.NoError(t, err)
	assert.JSONEq(t, `{"w":18.5}`, string(data))

	var out struct {
		W Weight `json:"w"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"w":23.25}`), &out))
	assert.Equal(t, Weight(2325), out.W)
}
