package workout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		code     string
		fields   []float64
		wantName string
	}{
		{CodeRunning, []float64{15000, 1, 75}, NameRunning},
		{CodeWalking, []float64{9000, 1, 75, 180}, NameWalking},
		{CodeSwimming, []float64{720, 1, 80, 25, 40}, NameSwimming},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w, err := Create(tt.code, tt.fields)
			require.NoError(t, err)
			require.NotNil(t, w)
			assert.Equal(t, tt.wantName, w.Name())
			assert.Equal(t, tt.wantName, w.Info().TrainingType)
		})
	}
}

func TestCreateMatchesConstructors(t *testing.T) {
	w, err := Create(CodeSwimming, []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)

	direct := NewSwimming(720, 1, 80, 25, 40)
	assert.Equal(t, direct.Info(), w.Info())
}

func TestCreateUnknownCode(t *testing.T) {
	for _, code := range []string{"XYZ", "", "run", " RUN", "SWIM"} {
		t.Run(code, func(t *testing.T) {
			w, err := Create(code, []float64{15000, 1, 75})
			assert.Nil(t, w)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedWorkoutType))

			var typeErr *UnsupportedTypeError
			require.True(t, errors.As(err, &typeErr))
			assert.Equal(t, code, typeErr.Code)
			assert.Equal(t, []string{"RUN", "SWM", "WLK"}, typeErr.Supported)
			assert.Contains(t, err.Error(), "RUN, SWM, WLK")
		})
	}
}

func TestCreateWrongArity(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		fields []float64
	}{
		{"run with height", CodeRunning, []float64{15000, 1, 75, 180}},
		{"run missing weight", CodeRunning, []float64{15000, 1}},
		{"walk without height", CodeWalking, []float64{9000, 1, 75}},
		{"swim without laps", CodeSwimming, []float64{720, 1, 80, 25}},
		{"swim with extra", CodeSwimming, []float64{720, 1, 80, 25, 40, 1}},
		{"no fields", CodeRunning, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Create(tt.code, tt.fields)
			assert.Nil(t, w)
			require.ErrorIs(t, err, ErrUnsupportedWorkoutType)

			var typeErr *UnsupportedTypeError
			require.ErrorAs(t, err, &typeErr)
			assert.Equal(t, tt.code, typeErr.Code)
			assert.Equal(t, len(tt.fields), typeErr.Fields)
			assert.Contains(t, err.Error(), "expects")
		})
	}
}

func TestArity(t *testing.T) {
	n, ok := Arity(CodeWalking)
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = Arity("XYZ")
	assert.False(t, ok)
}
