package person

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Eli(t *testing.T) {
	p := New("Eli", 24)
	assert.Equal(t, "Eli", p.Name())
	assert.Equal(t, 24, p.Age())
}

func TestNew_NoValidation(t *testing.T) {
	tests := []struct {
		name   string
		inName string
		inAge  int
	}{
		{"empty_and_zero", "", 0},
		{"negative_age", "Eli", -5},
		{"max_int", "Eli", math.MaxInt},
		{"min_int", "Eli", math.MinInt},
		{"unicode_name", "Éli 李", 24},
		{"whitespace_name", "  Eli\n", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.inName, tt.inAge)
			assert.Equal(t, tt.inName, p.Name())
			assert.Equal(t, tt.inAge, p.Age())
		})
	}
}

func TestAccessors_RoundTrip(t *testing.T) {
	roundTrip := func(name string, age int) bool {
		p := New(name, age)
		return p.Name() == name && p.Age() == age
	}
	require.NoError(t, quick.Check(roundTrip, nil))
}

func TestAccessors_Idempotent(t *testing.T) {
	p := New("Eli", 24)

	for i := 0; i < 3; i++ {
		assert.Equal(t, "Eli", p.Name())
		assert.Equal(t, 24, p.Age())
	}
}

func TestAccessors_OrderIndependent(t *testing.T) {
	a := New("Eli", 24)
	ageFirst := a.Age()
	nameSecond := a.Name()

	b := New("Eli", 24)
	nameFirst := b.Name()
	ageSecond := b.Age()

	assert.Equal(t, nameFirst, nameSecond)
	assert.Equal(t, ageFirst, ageSecond)
}
