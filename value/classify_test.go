package value

import (
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type point struct{ X, Y int }

type stamp time.Time

type failure struct{}

func (*failure) Error() string { return "failure" }

func TestClassify(t *testing.T) {
	var nilMap map[string]any
	var nilSlice []int
	var nilFunc func()
	var nilPoint *point
	var nilTime *time.Time
	var nilRegexp *regexp.Regexp
	n := 3

	tests := []struct {
		name  string
		input any
		want  Tag
	}{
		{"nil", nil, Null},
		{"undefined", Undefined, Undef},
		{"bool", true, Boolean},
		{"string", "test", String},
		{"int", 42, Number},
		{"uint8", uint8(1), Number},
		{"float64", 1.5, Number},
		{"float32", float32(2.5), Number},
		{"float64 NaN", math.NaN(), NaN},
		{"float32 NaN", float32(math.NaN()), NaN},
		{"infinity", math.Inf(1), Number},
		{"time", time.Now(), Date},
		{"time pointer", &time.Time{}, Date},
		{"nil time pointer", nilTime, Null},
		{"converted time", stamp(time.Now()), Date},
		{"regexp", regexp.MustCompile("a+"), RegExp},
		{"nil regexp", nilRegexp, Null},
		{"error", errors.New("x"), Error},
		{"custom error", &failure{}, Error},
		{"slice", []any{1, 2}, Array},
		{"nil slice", nilSlice, Array},
		{"array", [2]int{1, 2}, Array},
		{"map", map[string]any{"a": 1}, Object},
		{"nil map", nilMap, Null},
		{"struct", point{1, 2}, Object},
		{"struct pointer", &point{1, 2}, Object},
		{"nil struct pointer", nilPoint, Null},
		{"int pointer", &n, Number},
		{"func", func() {}, Function},
		{"error func", func(error) {}, Function},
		{"nil func", nilFunc, Null},
		{"named string", Tag("x"), String},
		{"channel", make(chan int), Unknown},
		{"complex", complex(1, 2), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input))
			assert.Equal(t, tt.want, Default.Classify(tt.input))
		})
	}
}

func TestClassifierFunc(t *testing.T) {
	c := ClassifierFunc(func(v any) Tag {
		if _, ok := v.(point); ok {
			return Date
		}
		return Classify(v)
	})

	assert.Equal(t, Date, c.Classify(point{}))
	assert.Equal(t, String, c.Classify("s"))
}

func TestTag_IsNullish(t *testing.T) {
	for _, tag := range Tags {
		want := tag == Null || tag == Undef || tag == NaN
		assert.Equal(t, want, tag.IsNullish(), "tag %s", tag)
	}
	assert.False(t, Any.IsNullish())
	assert.NotContains(t, Tags, Any)
}

func TestUndefined(t *testing.T) {
	assert.True(t, IsUndefined(Undefined))
	assert.False(t, IsUndefined(nil))
	assert.False(t, IsUndefined(""))
	assert.Equal(t, "undefined", Undefined.String())
	assert.Equal(t, "undefined", Undef.String())
}
