package mapper

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type visit struct {
	count int
}

type visitDTO struct {
	Label string
}

func TestMapSlice(t *testing.T) {
	assert.Nil(t, MapSlice[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{}, MapSlice([]int{}, strconv.Itoa))
	assert.Equal(t, []string{"1", "30"}, MapSlice([]int{1, 30}, strconv.Itoa))
}

func TestMapSlicePtr(t *testing.T) {
	toDTO := func(v *visit) *visitDTO {
		if v.count == 0 {
			return nil
		}
		return &visitDTO{Label: strconv.Itoa(v.count) + " visits"}
	}

	assert.Nil(t, MapSlicePtr[visit, visitDTO](nil, toDTO))

	got := MapSlicePtr([]*visit{{count: 3}, nil, {count: 0}, {count: 30}}, toDTO)
	assert.Equal(t, []*visitDTO{{Label: "3 visits"}, {Label: "30 visits"}}, got)
}
