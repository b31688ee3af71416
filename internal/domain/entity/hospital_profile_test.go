package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHospitalProfile_Clone(t *testing.T) {
	p := HospitalProfile{Name: "City General Hospital", Facilities: []string{"icu", "pharmacy"}}

	c := p.Clone()
	c.Facilities[0] = "mri"

	assert.Equal(t, "icu", p.Facilities[0])
	assert.True(t, p.HasFacility("pharmacy"))
	assert.False(t, p.HasFacility("mri"))
}
